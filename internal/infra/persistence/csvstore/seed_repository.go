package csvstore

import (
	"context"
	"path/filepath"

	"martgen/config"
	"martgen/internal/domain/entity"
	"martgen/internal/domain/repository"
)

// DateDimensionFile is the seed file consumed by the transformation project.
const DateDimensionFile = "date_dimension.csv"

var dateDimensionHeader = []string{
	"date_id", "date_day", "date_week", "date_month", "date_quarter",
	"date_year", "day_of_week", "day_of_month", "week_of_year",
	"month_of_year", "quarter_of_year", "year", "day_name", "month_name",
	"is_weekend", "is_holiday",
}

type seedRepository struct {
	dataDir string
}

// NewSeedRepository creates the CSV-backed seed store. Seeds live under
// {dataDir}/seeds, mirroring where the transformation project reads them.
func NewSeedRepository(cfg *config.Config) repository.SeedRepository {
	return &seedRepository{dataDir: cfg.Generator.DataDir}
}

func (r *seedRepository) SaveDateDimension(_ context.Context, rows []*entity.DateDimension) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.DateID,
			row.DateDay.Format(dateFormat),
			row.DateWeek.Format(dateFormat),
			row.DateMonth.Format(dateFormat),
			row.DateQuarter.Format(dateFormat),
			row.DateYear.Format(dateFormat),
			formatInt(row.DayOfWeek),
			formatInt(row.DayOfMonth),
			formatInt(row.WeekOfYear),
			formatInt(row.MonthOfYear),
			formatInt(row.QuarterOfYear),
			formatInt(row.Year),
			row.DayName,
			row.MonthName,
			formatBoolAsInt(row.IsWeekend),
			formatBoolAsInt(row.IsHoliday),
		})
	}

	path := filepath.Join(r.dataDir, "seeds", DateDimensionFile)

	return writeCSVFile(path, dateDimensionHeader, records)
}

// formatBoolAsInt writes flags as 0/1, the form the seed consumers expect.
func formatBoolAsInt(v bool) string {
	if v {
		return "1"
	}

	return "0"
}
