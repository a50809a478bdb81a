package impl

import (
	"context"
	"log/slog"
	"time"

	"martgen/internal/domain/entity"
	"martgen/internal/usecase"
	"martgen/internal/util"

	"github.com/pkg/errors"
)

type dateDimensionService struct {
	logger *slog.Logger
}

// NewDateDimensionService creates the date dimension seed generator.
func NewDateDimensionService(logger *slog.Logger) usecase.DateDimensionUsecase {
	return &dateDimensionService{logger: logger}
}

// GenerateRange returns one dimension row per day from start through end.
func (s *dateDimensionService) GenerateRange(_ context.Context, start, end time.Time) ([]*entity.DateDimension, error) {
	start = util.DateOnly(start)
	end = util.DateOnly(end)
	if end.Before(start) {
		return nil, errors.Errorf("invalid date range: %s after %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	var rows []*entity.DateDimension
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		rows = append(rows, buildDateDimension(day))
	}

	s.logger.Info("generated date dimension",
		slog.String("start", start.Format(time.DateOnly)),
		slog.String("end", end.Format(time.DateOnly)),
		slog.Int("rows", len(rows)))

	return rows, nil
}

func buildDateDimension(day time.Time) *entity.DateDimension {
	// ISO day numbering: Monday = 1 ... Sunday = 7.
	dayOfWeek := int(day.Weekday())
	if dayOfWeek == 0 {
		dayOfWeek = 7
	}

	_, isoWeek := day.ISOWeek()
	quarter := (int(day.Month())-1)/3 + 1

	return &entity.DateDimension{
		DateID:        day.Format("20060102"),
		DateDay:       day,
		DateWeek:      day.AddDate(0, 0, 1-dayOfWeek),
		DateMonth:     time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()),
		DateQuarter:   time.Date(day.Year(), time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, day.Location()),
		DateYear:      time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location()),
		DayOfWeek:     dayOfWeek,
		DayOfMonth:    day.Day(),
		WeekOfYear:    isoWeek,
		MonthOfYear:   int(day.Month()),
		QuarterOfYear: quarter,
		Year:          day.Year(),
		DayName:       day.Weekday().String(),
		MonthName:     day.Month().String(),
		IsWeekend:     dayOfWeek >= 6,
	}
}
