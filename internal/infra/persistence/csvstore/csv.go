// Package csvstore persists the generated dataset as flat CSV files: two
// reference files at the store root and three date-partitioned daily files,
// matching the layout the upload and warehouse stages expect.
package csvstore

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	dateFormat      = time.DateOnly
	timestampFormat = time.DateTime
)

// writeCSVFile writes a header row plus records to path, creating the parent
// directory on demand and truncating any existing file.
func writeCSVFile(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "write header of %s", path)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "write record of %s", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}

	return file.Sync()
}

// readCSVFile reads all records of a CSV file, skipping the header row.
func readCSVFile(path string, wantColumns int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = wantColumns

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%s has no header row", path)
	}

	return records[1:], nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func parseFloat(field, path string, line int) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s line %d: invalid float %q", path, line, field)
	}

	return v, nil
}

func parseInt(field, path string, line int) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, errors.Wrapf(err, "%s line %d: invalid int %q", path, line, field)
	}

	return v, nil
}

func parseBool(field, path string, line int) (bool, error) {
	v, err := strconv.ParseBool(field)
	if err != nil {
		return false, errors.Wrapf(err, "%s line %d: invalid bool %q", path, line, field)
	}

	return v, nil
}

func parseDate(field, path string, line int) (time.Time, error) {
	v, err := time.Parse(dateFormat, field)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "%s line %d: invalid date %q", path, line, field)
	}

	return v, nil
}
