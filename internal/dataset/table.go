package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"kickboard.kickmetrics.org/internal/models"
)

// ParseTable parses header-keyed CSV content into records. The first row
// declares the field keys; blank lines are skipped; rows shorter than the
// header are padded with empty cells rather than rejected. Malformed CSV
// (broken quoting and the like) yields ErrMalformed and no records.
func ParseTable(data []byte) ([]models.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var records []models.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if isBlank(row) {
			continue
		}

		record := make(models.Record, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = row[i]
			} else {
				// Missing trailing cells become empty values.
				record[key] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
