package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidCSV = errors.New("invalid csv")

// LoadJobs reads one job per row in the form id,arrival,burst. A first row
// whose arrival and burst columns are both non-numeric is a header and is
// skipped.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: arrival time %q", ErrInvalidCSV, i+1, row[1])
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: burst time %q", ErrInvalidCSV, i+1, row[2])
		}
		jobs = append(jobs, Job{
			ProcessId:   strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
		})
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	for _, column := range row[1:] {
		if _, err := strconv.Atoi(strings.TrimSpace(column)); err == nil {
			return false
		}
	}
	return true
}
