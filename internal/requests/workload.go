package requests

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for workload files that are neither YAML nor CSV.
var ErrUnsupportedFormat = errors.New("unsupported workload format")

// LoadWorkload reads a workload file, picking the decoder from the extension:
// .yaml/.yml or .csv.
func LoadWorkload(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading workload")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", path)
	}
}

// ParseYAML decodes a `jobs:` document. Unknown keys are rejected so that a
// misspelled field does not silently default to zero.
func ParseYAML(data []byte) (*ScheduleRequests, error) {
	var req ScheduleRequests
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil {
		return nil, errors.Wrap(err, "parsing workload yaml")
	}
	return &req, nil
}

// ParseCSV reads rows of process_id,arrival_time,burst_time[,priority].
// A first row that does not start with a number is treated as a header.
func ParseCSV(r io.Reader) (*ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing workload csv")
	}

	req := &ScheduleRequests{}
	for i, row := range rows {
		if i == 0 && len(row) > 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
				continue
			}
		}
		job, err := jobFromRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "csv line %d", i+1)
		}
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}

func jobFromRow(row []string) (Job, error) {
	if len(row) < 3 || len(row) > 4 {
		return Job{}, errors.Errorf("expected 3 or 4 columns, got %d", len(row))
	}
	values := make([]int, 4)
	for i, field := range row {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Job{}, errors.Wrapf(err, "column %d", i+1)
		}
		values[i] = v
	}
	return Job{ProcessID: values[0], ArrivalTime: values[1], BurstTime: values[2], Priority: values[3]}, nil
}
