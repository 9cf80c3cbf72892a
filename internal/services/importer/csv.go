package importer

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// RawRow is one CSV data line keyed by lower-cased column header.
type RawRow map[string]string

// parseFile materializes the whole CSV into memory, one RawRow per
// non-blank data line, preserving file order. The first line is the
// header; columns may appear in any order but every record must carry
// the header's field count. Any read or CSV framing error is fatal for
// the run.
func parseFile(path string) ([]RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var rows []RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.Join(record, "") == "" {
			continue
		}

		row := make(RawRow, len(columns))
		for i, value := range record {
			row[columns[i]] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
