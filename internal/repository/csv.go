package repository

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
)

// writeRecords writes a header line followed by one CSV record per
// row to path, truncating any previous content.  Quoting follows
// RFC 4180: fields containing the delimiter, a double quote or a
// newline are wrapped in double quotes with inner quotes doubled.
func writeRecords(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// readRecords reads every data record from the CSV file at path,
// skipping the header line.  A missing file is not an error and
// yields no records.  Records that fail CSV parsing (unbalanced
// quotes and the like) are skipped with a diagnostic; one bad record
// never aborts the rest of the file.  Field counts are not enforced
// here, each store validates its own rows.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("%s: skipping malformed record: %v", path, err)
			continue
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
