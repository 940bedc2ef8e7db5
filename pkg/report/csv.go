package report

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/genekit/genesyn/pkg/constants"
	"github.com/genekit/genesyn/pkg/errors"
)

// WriteCSV writes the report to w as CSV with the standard header.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.Cells()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the report to the file at path, creating or
// truncating it.
func WriteCSVFile(path string, rows []Row) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}
