// Package export writes the deduplicated union view to a delimited file. The
// export is the canonical audit artifact of a run and is overwritten each
// time; the write goes through a temp file and an atomic rename so a failed
// run never leaves a truncated artifact behind.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/scholarlink/scholarlink/pkg/constants"
	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/reconcile"
)

// sideColumns are the per-side column suffixes, in output order.
var sideColumns = []string{
	"scientist",
	"scientist_link",
	"doctoral_student",
	"doctoral_student_link",
	"join_key",
}

// Header returns the CSV header row for the given side labels.
func Header(leftLabel, rightLabel string) []string {
	header := make([]string, 0, 2*len(sideColumns))
	for _, col := range sideColumns {
		header = append(header, leftLabel+"_"+col)
	}
	for _, col := range sideColumns {
		header = append(header, rightLabel+"_"+col)
	}
	return header
}

// Row flattens one reconciled pair into CSV cells. Columns of an absent side
// are empty strings.
func Row(p reconcile.Pair) []string {
	row := make([]string, 0, 2*len(sideColumns))
	row = append(row, sideCells(p.Left)...)
	row = append(row, sideCells(p.Right)...)
	return row
}

func sideCells(rec *linkage.KeyedRecord) []string {
	if rec == nil {
		return make([]string, len(sideColumns))
	}
	return []string{rec.SubjectID, rec.SubjectLink, rec.ObjectID, rec.ObjectLink, rec.JoinKey}
}

// CSV writes the union view with a header row to path, replacing any previous
// artifact at that location.
func CSV(path string, pairs []reconcile.Pair, leftLabel, rightLabel string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "export_*.csv")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	w := csv.NewWriter(tempFile)
	if err := w.Write(Header(leftLabel, rightLabel)); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	for _, p := range pairs {
		if err := w.Write(Row(p)); err != nil {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}

	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", tempPath, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
