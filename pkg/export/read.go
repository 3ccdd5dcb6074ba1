package export

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/scholarlink/scholarlink/pkg/errors"
	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/reconcile"
)

// ReadCSV loads a previously exported union view back into reconciled pairs.
// A side whose five cells are all empty is restored as nil, mirroring how
// Row writes absent sides.
func ReadCSV(path string) ([]reconcile.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("csv", path, "missing header row", nil)
	}
	if len(rows[0]) != 2*len(sideColumns) {
		return nil, errors.NewParseError("csv", path, "unexpected column count", nil)
	}
	if !strings.HasSuffix(rows[0][0], "_"+sideColumns[0]) {
		return nil, errors.NewParseError("csv", path, "unrecognized header row", nil)
	}

	pairs := make([]reconcile.Pair, 0, len(rows)-1)
	for _, row := range rows[1:] {
		pairs = append(pairs, reconcile.Pair{
			Left:  cellsSide(row[:len(sideColumns)]),
			Right: cellsSide(row[len(sideColumns):]),
		})
	}
	return pairs, nil
}

func cellsSide(cells []string) *linkage.KeyedRecord {
	empty := true
	for _, c := range cells {
		if c != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}
	return &linkage.KeyedRecord{
		SubjectID:   cells[0],
		SubjectLink: cells[1],
		ObjectID:    cells[2],
		ObjectLink:  cells[3],
		JoinKey:     cells[4],
	}
}
