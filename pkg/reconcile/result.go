package reconcile

import (
	"github.com/agentstation/utc"

	"github.com/scholarlink/scholarlink/pkg/linkage"
)

// Pair is one row of the full outer join between the two sources' keyed
// tables. Exactly one side may be nil, never both. Pairs are created once by
// the reconciler and never mutated afterward.
type Pair struct {
	Left  *linkage.KeyedRecord `json:"left,omitempty"`
	Right *linkage.KeyedRecord `json:"right,omitempty"`
}

// Matched reports whether both sides carry a record.
func (p Pair) Matched() bool {
	return p.Left != nil && p.Right != nil
}

// LeftOnly reports whether only the left source carries this fact.
func (p Pair) LeftOnly() bool {
	return p.Left != nil && p.Right == nil
}

// RightOnly reports whether only the right source carries this fact.
func (p Pair) RightOnly() bool {
	return p.Left == nil && p.Right != nil
}

// Statistics summarizes one reconciliation run.
type Statistics struct {
	LeftRecords  int `json:"left_records"`
	RightRecords int `json:"right_records"`
	Duplicates   int `json:"duplicates"`
	Matched      int `json:"matched"`
	LeftOnly     int `json:"left_only"`
	RightOnly    int `json:"right_only"`
}

// Metadata carries run timing and statistics.
type Metadata struct {
	StartedAt  utc.Time   `json:"started_at"`
	FinishedAt utc.Time   `json:"finished_at"`
	Stats      Statistics `json:"stats"`
}

// Result holds the deduplicated union view and its three disjoint partitions.
// The partitions share the union's Pair values rather than copying them, and
// their union is exactly Pairs. No output order is defined; consumers must
// not rely on row order.
type Result struct {
	// Pairs is the deduplicated full outer join of the two input tables.
	Pairs []Pair `json:"pairs"`

	// Matched holds pairs present in both sources.
	Matched []Pair `json:"matched"`

	// LeftOnly holds pairs present only in the left source.
	LeftOnly []Pair `json:"left_only"`

	// RightOnly holds pairs present only in the right source.
	RightOnly []Pair `json:"right_only"`

	Metadata Metadata `json:"metadata"`
}
