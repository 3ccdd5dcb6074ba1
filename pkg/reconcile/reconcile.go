// Package reconcile joins the keyed record tables of the two knowledge graphs
// into a single deduplicated union view and partitions it into matched,
// left-only and right-only sets.
//
// The join is a full outer hash join on the derived join key, evaluated in a
// single process. Rows that are identical across every output column collapse
// to one. The three partitions are pairwise disjoint and together equal the
// union view exactly.
package reconcile

import (
	"context"
	"strings"

	"github.com/agentstation/utc"

	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/logging"
)

// Reconciler joins two keyed record tables on their join keys.
type Reconciler interface {
	// Reconcile full outer-joins left and right, deduplicates the result,
	// and partitions it. Inputs are not mutated.
	Reconcile(ctx context.Context, left, right []linkage.KeyedRecord) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct{}

// New creates a new Reconciler.
func New() Reconciler {
	return &reconciler{}
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(ctx context.Context, left, right []linkage.KeyedRecord) *Result {
	logger := logging.FromContext(ctx)

	result := &Result{}
	result.Metadata.StartedAt = utc.Now()
	result.Metadata.Stats.LeftRecords = len(left)
	result.Metadata.Stats.RightRecords = len(right)

	// Index the right table by join key.
	rightByKey := make(map[string][]int, len(right))
	for i := range right {
		rightByKey[right[i].JoinKey] = append(rightByKey[right[i].JoinKey], i)
	}

	// Probe with the left table; every left row emits at least one pair.
	rightMatched := make([]bool, len(right))
	pairs := make([]Pair, 0, len(left)+len(right))
	for i := range left {
		matches := rightByKey[left[i].JoinKey]
		if len(matches) == 0 {
			pairs = append(pairs, Pair{Left: &left[i]})
			continue
		}
		for _, j := range matches {
			pairs = append(pairs, Pair{Left: &left[i], Right: &right[j]})
			rightMatched[j] = true
		}
	}

	// Right rows that matched nothing complete the outer join.
	for j := range right {
		if !rightMatched[j] {
			pairs = append(pairs, Pair{Right: &right[j]})
		}
	}

	result.Pairs = dedupe(pairs)
	result.Metadata.Stats.Duplicates = len(pairs) - len(result.Pairs)

	// Partition the union by nullness of each side. The checks are mutually
	// exclusive, so no pair lands in two partitions.
	for _, p := range result.Pairs {
		switch {
		case p.Matched():
			result.Matched = append(result.Matched, p)
		case p.LeftOnly():
			result.LeftOnly = append(result.LeftOnly, p)
		default:
			result.RightOnly = append(result.RightOnly, p)
		}
	}

	result.Metadata.Stats.Matched = len(result.Matched)
	result.Metadata.Stats.LeftOnly = len(result.LeftOnly)
	result.Metadata.Stats.RightOnly = len(result.RightOnly)
	result.Metadata.FinishedAt = utc.Now()

	logger.Info().
		Int("union", len(result.Pairs)).
		Int("matched", len(result.Matched)).
		Int("left_only", len(result.LeftOnly)).
		Int("right_only", len(result.RightOnly)).
		Int("duplicates", result.Metadata.Stats.Duplicates).
		Msg("Reconciled sources")

	return result
}

// dedupe collapses pairs that are identical across every output column,
// keeping the first occurrence.
func dedupe(pairs []Pair) []Pair {
	seen := make(map[string]struct{}, len(pairs))
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		id := identity(p)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, p)
	}
	return out
}

// identity builds a comparison key covering every output column of a pair,
// including the nullness of each side. The unit separator keeps adjacent
// columns from bleeding into each other.
func identity(p Pair) string {
	var b strings.Builder
	writeSide(&b, p.Left)
	writeSide(&b, p.Right)
	return b.String()
}

func writeSide(b *strings.Builder, rec *linkage.KeyedRecord) {
	if rec == nil {
		b.WriteString("\x00\x1f")
		return
	}
	for _, col := range []string{rec.SubjectID, rec.SubjectLink, rec.ObjectID, rec.ObjectLink, rec.JoinKey} {
		b.WriteString(col)
		b.WriteByte('\x1f')
	}
}
