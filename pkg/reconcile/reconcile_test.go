package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarlink/scholarlink/pkg/linkage"
)

func keyed(subjectLink, objectLink string) linkage.KeyedRecord {
	return linkage.SourceRecord{
		SubjectLink: subjectLink,
		ObjectLink:  objectLink,
	}.Keyed()
}

func TestReconcileMatched(t *testing.T) {
	left := []linkage.KeyedRecord{keyed("/wiki/A", "/wiki/B")}
	right := []linkage.KeyedRecord{keyed("/wiki/A", "/wiki/B")}

	result := New().Reconcile(context.Background(), left, right)

	require.Len(t, result.Matched, 1)
	assert.Empty(t, result.LeftOnly)
	assert.Empty(t, result.RightOnly)
	assert.Equal(t, "/wiki/A/wiki/B", result.Matched[0].Left.JoinKey)
	assert.Equal(t, "/wiki/A/wiki/B", result.Matched[0].Right.JoinKey)
}

func TestReconcileLeftOnly(t *testing.T) {
	left := []linkage.KeyedRecord{keyed("/wiki/A", "/wiki/B")}

	result := New().Reconcile(context.Background(), left, nil)

	require.Len(t, result.LeftOnly, 1)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.RightOnly)
	assert.Equal(t, "/wiki/A/wiki/B", result.LeftOnly[0].Left.JoinKey)
	assert.Nil(t, result.LeftOnly[0].Right)
}

func TestReconcileRightOnly(t *testing.T) {
	right := []linkage.KeyedRecord{keyed("/wiki/C", "/wiki/D")}

	result := New().Reconcile(context.Background(), nil, right)

	require.Len(t, result.RightOnly, 1)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.LeftOnly)
	assert.Nil(t, result.RightOnly[0].Left)
}

func TestReconcilePartitionsDisjointAndComplete(t *testing.T) {
	left := []linkage.KeyedRecord{
		keyed("/wiki/A", "/wiki/B"), // matches right
		keyed("/wiki/C", "/wiki/D"), // left-only
		keyed("/wiki/C", "/wiki/D"), // exact duplicate, collapses
	}
	right := []linkage.KeyedRecord{
		keyed("/wiki/A", "/wiki/B"), // matches left
		keyed("/wiki/E", "/wiki/F"), // right-only
	}

	result := New().Reconcile(context.Background(), left, right)

	// Completeness: the partitions together are exactly the union view.
	total := len(result.Matched) + len(result.LeftOnly) + len(result.RightOnly)
	assert.Equal(t, len(result.Pairs), total)

	// Disjointness: no row, by full column identity, in two partitions.
	seen := make(map[string]int)
	for _, partition := range [][]Pair{result.Matched, result.LeftOnly, result.RightOnly} {
		for _, p := range partition {
			seen[identity(p)]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "row %q appears in more than one partition", id)
	}

	assert.Len(t, result.Matched, 1)
	assert.Len(t, result.LeftOnly, 1)
	assert.Len(t, result.RightOnly, 1)
	assert.Equal(t, 1, result.Metadata.Stats.Duplicates)
}

func TestReconcileDuplicateRowsCollapse(t *testing.T) {
	left := []linkage.KeyedRecord{
		keyed("/wiki/A", "/wiki/B"),
		keyed("/wiki/A", "/wiki/B"),
	}
	right := []linkage.KeyedRecord{keyed("/wiki/A", "/wiki/B")}

	result := New().Reconcile(context.Background(), left, right)

	// Both left duplicates join the same right row and collapse to one.
	assert.Len(t, result.Pairs, 1)
	assert.Len(t, result.Matched, 1)
	assert.Equal(t, 1, result.Metadata.Stats.Duplicates)
}

func TestReconcileDistinctRowsSameKeySurvive(t *testing.T) {
	// Same join key but different subject IDs: not duplicates by full
	// column identity, so both rows stay.
	a := keyed("/wiki/A", "/wiki/B")
	a.SubjectID = "http://example.org/1"
	b := keyed("/wiki/A", "/wiki/B")
	b.SubjectID = "http://example.org/2"

	result := New().Reconcile(context.Background(), []linkage.KeyedRecord{a, b}, nil)

	assert.Len(t, result.Pairs, 2)
	assert.Len(t, result.LeftOnly, 2)
	assert.Zero(t, result.Metadata.Stats.Duplicates)
}

func TestReconcileManyToMany(t *testing.T) {
	// Two left rows and two right rows sharing one key produce the full
	// cross product, as an equality join does.
	a1 := keyed("/wiki/A", "/wiki/B")
	a1.SubjectID = "L1"
	a2 := keyed("/wiki/A", "/wiki/B")
	a2.SubjectID = "L2"
	b1 := keyed("/wiki/A", "/wiki/B")
	b1.SubjectID = "R1"
	b2 := keyed("/wiki/A", "/wiki/B")
	b2.SubjectID = "R2"

	result := New().Reconcile(context.Background(),
		[]linkage.KeyedRecord{a1, a2}, []linkage.KeyedRecord{b1, b2})

	assert.Len(t, result.Matched, 4)
	assert.Empty(t, result.LeftOnly)
	assert.Empty(t, result.RightOnly)
}

func TestReconcileStats(t *testing.T) {
	left := []linkage.KeyedRecord{keyed("/wiki/A", "/wiki/B")}
	right := []linkage.KeyedRecord{keyed("/wiki/C", "/wiki/D")}

	result := New().Reconcile(context.Background(), left, right)

	stats := result.Metadata.Stats
	assert.Equal(t, 1, stats.LeftRecords)
	assert.Equal(t, 1, stats.RightRecords)
	assert.Equal(t, 1, stats.LeftOnly)
	assert.Equal(t, 1, stats.RightOnly)
	assert.Zero(t, stats.Matched)
	assert.False(t, result.Metadata.FinishedAt.Before(result.Metadata.StartedAt))
}
