package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/reconcile"
)

func testUnion() []reconcile.Pair {
	matched := linkage.SourceRecord{SubjectLink: "/wiki/A", ObjectLink: "/wiki/B"}.Keyed()
	leftOnly := linkage.SourceRecord{SubjectLink: "/wiki/C", ObjectLink: "/wiki/D"}.Keyed()
	rightOnly := linkage.SourceRecord{SubjectLink: "/wiki/E", ObjectLink: "/wiki/F"}.Keyed()
	return []reconcile.Pair{
		{Left: &matched, Right: &matched},
		{Left: &leftOnly},
		{Right: &rightOnly},
	}
}

func TestSelectPartition(t *testing.T) {
	union := testUnion()

	tests := []struct {
		partition string
		expected  int
	}{
		{"matched", 1},
		{"left-only", 1},
		{"right-only", 1},
		{"all", 3},
	}

	for _, tt := range tests {
		t.Run(tt.partition, func(t *testing.T) {
			selected, err := selectPartition(union, tt.partition)
			require.NoError(t, err)
			assert.Len(t, selected, tt.expected)
		})
	}
}

func TestSelectPartitionUnknown(t *testing.T) {
	_, err := selectPartition(testUnion(), "bogus")
	assert.Error(t, err)
}
