package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/reconcile"
)

func testPairs() []reconcile.Pair {
	matched := linkage.SourceRecord{
		SubjectID:   "http://www.wikidata.org/entity/Q38193",
		SubjectLink: "/wiki/Abdus_Salam",
		ObjectID:    "http://www.wikidata.org/entity/Q4665679",
		ObjectLink:  "/wiki/Qaisar_Shafi",
	}.Keyed()
	leftOnly := linkage.SourceRecord{
		SubjectID:   "http://www.wikidata.org/entity/Q937",
		SubjectLink: "/wiki/Albert_Einstein",
		ObjectID:    "http://www.wikidata.org/entity/Q57246",
		ObjectLink:  "/wiki/Ernst_G._Straus",
	}.Keyed()
	rightOnly := linkage.SourceRecord{
		SubjectID:   "http://dbpedia.org/resource/Arnold_Sommerfeld",
		SubjectLink: "/wiki/Arnold_Sommerfeld",
		ObjectID:    "http://dbpedia.org/resource/Werner_Heisenberg",
		ObjectLink:  "/wiki/Werner_Heisenberg",
	}.Keyed()

	return []reconcile.Pair{
		{Left: &matched, Right: &matched},
		{Left: &leftOnly},
		{Right: &rightOnly},
	}
}

func TestCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.csv")
	require.NoError(t, CSV(path, testPairs(), "wikidata", "dbpedia"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"wikidata_scientist", "wikidata_scientist_link",
		"wikidata_doctoral_student", "wikidata_doctoral_student_link",
		"wikidata_join_key",
		"dbpedia_scientist", "dbpedia_scientist_link",
		"dbpedia_doctoral_student", "dbpedia_doctoral_student_link",
		"dbpedia_join_key",
	}, rows[0])

	// Matched row carries both sides.
	assert.Equal(t, "/wiki/Abdus_Salam", rows[1][1])
	assert.Equal(t, "/wiki/Abdus_Salam/wiki/Qaisar_Shafi", rows[1][4])
	assert.Equal(t, "/wiki/Abdus_Salam/wiki/Qaisar_Shafi", rows[1][9])

	// Left-only row has an empty right side.
	for _, cell := range rows[2][5:] {
		assert.Empty(t, cell)
	}

	// Right-only row has an empty left side.
	for _, cell := range rows[3][:5] {
		assert.Empty(t, cell)
	}
}

func TestCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.csv")
	require.NoError(t, CSV(path, testPairs(), "wikidata", "dbpedia"))
	require.NoError(t, CSV(path, testPairs()[:1], "wikidata", "dbpedia"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2) // header + one row
}

func TestReadCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combined.csv")
	original := testPairs()
	require.NoError(t, CSV(path, original, "wikidata", "dbpedia"))

	restored, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, restored, len(original))

	assert.True(t, restored[0].Matched())
	assert.Equal(t, *original[0].Left, *restored[0].Left)
	assert.Equal(t, *original[0].Right, *restored[0].Right)

	assert.True(t, restored[1].LeftOnly())
	assert.Nil(t, restored[1].Right)

	assert.True(t, restored[2].RightOnly())
	assert.Nil(t, restored[2].Left)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadCSVBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}
