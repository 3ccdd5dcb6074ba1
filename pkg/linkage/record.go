// Package linkage defines the record types flowing through the reconciliation
// pipeline and the identifier normalization and join-key derivation rules that
// make records from heterogeneous knowledge graphs comparable.
package linkage

// SourceRecord is one scientist/doctoral-student row retrieved from a source.
// Links are raw hyperlink strings as returned by the endpoint; an absent link
// is the empty string. Duplicates from the source are possible at this stage.
type SourceRecord struct {
	SubjectID   string `json:"subject_id"`
	SubjectLink string `json:"subject_link"`
	ObjectID    string `json:"object_id"`
	ObjectLink  string `json:"object_link"`
}

// Normalize returns a copy of the record with both links replaced by their
// canonical form. Normalizing an already-normalized record is a no-op.
func (r SourceRecord) Normalize() SourceRecord {
	r.SubjectLink = Canonical(r.SubjectLink)
	r.ObjectLink = Canonical(r.ObjectLink)
	return r
}

// KeyedRecord is a normalized record plus its derived join key.
type KeyedRecord struct {
	SubjectID   string `json:"subject_id"`
	SubjectLink string `json:"subject_link"`
	ObjectID    string `json:"object_id"`
	ObjectLink  string `json:"object_link"`
	JoinKey     string `json:"join_key"`
}

// Keyed normalizes the record and derives its join key.
func (r SourceRecord) Keyed() KeyedRecord {
	n := r.Normalize()
	return KeyedRecord{
		SubjectID:   n.SubjectID,
		SubjectLink: n.SubjectLink,
		ObjectID:    n.ObjectID,
		ObjectLink:  n.ObjectLink,
		JoinKey:     JoinKey(n.SubjectLink, n.ObjectLink),
	}
}

// KeyAll converts a table of source records into keyed records.
func KeyAll(records []SourceRecord) []KeyedRecord {
	keyed := make([]KeyedRecord, len(records))
	for i, r := range records {
		keyed[i] = r.Keyed()
	}
	return keyed
}
