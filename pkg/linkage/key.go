package linkage

// JoinKey derives the reconciliation key for a record: the subject's canonical
// link followed by the object's, with no delimiter between them.
//
// Known weakness: without a delimiter the key is not collision-free
// ("AB"+"C" and "A"+"BC" produce the same key). Downstream matching depends on
// bit-for-bit equality of these exact keys, so inserting a delimiter would
// change which records reconcile. Keep as is.
func JoinKey(subject, object string) string {
	return subject + object
}
