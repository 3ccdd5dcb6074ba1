package linkage

import "strings"

// WikiMarker is the path segment that introduces an encyclopedia article in
// both sources' link formats. Everything before it (scheme, host, query
// differences between Wikidata sitelinks and DBpedia foaf links) is noise.
const WikiMarker = "/wiki/"

// Canonical maps a raw article link to its source-agnostic form.
//
// An empty input stays empty. If the link contains WikiMarker, the marker and
// everything after it is returned, so the same article yields the same string
// regardless of which source produced the link. A link without the marker is
// returned unchanged; pass-through is deliberate, not an error.
//
// Canonical is pure and idempotent: Canonical(Canonical(s)) == Canonical(s).
func Canonical(link string) string {
	if link == "" {
		return link
	}
	if i := strings.Index(link, WikiMarker); i >= 0 {
		return link[i:]
	}
	return link
}
