// Package prompt renders reconciled pairs into the tagged question units that
// are handed to a language model for manual evaluation.
package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/scholarlink/scholarlink/pkg/linkage"
	"github.com/scholarlink/scholarlink/pkg/reconcile"
)

// Side selects which source's link columns feed the renderer.
type Side int

const (
	// Left renders from the left source's columns.
	Left Side = iota
	// Right renders from the right source's columns.
	Right
)

// unitTemplate is the fixed question unit form. The object (student) comes
// first in the question, the subject (advisor) second.
const unitTemplate = "<entity><question>Is %s a student of %s?</question><answer></answer></entity>"

// DisplayName derives a human-readable name from an article link: the path
// segment after the wiki marker with underscores replaced by spaces and each
// word title-cased. It returns false when no name can be derived (empty link
// or marker absent); such rows are skipped, not errors.
func DisplayName(link string) (string, bool) {
	i := strings.Index(link, linkage.WikiMarker)
	if i < 0 {
		return "", false
	}
	slug := link[i+len(linkage.WikiMarker):]
	if slug == "" {
		return "", false
	}
	name := strings.ReplaceAll(slug, "_", " ")
	return cases.Title(language.English).String(name), true
}

// Unit renders one question unit from a subject and object link. It returns
// false when either display name cannot be derived.
func Unit(subjectLink, objectLink string) (string, bool) {
	subject, ok := DisplayName(subjectLink)
	if !ok {
		return "", false
	}
	object, ok := DisplayName(objectLink)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(unitTemplate, object, subject), true
}

// Render converts a table of reconciled pairs into one newline-joined batch of
// question units, reading links from the designated side. Rows whose side is
// absent or whose names cannot be derived are silently skipped; the skip count
// is reported for statistics only.
func Render(pairs []reconcile.Pair, side Side) (batch string, skipped int) {
	units := make([]string, 0, len(pairs))
	for _, p := range pairs {
		rec := p.Left
		if side == Right {
			rec = p.Right
		}
		if rec == nil {
			skipped++
			continue
		}
		unit, ok := Unit(rec.SubjectLink, rec.ObjectLink)
		if !ok {
			skipped++
			continue
		}
		units = append(units, unit)
	}
	return strings.Join(units, "\n"), skipped
}
