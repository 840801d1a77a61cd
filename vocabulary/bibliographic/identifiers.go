package bibliographic

import "strings"

// Identifier pairs a scheme label with the property that carries it.
// Predicate is empty for schemes without a dedicated property (url).
type Identifier struct {
	Label     string
	Predicate string
}

// identifiers is ordered the way schemes are listed in payloads.
var identifiers = []Identifier{
	{Label: LabelPII, Predicate: PII},
	{Label: LabelPMCID, Predicate: PMCID},
	{Label: LabelPMID, Predicate: PMID},
	{Label: LabelDOI, Predicate: DOI},
	{Label: LabelURL},
	{Label: LabelTitle, Predicate: Title},
}

// Identifiers returns the known identifier schemes in a fixed order.
// The returned slice is a copy.
func Identifiers() []Identifier {
	out := make([]Identifier, len(identifiers))
	copy(out, identifiers)
	return out
}

// IdentifierPredicate returns the property IRI for a scheme label.
// Labels are matched case-insensitively after trimming whitespace.
// Returns false for unknown labels and for schemes with no property.
func IdentifierPredicate(label string) (string, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, id := range identifiers {
		if id.Label == label {
			return id.Predicate, id.Predicate != ""
		}
	}
	return "", false
}

// IdentifierLabel returns the scheme label for a property IRI.
func IdentifierLabel(predicate string) (string, bool) {
	if predicate == "" {
		return "", false
	}
	for _, id := range identifiers {
		if id.Predicate == predicate {
			return id.Label, true
		}
	}
	return "", false
}
