// Package catalog indexes the Annotopia vocabularies by group and symbolic
// name.
//
// The catalog is built once during package initialization from the constants
// in the vocabulary/* packages and is never modified afterwards, so every
// function here is safe for concurrent use without locking. Symbolic names
// are the published upper-case names (for example "HAS_BODY" or
// "PAV_CREATED_BY"); values are returned byte-for-byte as they appear in
// stored RDF.
//
//	iri, ok := catalog.Lookup(catalog.GroupOA, "HAS_BODY")
//	// iri == "http://www.w3.org/ns/oa#hasBody"
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/annotopia/vocabularies/vocabulary/annotopia"
	"github.com/annotopia/vocabularies/vocabulary/bibliographic"
	"github.com/annotopia/vocabularies/vocabulary/oa"
	"github.com/annotopia/vocabularies/vocabulary/pav"
	"github.com/annotopia/vocabularies/vocabulary/rdf"
)

// Group identifies one of the vocabularies in the catalog.
type Group string

// Known groups.
const (
	GroupAnnotopia     Group = "annotopia"
	GroupBibliographic Group = "bibliographic"
	GroupOA            Group = "oa"
	GroupPAV           Group = "pav"
	GroupRDF           Group = "rdf"
)

// ErrUnknownGroup is returned when a group name does not match any vocabulary.
var ErrUnknownGroup = errors.New("unknown vocabulary group")

var groupOrder = []Group{
	GroupAnnotopia,
	GroupBibliographic,
	GroupOA,
	GroupPAV,
	GroupRDF,
}

// groupNamespaces holds the namespace each group's terms are defined by.
// Bibliographic and OA borrow terms from several ontologies; the namespace
// listed is the one most of their terms live in.
var groupNamespaces = map[Group]string{
	GroupAnnotopia:     annotopia.Namespace,
	GroupBibliographic: bibliographic.FabioNamespace,
	GroupOA:            oa.Namespace,
	GroupPAV:           pav.Namespace,
	GroupRDF:           rdf.Namespace,
}

// Groups returns all groups in a fixed order.
func Groups() []Group {
	out := make([]Group, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// ParseGroup converts a case-insensitive group name to a Group.
func ParseGroup(s string) (Group, error) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := groupNamespaces[g]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}
	return g, nil
}

// String returns the group name.
func (g Group) String() string {
	return string(g)
}

// Namespace returns the primary namespace IRI of the group, or "" for an
// unknown group.
func (g Group) Namespace() string {
	return groupNamespaces[g]
}
