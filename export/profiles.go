package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/annotopia/vocabularies/catalog"
	"github.com/annotopia/vocabularies/vocabulary/bibliographic"
	"github.com/annotopia/vocabularies/vocabulary/rdf"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/vocabulary"
)

// Profile determines which annotations are emitted for each term.
type Profile string

const (
	// ProfileMinimal emits rdfs:label only.
	ProfileMinimal Profile = "minimal"

	// ProfileFull adds rdfs:isDefinedBy, skos:notation for identifier
	// properties, and an owl:Ontology header for the document.
	ProfileFull Profile = "full"
)

// ErrUnsupportedProfile is returned for profile names other than minimal and
// full.
var ErrUnsupportedProfile = errors.New("unsupported profile")

// Standard IRIs of the annotation properties used in the vocabulary document.
const (
	RDFSLabel       = "http://www.w3.org/2000/01/rdf-schema#label"
	RDFSIsDefinedBy = "http://www.w3.org/2000/01/rdf-schema#isDefinedBy"
	SKOSNotation    = "http://www.w3.org/2004/02/skos/core#notation"
	OWLOntology     = "http://www.w3.org/2002/07/owl#Ontology"
)

// Dotted predicates for the annotation properties.
const (
	PredicateLabel     = "vocab.term.label"
	PredicateDefinedBy = "vocab.term.defined_by"
	PredicateNotation  = "vocab.term.notation"
)

// source is recorded on every generated triple.
const source = "annotopia.vocab-export"

func init() {
	vocabulary.Register(PredicateLabel,
		vocabulary.WithDescription("Symbolic name of a vocabulary term"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RDFSLabel))

	vocabulary.Register(PredicateDefinedBy,
		vocabulary.WithDescription("Namespace defining a vocabulary term"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(RDFSIsDefinedBy))

	vocabulary.Register(PredicateNotation,
		vocabulary.WithDescription("Identifier scheme label of a bibliographic property"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SKOSNotation))
}

// ParseProfile converts a case-insensitive profile name to a Profile.
// An empty name selects ProfileFull.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProfileFull:
		return ProfileFull, nil
	case ProfileMinimal:
		return ProfileMinimal, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: minimal, full)", ErrUnsupportedProfile, s)
	}
}

// TermTriples returns the triples describing a single term. Literal terms
// (the bibliographic labels) have no IRI to describe and yield nil.
func TermTriples(term catalog.Term, profile Profile) []message.Triple {
	if term.Literal {
		return nil
	}

	triples := []message.Triple{
		newTriple(term.Value, PredicateLabel, term.Name),
	}
	if profile == ProfileMinimal {
		return triples
	}

	if term.Namespace != "" {
		triples = append(triples, newTriple(term.Value, PredicateDefinedBy, term.Namespace))
	}
	if term.Group == catalog.GroupBibliographic {
		if label, ok := bibliographic.IdentifierLabel(term.Value); ok {
			triples = append(triples, newTriple(term.Value, PredicateNotation, label))
		}
	}
	return triples
}

// documentTriples describes the vocabulary document itself.
func documentTriples(baseIRI string) []message.Triple {
	return []message.Triple{
		newTriple(baseIRI, rdf.PredicateType, OWLOntology),
	}
}

func newTriple(subject, predicate string, object any) message.Triple {
	return message.Triple{
		Subject:    subject,
		Predicate:  predicate,
		Object:     object,
		Source:     source,
		Confidence: 1.0,
	}
}
