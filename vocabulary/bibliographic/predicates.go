package bibliographic

import (
	"github.com/c360studio/semstreams/vocabulary"
)

// Work predicates relate a document to the work it realizes.
const (
	// PredicateManifestationOf links a manifestation to its expression (FaBiO).
	PredicateManifestationOf = "biblio.work.manifestation_of"

	// PredicateEmbodimentOf links a manifestation to its expression (FRBR).
	PredicateEmbodimentOf = "biblio.work.embodiment_of"

	// PredicateTitle is the document title.
	PredicateTitle = "biblio.work.title"
)

// Identifier predicates carry external document identifiers.
const (
	PredicatePII   = "biblio.identifier.pii"
	PredicatePMCID = "biblio.identifier.pmcid"
	PredicatePMID  = "biblio.identifier.pmid"
	PredicateDOI   = "biblio.identifier.doi"
)

func init() {
	vocabulary.Register(PredicateManifestationOf,
		vocabulary.WithDescription("Expression this manifestation realizes"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(IsManifestationOf))

	vocabulary.Register(PredicateEmbodimentOf,
		vocabulary.WithDescription("Expression this manifestation embodies"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(EmbodimentOf))

	vocabulary.Register(PredicateTitle,
		vocabulary.WithDescription("Document title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Title))

	vocabulary.Register(PredicatePII,
		vocabulary.WithDescription("Publisher Item Identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PII))

	vocabulary.Register(PredicatePMCID,
		vocabulary.WithDescription("PubMed Central identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PMCID))

	vocabulary.Register(PredicatePMID,
		vocabulary.WithDescription("PubMed identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PMID))

	vocabulary.Register(PredicateDOI,
		vocabulary.WithDescription("Digital Object Identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DOI))
}
