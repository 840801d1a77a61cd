package pav

import "github.com/c360studio/semstreams/vocabulary"

// Provenance predicates.
const (
	// PredicateCreatedBy links to the creating agent.
	PredicateCreatedBy = "pav.provenance.created_by"

	// PredicateCreatedAt is the RFC3339 creation timestamp.
	PredicateCreatedAt = "pav.provenance.created_at"

	// PredicateCreatedWith links to the creating software agent.
	PredicateCreatedWith = "pav.provenance.created_with"

	// PredicateLastUpdatedBy links to the agent of the last modification.
	PredicateLastUpdatedBy = "pav.provenance.last_updated_by"

	// PredicateLastUpdatedOn is the RFC3339 timestamp of the last modification.
	PredicateLastUpdatedOn = "pav.provenance.last_updated_on"

	// PredicatePreviousVersion links to the superseded version.
	PredicatePreviousVersion = "pav.provenance.previous_version"
)

func init() {
	vocabulary.Register(PredicateCreatedBy,
		vocabulary.WithDescription("Agent that created the item"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(CreatedBy))

	vocabulary.Register(PredicateCreatedAt,
		vocabulary.WithDescription("Creation timestamp (RFC3339)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(CreatedAt))

	vocabulary.Register(PredicateCreatedWith,
		vocabulary.WithDescription("Software used to create the item"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(CreatedWith))

	vocabulary.Register(PredicateLastUpdatedBy,
		vocabulary.WithDescription("Agent that last modified the item"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(LastUpdatedBy))

	vocabulary.Register(PredicateLastUpdatedOn,
		vocabulary.WithDescription("Last modification timestamp (RFC3339)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI(LastUpdatedOn))

	vocabulary.Register(PredicatePreviousVersion,
		vocabulary.WithDescription("Version this item replaces"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PreviousVersion))
}
