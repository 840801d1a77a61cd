package oa

import "github.com/c360studio/semstreams/vocabulary"

// PredicateHasBody links an annotation to its body.
const PredicateHasBody = "oa.annotation.has_body"

func init() {
	vocabulary.Register(PredicateHasBody,
		vocabulary.WithDescription("Body of the annotation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(HasBody))
}
