// Package rdf provides the RDF core terms used by Annotopia.
package rdf

import "github.com/c360studio/semstreams/vocabulary"

// Namespace is the RDF syntax namespace.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Prefix is the conventional Turtle prefix for Namespace.
const Prefix = "rdf"

// Type states that a resource is an instance of a class.
const Type = Namespace + "type"

// PredicateType is the dotted form of Type.
const PredicateType = "rdf.syntax.type"

func init() {
	vocabulary.Register(PredicateType,
		vocabulary.WithDescription("Class the subject is an instance of"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Type))
}
