// Package oa provides the Open Annotation terms used by Annotopia.
// See http://www.openannotation.org/spec/core/.
package oa

// Namespace IRIs.
const (
	Namespace        = "http://www.w3.org/ns/oa#"
	ContentNamespace = "http://www.w3.org/2011/content#"
	RDFGNamespace    = "http://www.w3.org/2004/03/trix/rdfg-1/"
)

// Prefix is the conventional Turtle prefix for Namespace.
const Prefix = "oa"

// Class IRIs.
const (
	// Annotation is the class of annotations.
	Annotation = Namespace + "Annotation"

	// SpecificResource is the class of targets or bodies narrowed by a
	// selector, state or style.
	SpecificResource = Namespace + "SpecificResource"

	// ContentAsText is the class of textual bodies embedded in the annotation.
	ContentAsText = ContentNamespace + "ContentAsText"

	// Graph is the class of named graphs used as annotation bodies.
	Graph = RDFGNamespace + "Graph"
)

// HasBody links an annotation to its body.
const HasBody = Namespace + "hasBody"
