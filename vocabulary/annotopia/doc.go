// Package annotopia provides the Annotopia vocabulary: the classes and
// properties Annotopia adds on top of Open Annotation to describe how
// annotations, annotation sets and their bodies are stored as named graphs.
//
// The IRIs in this package are published identifiers. They appear in RDF
// already written to external triple stores and must stay byte-for-byte
// stable.
//
// # Graph layout
//
// Annotopia keeps every annotation set, annotation and body in its own
// named graph. The graph classes tell the graphs apart:
//
//	AnnotationSetGraph → graph holding an annotation set
//	AnnotationGraph    → graph holding a single annotation
//	BodyGraph          → graph holding an annotation body
//
// Counters (BodiesCount, AnnotationCount, GraphAnnotationCount) are attached
// to search results, and Status/Current mark the live version of an item.
//
// # Semstreams Integration
//
// Properties are registered in init() as dotted predicates under the
// "annotopia" domain, each mapped back to its IRI with vocabulary.WithIRI:
//
//	import _ "github.com/annotopia/vocabularies/vocabulary/annotopia"
//
//	meta := vocabulary.GetPredicateMetadata(annotopia.PredicateStatus)
//	meta.StandardIRI // "http://purl.org/annotopia#status"
package annotopia
