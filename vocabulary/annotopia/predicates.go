package annotopia

import "github.com/c360studio/semstreams/vocabulary"

// Lifecycle predicates.
const (
	// PredicateStatus is the lifecycle state of an item.
	// Values: Current
	PredicateStatus = "annotopia.item.status"

	// PredicateHasChanged reports whether the last update modified the item.
	PredicateHasChanged = "annotopia.item.has_changed"
)

// Graph predicates.
const (
	// PredicateBody links an annotation graph to its body graph.
	PredicateBody = "annotopia.graph.body"

	// PredicateBodiesCount is the number of body graphs.
	PredicateBodiesCount = "annotopia.graph.body_count"
)

// Annotation set predicates.
const (
	// PredicateAnnotations links a set to its annotations.
	PredicateAnnotations = "annotopia.set.annotations"
)

// Result predicates.
const (
	PredicateAnnotation           = "annotopia.result.annotation"
	PredicateAnnotationCount      = "annotopia.result.annotation_count"
	PredicateGraphAnnotation      = "annotopia.result.graph_annotation"
	PredicateGraphAnnotationCount = "annotopia.result.graph_annotation_count"
)

func init() {
	vocabulary.Register(PredicateStatus,
		vocabulary.WithDescription("Lifecycle state of a stored item"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Status))

	vocabulary.Register(PredicateHasChanged,
		vocabulary.WithDescription("Whether the last update modified the item"),
		vocabulary.WithDataType("bool"),
		vocabulary.WithIRI(HasChanged))

	vocabulary.Register(PredicateBody,
		vocabulary.WithDescription("Named graph holding the annotation body"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Body))

	vocabulary.Register(PredicateBodiesCount,
		vocabulary.WithDescription("Number of body graphs"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(BodiesCount))

	vocabulary.Register(PredicateAnnotations,
		vocabulary.WithDescription("Annotations belonging to an annotation set"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Annotations))

	vocabulary.Register(PredicateAnnotation,
		vocabulary.WithDescription("Annotation included in a result"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Annotation))

	vocabulary.Register(PredicateAnnotationCount,
		vocabulary.WithDescription("Number of annotations in a result"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(AnnotationCount))

	vocabulary.Register(PredicateGraphAnnotation,
		vocabulary.WithDescription("Annotation graph included in a result"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(GraphAnnotation))

	vocabulary.Register(PredicateGraphAnnotationCount,
		vocabulary.WithDescription("Number of annotation graphs in a result"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(GraphAnnotationCount))
}
