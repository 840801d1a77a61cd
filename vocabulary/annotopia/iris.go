package annotopia

// Namespace is the base IRI of the Annotopia vocabulary.
const Namespace = "http://purl.org/annotopia#"

// Prefix is the conventional Turtle prefix for Namespace.
const Prefix = "at"

// Status IRIs mark the lifecycle state of a stored item.
const (
	// Status links an item to its lifecycle state.
	Status = Namespace + "status"

	// Current is the state of the live (not superseded) version of an item.
	// Used as the object of Status.
	Current = Namespace + "current"
)

// Graph class IRIs identify the kind of named graph an item is stored in.
const (
	// AnnotationSetGraph is the class of graphs holding an annotation set.
	AnnotationSetGraph = Namespace + "AnnotationSetGraph"

	// AnnotationGraph is the class of graphs holding a single annotation.
	AnnotationGraph = Namespace + "AnnotationGraph"

	// BodyGraph is the class of graphs holding an annotation body.
	BodyGraph = Namespace + "BodyGraph"

	// Body links an annotation graph to the graph holding its body.
	Body = Namespace + "graphbody"

	// BodiesCount is the number of body graphs in a result.
	BodiesCount = Namespace + "graphbodycount"
)

// Annotation set IRIs.
const (
	// AnnotationSet is the class of annotation sets.
	AnnotationSet = Namespace + "AnnotationSet"

	// Annotations links an annotation set to its member annotations.
	Annotations = Namespace + "annotations"
)

// Result IRIs describe annotations returned by a search.
const (
	// Annotation links a result to an annotation.
	Annotation = Namespace + "annotation"

	// AnnotationCount is the number of annotations in a result.
	AnnotationCount = Namespace + "annotationcount"

	// GraphAnnotation links a result to an annotation graph.
	GraphAnnotation = Namespace + "graphannotation"

	// GraphAnnotationCount is the number of annotation graphs in a result.
	GraphAnnotationCount = Namespace + "graphannotationcount"
)

// HasChanged flags whether an item was modified by the last update.
const HasChanged = Namespace + "hasChanged"
