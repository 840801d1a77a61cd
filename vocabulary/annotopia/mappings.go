package annotopia

import (
	"github.com/annotopia/vocabularies/vocabulary/oa"
	"github.com/c360studio/semstreams/vocabulary"
)

// ItemType identifies the kind of stored item for type mapping.
type ItemType string

// Item types handled by the annotation store.
const (
	// ItemTypeAnnotationSet is an annotation set and its member list.
	ItemTypeAnnotationSet ItemType = "annotation_set"
	// ItemTypeAnnotation is a single annotation.
	ItemTypeAnnotation ItemType = "annotation"
	// ItemTypeAnnotationGraph is the named graph holding one annotation.
	ItemTypeAnnotationGraph ItemType = "annotation_graph"
	// ItemTypeBodyGraph is the named graph holding an annotation body.
	ItemTypeBodyGraph ItemType = "body_graph"
	// ItemTypeTextBody is a textual body embedded in the annotation.
	ItemTypeTextBody ItemType = "text_body"
)

// ClassMap maps item types to Annotopia class IRIs.
var ClassMap = map[ItemType]string{
	ItemTypeAnnotationSet:   AnnotationSet,
	ItemTypeAnnotationGraph: AnnotationGraph,
	ItemTypeBodyGraph:       BodyGraph,
}

// OAClassMap maps item types to Open Annotation class IRIs.
var OAClassMap = map[ItemType]string{
	ItemTypeAnnotation:      oa.Annotation,
	ItemTypeAnnotationGraph: oa.Graph,
	ItemTypeBodyGraph:       oa.Graph,
	ItemTypeTextBody:        oa.ContentAsText,
}

// PROVClassMap maps item types to PROV-O class IRIs.
// Only consulted for the full profile.
var PROVClassMap = map[ItemType]string{
	ItemTypeAnnotationSet:   vocabulary.ProvEntity,
	ItemTypeAnnotation:      vocabulary.ProvEntity,
	ItemTypeAnnotationGraph: vocabulary.ProvEntity,
	ItemTypeBodyGraph:       vocabulary.ProvEntity,
	ItemTypeTextBody:        vocabulary.ProvEntity,
}

// TypesFor returns the rdf:type IRIs for an item type.
// Profile determines which ontology types are included:
//   - "minimal": Annotopia + Open Annotation types
//   - "full": adds PROV-O types
func TypesFor(itemType ItemType, profile string) []string {
	types := make([]string, 0, 3)

	if class, ok := ClassMap[itemType]; ok {
		types = append(types, class)
	}
	if class, ok := OAClassMap[itemType]; ok {
		types = append(types, class)
	}
	if profile == "full" {
		if class, ok := PROVClassMap[itemType]; ok {
			types = append(types, class)
		}
	}

	return types
}

// PredicateIRI returns the standard IRI registered for a dotted predicate.
// Unregistered predicates fall back to the Annotopia namespace.
func PredicateIRI(predicate string) string {
	if meta := vocabulary.GetPredicateMetadata(predicate); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return Namespace + predicate
}
