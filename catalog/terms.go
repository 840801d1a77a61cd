package catalog

import (
	"github.com/annotopia/vocabularies/vocabulary/annotopia"
	"github.com/annotopia/vocabularies/vocabulary/bibliographic"
	"github.com/annotopia/vocabularies/vocabulary/oa"
	"github.com/annotopia/vocabularies/vocabulary/pav"
	"github.com/annotopia/vocabularies/vocabulary/rdf"
)

// Term is a named constant of one vocabulary group.
type Term struct {
	Group Group  `json:"group" yaml:"group"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`

	// Namespace is the namespace of the ontology that defines Value.
	// Empty for literals.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Literal marks plain-string entries (the bibliographic LABEL_* names)
	// whose Value is not an IRI.
	Literal bool `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// Key returns "group/NAME", the form matched by Filter.
func (t Term) Key() string {
	return string(t.Group) + "/" + t.Name
}

func iri(name, namespace, value string) Term {
	return Term{Name: name, Value: value, Namespace: namespace}
}

func label(name, value string) Term {
	return Term{Name: name, Value: value, Literal: true}
}

// definitions lists every term under its published symbolic name.
var definitions = map[Group][]Term{
	GroupAnnotopia: {
		iri("AT_STATUS", annotopia.Namespace, annotopia.Status),
		iri("AT_CURRENT", annotopia.Namespace, annotopia.Current),
		iri("ANNOTATION_SET_GRAPH", annotopia.Namespace, annotopia.AnnotationSetGraph),
		iri("ANNOTATION_GRAPH", annotopia.Namespace, annotopia.AnnotationGraph),
		iri("BODY_GRAPH", annotopia.Namespace, annotopia.BodyGraph),
		iri("BODY", annotopia.Namespace, annotopia.Body),
		iri("BODIES_COUNT", annotopia.Namespace, annotopia.BodiesCount),
		iri("ANNOTATION_SET", annotopia.Namespace, annotopia.AnnotationSet),
		iri("ANNOTATIONS", annotopia.Namespace, annotopia.Annotations),
		iri("ANNOTATION", annotopia.Namespace, annotopia.Annotation),
		iri("ANNOTATION_COUNT", annotopia.Namespace, annotopia.AnnotationCount),
		iri("GRAPH_ANNOTATION", annotopia.Namespace, annotopia.GraphAnnotation),
		iri("GRAPH_ANNOTATION_COUNT", annotopia.Namespace, annotopia.GraphAnnotationCount),
		iri("HAS_CHANGED", annotopia.Namespace, annotopia.HasChanged),
	},
	GroupBibliographic: {
		iri("IS_MANIFESTATION_OF", bibliographic.FabioNamespace, bibliographic.IsManifestationOf),
		iri("EMBODIMENT_OF", bibliographic.FRBRNamespace, bibliographic.EmbodimentOf),
		iri("EXPRESSION", bibliographic.FRBRNamespace, bibliographic.Expression),
		iri("WEB_PAGE", bibliographic.FabioNamespace, bibliographic.WebPage),
		iri("PII", bibliographic.FabioNamespace, bibliographic.PII),
		label("LABEL_PII", bibliographic.LabelPII),
		iri("PMCID", bibliographic.FabioNamespace, bibliographic.PMCID),
		label("LABEL_PMCID", bibliographic.LabelPMCID),
		iri("PMID", bibliographic.FabioNamespace, bibliographic.PMID),
		label("LABEL_PMID", bibliographic.LabelPMID),
		iri("DOI", bibliographic.PRISMNamespace, bibliographic.DOI),
		label("LABEL_DOI", bibliographic.LabelDOI),
		label("LABEL_URL", bibliographic.LabelURL),
		iri("TITLE", bibliographic.DCTermsNamespace, bibliographic.Title),
		label("LABEL_TITLE", bibliographic.LabelTitle),
	},
	GroupOA: {
		iri("ANNOTATION", oa.Namespace, oa.Annotation),
		iri("SPECIFIC_RESOURCE", oa.Namespace, oa.SpecificResource),
		iri("CONTEXT_AS_TEXT", oa.ContentNamespace, oa.ContentAsText),
		iri("GRAPH", oa.RDFGNamespace, oa.Graph),
		iri("HAS_BODY", oa.Namespace, oa.HasBody),
	},
	GroupPAV: {
		iri("PAV_CREATED_BY", pav.Namespace, pav.CreatedBy),
		iri("PAV_CREATED_AT", pav.Namespace, pav.CreatedAt),
		iri("PAV_CREATED_WITH", pav.Namespace, pav.CreatedWith),
		iri("PAV_LAST_UPDATED_BY", pav.Namespace, pav.LastUpdatedBy),
		iri("PAV_LAST_UPDATED_ON", pav.Namespace, pav.LastUpdatedOn),
		iri("PAV_PREVIOUS_VERSION", pav.Namespace, pav.PreviousVersion),
	},
	GroupRDF: {
		iri("RDF_TYPE", rdf.Namespace, rdf.Type),
	},
}
