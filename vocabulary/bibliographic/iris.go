// Package bibliographic provides the bibliographic terms used to describe
// annotated documents: FaBiO and FRBR work/manifestation terms, the PRISM
// DOI property, Dublin Core title, and the short labels clients use to name
// each identifier scheme.
package bibliographic

// Namespace IRIs for the ontologies this package draws from.
const (
	FabioNamespace   = "http://purl.org/spar/fabio#"
	FRBRNamespace    = "http://purl.org/vocab/frbr/core#"
	PRISMNamespace   = "http://prismstandard.org/namespaces/basic/2.0/"
	DCTermsNamespace = "http://purl.org/dc/terms/"
)

// Work and manifestation IRIs.
const (
	// IsManifestationOf links a manifestation to the expression it realizes.
	IsManifestationOf = FabioNamespace + "isManifestationOf"

	// EmbodimentOf links a manifestation to the expression it embodies.
	EmbodimentOf = FRBRNamespace + "embodimentOf"

	// Expression is the FRBR class of intellectual or artistic realizations.
	Expression = FRBRNamespace + "Expression"

	// WebPage is the FaBiO class of web pages.
	WebPage = FabioNamespace + "WebPage"
)

// Identifier property IRIs.
const (
	// PII is the Publisher Item Identifier property.
	PII = FabioNamespace + "hasPII"

	// PMCID is the PubMed Central identifier property.
	PMCID = FabioNamespace + "hasPubMedCentralId"

	// PMID is the PubMed identifier property.
	PMID = FabioNamespace + "hasPubMedId"

	// DOI is the Digital Object Identifier property.
	DOI = PRISMNamespace + "doi"

	// Title is the Dublin Core title property.
	Title = DCTermsNamespace + "title"
)

// Labels name identifier schemes in client payloads and query parameters.
// They are plain strings, not IRIs.
const (
	LabelPII   = "pii"
	LabelPMCID = "pmcid"
	LabelPMID  = "pmid"
	LabelDOI   = "doi"
	LabelURL   = "url"
	LabelTitle = "title"
)
