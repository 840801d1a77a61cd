package bibliographic_test

import (
	"testing"

	"github.com/annotopia/vocabularies/vocabulary/bibliographic"
	"github.com/c360studio/semstreams/vocabulary"
)

func TestIRIValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"IsManifestationOf", bibliographic.IsManifestationOf, "http://purl.org/spar/fabio#isManifestationOf"},
		{"EmbodimentOf", bibliographic.EmbodimentOf, "http://purl.org/vocab/frbr/core#embodimentOf"},
		{"Expression", bibliographic.Expression, "http://purl.org/vocab/frbr/core#Expression"},
		{"WebPage", bibliographic.WebPage, "http://purl.org/spar/fabio#WebPage"},
		{"PII", bibliographic.PII, "http://purl.org/spar/fabio#hasPII"},
		{"PMCID", bibliographic.PMCID, "http://purl.org/spar/fabio#hasPubMedCentralId"},
		{"PMID", bibliographic.PMID, "http://purl.org/spar/fabio#hasPubMedId"},
		{"DOI", bibliographic.DOI, "http://prismstandard.org/namespaces/basic/2.0/doi"},
		{"Title", bibliographic.Title, "http://purl.org/dc/terms/title"},
		{"LabelPII", bibliographic.LabelPII, "pii"},
		{"LabelPMCID", bibliographic.LabelPMCID, "pmcid"},
		{"LabelPMID", bibliographic.LabelPMID, "pmid"},
		{"LabelDOI", bibliographic.LabelDOI, "doi"},
		{"LabelURL", bibliographic.LabelURL, "url"},
		{"LabelTitle", bibliographic.LabelTitle, "title"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestPredicateIRIMappings(t *testing.T) {
	tests := []struct {
		predicate string
		wantIRI   string
	}{
		{bibliographic.PredicateManifestationOf, bibliographic.IsManifestationOf},
		{bibliographic.PredicateEmbodimentOf, bibliographic.EmbodimentOf},
		{bibliographic.PredicateTitle, bibliographic.Title},
		{bibliographic.PredicatePII, bibliographic.PII},
		{bibliographic.PredicatePMCID, bibliographic.PMCID},
		{bibliographic.PredicatePMID, bibliographic.PMID},
		{bibliographic.PredicateDOI, bibliographic.DOI},
	}

	for _, tc := range tests {
		t.Run(tc.predicate, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(tc.predicate)
			if meta == nil {
				t.Fatalf("predicate %q not registered", tc.predicate)
			}
			if meta.StandardIRI != tc.wantIRI {
				t.Errorf("got IRI %q, want %q", meta.StandardIRI, tc.wantIRI)
			}
		})
	}
}
