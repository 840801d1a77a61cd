package catalog

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// published lists every term with the literal value stored in existing RDF.
var published = []struct {
	group Group
	name  string
	value string
}{
	{GroupAnnotopia, "AT_STATUS", "http://purl.org/annotopia#status"},
	{GroupAnnotopia, "AT_CURRENT", "http://purl.org/annotopia#current"},
	{GroupAnnotopia, "ANNOTATION_SET_GRAPH", "http://purl.org/annotopia#AnnotationSetGraph"},
	{GroupAnnotopia, "ANNOTATION_GRAPH", "http://purl.org/annotopia#AnnotationGraph"},
	{GroupAnnotopia, "BODY_GRAPH", "http://purl.org/annotopia#BodyGraph"},
	{GroupAnnotopia, "BODY", "http://purl.org/annotopia#graphbody"},
	{GroupAnnotopia, "BODIES_COUNT", "http://purl.org/annotopia#graphbodycount"},
	{GroupAnnotopia, "ANNOTATION_SET", "http://purl.org/annotopia#AnnotationSet"},
	{GroupAnnotopia, "ANNOTATIONS", "http://purl.org/annotopia#annotations"},
	{GroupAnnotopia, "ANNOTATION", "http://purl.org/annotopia#annotation"},
	{GroupAnnotopia, "ANNOTATION_COUNT", "http://purl.org/annotopia#annotationcount"},
	{GroupAnnotopia, "GRAPH_ANNOTATION", "http://purl.org/annotopia#graphannotation"},
	{GroupAnnotopia, "GRAPH_ANNOTATION_COUNT", "http://purl.org/annotopia#graphannotationcount"},
	{GroupAnnotopia, "HAS_CHANGED", "http://purl.org/annotopia#hasChanged"},

	{GroupBibliographic, "IS_MANIFESTATION_OF", "http://purl.org/spar/fabio#isManifestationOf"},
	{GroupBibliographic, "EMBODIMENT_OF", "http://purl.org/vocab/frbr/core#embodimentOf"},
	{GroupBibliographic, "EXPRESSION", "http://purl.org/vocab/frbr/core#Expression"},
	{GroupBibliographic, "WEB_PAGE", "http://purl.org/spar/fabio#WebPage"},
	{GroupBibliographic, "PII", "http://purl.org/spar/fabio#hasPII"},
	{GroupBibliographic, "LABEL_PII", "pii"},
	{GroupBibliographic, "PMCID", "http://purl.org/spar/fabio#hasPubMedCentralId"},
	{GroupBibliographic, "LABEL_PMCID", "pmcid"},
	{GroupBibliographic, "PMID", "http://purl.org/spar/fabio#hasPubMedId"},
	{GroupBibliographic, "LABEL_PMID", "pmid"},
	{GroupBibliographic, "DOI", "http://prismstandard.org/namespaces/basic/2.0/doi"},
	{GroupBibliographic, "LABEL_DOI", "doi"},
	{GroupBibliographic, "LABEL_URL", "url"},
	{GroupBibliographic, "TITLE", "http://purl.org/dc/terms/title"},
	{GroupBibliographic, "LABEL_TITLE", "title"},

	{GroupOA, "ANNOTATION", "http://www.w3.org/ns/oa#Annotation"},
	{GroupOA, "SPECIFIC_RESOURCE", "http://www.w3.org/ns/oa#SpecificResource"},
	{GroupOA, "CONTEXT_AS_TEXT", "http://www.w3.org/2011/content#ContentAsText"},
	{GroupOA, "GRAPH", "http://www.w3.org/2004/03/trix/rdfg-1/Graph"},
	{GroupOA, "HAS_BODY", "http://www.w3.org/ns/oa#hasBody"},

	{GroupPAV, "PAV_CREATED_BY", "http://purl.org/pav/createdBy"},
	{GroupPAV, "PAV_CREATED_AT", "http://purl.org/pav/createdAt"},
	{GroupPAV, "PAV_CREATED_WITH", "http://purl.org/pav/createdWith"},
	{GroupPAV, "PAV_LAST_UPDATED_BY", "http://purl.org/pav/lastUpdatedBy"},
	{GroupPAV, "PAV_LAST_UPDATED_ON", "http://purl.org/pav/lastUpdatedOn"},
	{GroupPAV, "PAV_PREVIOUS_VERSION", "http://purl.org/pav/previousVersion"},

	{GroupRDF, "RDF_TYPE", "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"},
}

func TestLookupPublishedValues(t *testing.T) {
	for _, tt := range published {
		t.Run(string(tt.group)+"/"+tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.group, tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestCatalogHasNoExtraTerms(t *testing.T) {
	assert.Equal(t, len(published), Len())
	assert.Len(t, All(), len(published))
}

func TestLookupScenarios(t *testing.T) {
	assert.Equal(t, "http://www.w3.org/ns/oa#hasBody", MustLookup(GroupOA, "HAS_BODY"))
	assert.Equal(t, "http://purl.org/pav/createdBy", MustLookup(GroupPAV, "PAV_CREATED_BY"))
	assert.Equal(t, "doi", MustLookup(GroupBibliographic, "LABEL_DOI"))
	assert.Equal(t, "http://prismstandard.org/namespaces/basic/2.0/doi", MustLookup(GroupBibliographic, "DOI"))
}

func TestLookupUnknown(t *testing.T) {
	tests := []struct {
		name  string
		group Group
		term  string
	}{
		{"unknown name", GroupOA, "HAS_TARGET"},
		{"unknown group", Group("foaf"), "NAME"},
		{"wrong group", GroupPAV, "RDF_TYPE"},
		{"case differs", GroupOA, "has_body"},
		{"empty", GroupOA, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Lookup(tt.group, tt.term)
			assert.False(t, ok)
			assert.Empty(t, v)
		})
	}

	assert.Panics(t, func() { MustLookup(GroupOA, "HAS_TARGET") })
}

func TestSameNameInDifferentGroups(t *testing.T) {
	at, ok := Lookup(GroupAnnotopia, "ANNOTATION")
	require.True(t, ok)
	o, ok := Lookup(GroupOA, "ANNOTATION")
	require.True(t, ok)

	assert.Equal(t, "http://purl.org/annotopia#annotation", at)
	assert.Equal(t, "http://www.w3.org/ns/oa#Annotation", o)
}

func TestValuesUniqueWithinGroup(t *testing.T) {
	for _, g := range Groups() {
		t.Run(string(g), func(t *testing.T) {
			seen := make(map[string]string)
			for _, term := range Terms(g) {
				prev, dup := seen[term.Value]
				assert.False(t, dup, "%s and %s share %q", prev, term.Name, term.Value)
				seen[term.Value] = term.Name
			}
		})
	}
}

func TestLookupIsStable(t *testing.T) {
	first, _ := Lookup(GroupRDF, "RDF_TYPE")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, ok := Lookup(GroupRDF, "RDF_TYPE")
				if !ok || got != first {
					t.Errorf("lookup %d returned %q, %v", j, got, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	terms := Terms(GroupPAV)
	require.NotEmpty(t, terms)
	terms[0].Value = "mutated"

	all := All()
	all[0].Value = "mutated"

	groups := Groups()
	groups[0] = "mutated"

	for _, tt := range published {
		got, _ := Lookup(tt.group, tt.name)
		assert.Equal(t, tt.value, got)
	}
	assert.Equal(t, GroupAnnotopia, Groups()[0])
}

func TestTermsSortedByName(t *testing.T) {
	for _, g := range Groups() {
		terms := Terms(g)
		for i := 1; i < len(terms); i++ {
			assert.Less(t, terms[i-1].Name, terms[i].Name)
		}
		for _, term := range terms {
			assert.Equal(t, g, term.Group)
		}
	}
	assert.Nil(t, Terms(Group("foaf")))
}

func TestGet(t *testing.T) {
	term, ok := Get(GroupBibliographic, "LABEL_URL")
	require.True(t, ok)
	assert.True(t, term.Literal)
	assert.Equal(t, "bibliographic/LABEL_URL", term.Key())

	term, ok = Get(GroupBibliographic, "PII")
	require.True(t, ok)
	assert.False(t, term.Literal)
}

func TestParseGroup(t *testing.T) {
	tests := []struct {
		input   string
		want    Group
		wantErr bool
	}{
		{"annotopia", GroupAnnotopia, false},
		{"Bibliographic", GroupBibliographic, false},
		{"OA", GroupOA, false},
		{" pav ", GroupPAV, false},
		{"rdf", GroupRDF, false},
		{"foaf", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGroup(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownGroup))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupNamespace(t *testing.T) {
	assert.Equal(t, "http://purl.org/annotopia#", GroupAnnotopia.Namespace())
	assert.Equal(t, "http://purl.org/pav/", GroupPAV.Namespace())
	assert.Empty(t, Group("foaf").Namespace())
}

func TestTermNamespace(t *testing.T) {
	tests := []struct {
		group Group
		name  string
		want  string
	}{
		{GroupBibliographic, "IS_MANIFESTATION_OF", "http://purl.org/spar/fabio#"},
		{GroupBibliographic, "EMBODIMENT_OF", "http://purl.org/vocab/frbr/core#"},
		{GroupBibliographic, "EXPRESSION", "http://purl.org/vocab/frbr/core#"},
		{GroupBibliographic, "DOI", "http://prismstandard.org/namespaces/basic/2.0/"},
		{GroupBibliographic, "TITLE", "http://purl.org/dc/terms/"},
		{GroupBibliographic, "LABEL_DOI", ""},
		{GroupOA, "HAS_BODY", "http://www.w3.org/ns/oa#"},
		{GroupOA, "CONTEXT_AS_TEXT", "http://www.w3.org/2011/content#"},
		{GroupOA, "GRAPH", "http://www.w3.org/2004/03/trix/rdfg-1/"},
		{GroupPAV, "PAV_CREATED_AT", "http://purl.org/pav/"},
		{GroupRDF, "RDF_TYPE", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, ok := Get(tt.group, tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, term.Namespace)
		})
	}

	for _, term := range All() {
		if !term.Literal {
			assert.True(t, strings.HasPrefix(term.Value, term.Namespace), "%s outside %s", term.Key(), term.Namespace)
		}
	}
}

func TestResolve(t *testing.T) {
	terms := Resolve("http://purl.org/dc/terms/title")
	require.Len(t, terms, 1)
	assert.Equal(t, GroupBibliographic, terms[0].Group)
	assert.Equal(t, "TITLE", terms[0].Name)

	terms = Resolve("doi")
	require.Len(t, terms, 1)
	assert.Equal(t, "LABEL_DOI", terms[0].Name)

	assert.Nil(t, Resolve("http://example.org/unknown"))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"pav/*", 6},
		{"rdf/RDF_TYPE", 1},
		{"*/ANNOTATION", 2},
		{"bibliographic/LABEL_*", 6},
		{"**", len(published)},
		{"foaf/*", 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Filter(tt.pattern)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFilterBadPattern(t *testing.T) {
	_, err := Filter("pav/[")
	require.Error(t, err)
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name    string
		term    Term
		wantErr bool
	}{
		{"valid IRI", Term{Name: "X", Namespace: "http://purl.org/pav/", Value: "http://purl.org/pav/createdBy"}, false},
		{"valid label", Term{Name: "X", Value: "doi", Literal: true}, false},
		{"empty", Term{Name: "X"}, true},
		{"trailing space", Term{Name: "X", Namespace: "http://purl.org/pav/", Value: "http://purl.org/pav/createdBy "}, true},
		{"relative IRI", Term{Name: "X", Namespace: "pav/", Value: "pav/createdBy"}, true},
		{"urn scheme", Term{Name: "X", Namespace: "urn:isbn:", Value: "urn:isbn:123"}, true},
		{"missing namespace", Term{Name: "X", Value: "http://purl.org/pav/createdBy"}, true},
		{"outside namespace", Term{Name: "X", Namespace: "http://purl.org/spar/fabio#", Value: "http://purl.org/dc/terms/title"}, true},
		{"upper case label", Term{Name: "X", Value: "DOI", Literal: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTerm(tt.term)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
