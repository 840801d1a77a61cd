package export

import (
	"encoding/json"
	"fmt"
	"io"

	krdf "github.com/knakk/rdf"
	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/vocabulary"
)

// statement is a triple with its dotted predicate resolved to the
// registered standard IRI.
type statement struct {
	subject   string
	predicate string
	object    string
	objectIRI bool
}

// resolve maps dotted predicates through the predicate registry. Objects of
// entity_id predicates are IRIs, everything else is a plain literal.
func resolve(triples []message.Triple) ([]statement, error) {
	stmts := make([]statement, 0, len(triples))
	for _, t := range triples {
		meta := vocabulary.GetPredicateMetadata(t.Predicate)
		if meta == nil || meta.StandardIRI == "" {
			return nil, fmt.Errorf("predicate %s has no registered IRI", t.Predicate)
		}
		object, ok := t.Object.(string)
		if !ok {
			return nil, fmt.Errorf("predicate %s: object %v is not a string", t.Predicate, t.Object)
		}
		stmts = append(stmts, statement{
			subject:   t.Subject,
			predicate: meta.StandardIRI,
			object:    object,
			objectIRI: meta.DataType == "entity_id",
		})
	}
	return stmts, nil
}

func dataset(stmts []statement) *ld.RDFDataset {
	quads := make([]*ld.Quad, 0, len(stmts))
	for _, s := range stmts {
		var object ld.Node
		if s.objectIRI {
			object = ld.NewIRI(s.object)
		} else {
			object = ld.NewLiteral(s.object, ld.XSDString, "")
		}
		quads = append(quads, ld.NewQuad(ld.NewIRI(s.subject), ld.NewIRI(s.predicate), object, ""))
	}

	ds := ld.NewRDFDataset()
	ds.Graphs["@default"] = quads
	return ds
}

func writeNTriples(w io.Writer, stmts []statement) error {
	serializer := &ld.NQuadRDFSerializer{}
	out, err := serializer.Serialize(dataset(stmts))
	if err != nil {
		return err
	}
	text, ok := out.(string)
	if !ok {
		return fmt.Errorf("n-triples serializer returned %T", out)
	}
	_, err = io.WriteString(w, text)
	return err
}

// jsonldContext names the annotation properties so compacted documents read
// as label/isDefinedBy/notation while subject IRIs stay absolute.
var jsonldContext = map[string]any{
	"@context": map[string]any{
		"label": RDFSLabel,
		"isDefinedBy": map[string]any{
			"@id":   RDFSIsDefinedBy,
			"@type": "@id",
		},
		"notation": SKOSNotation,
	},
}

func writeJSONLD(w io.Writer, stmts []statement) error {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")

	doc, err := proc.FromRDF(dataset(stmts), opts)
	if err != nil {
		return fmt.Errorf("convert to json-ld: %w", err)
	}
	compacted, err := proc.Compact(doc, jsonldContext, opts)
	if err != nil {
		return fmt.Errorf("compact json-ld: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(compacted)
}

func writeTurtle(w io.Writer, stmts []statement) error {
	enc := krdf.NewTripleEncoder(w, krdf.Turtle)
	for _, s := range stmts {
		subject, err := krdf.NewIRI(s.subject)
		if err != nil {
			return fmt.Errorf("subject %q: %w", s.subject, err)
		}
		predicate, err := krdf.NewIRI(s.predicate)
		if err != nil {
			return fmt.Errorf("predicate %q: %w", s.predicate, err)
		}

		var object krdf.Object
		if s.objectIRI {
			iri, err := krdf.NewIRI(s.object)
			if err != nil {
				return fmt.Errorf("object %q: %w", s.object, err)
			}
			object = iri
		} else {
			lit, err := krdf.NewLiteral(s.object)
			if err != nil {
				return fmt.Errorf("object %q: %w", s.object, err)
			}
			object = lit
		}

		if err := enc.Encode(krdf.Triple{Subj: subject, Pred: predicate, Obj: object}); err != nil {
			return err
		}
	}
	return enc.Close()
}
