// Package export publishes the vocabulary catalog as an RDF document so the
// terms can be inspected, diffed, or loaded into a triple store alongside
// annotation data.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/annotopia/vocabularies/catalog"
	"github.com/c360studio/semstreams/message"
)

// DefaultBaseIRI is used when Options.BaseIRI is empty.
const DefaultBaseIRI = "http://purl.org/annotopia"

// Options configures an Exporter.
type Options struct {
	Format  Format
	Profile Profile

	// BaseIRI identifies the vocabulary document. The full profile
	// declares it as an owl:Ontology.
	BaseIRI string

	// Groups restricts the export to the listed groups. Empty means all.
	Groups []catalog.Group
}

// Exporter serializes catalog terms to RDF.
type Exporter struct {
	opts   Options
	logger *slog.Logger
}

// NewExporter validates opts and creates an Exporter.
func NewExporter(opts Options, logger *slog.Logger) (*Exporter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Format == "" {
		opts.Format = FormatTurtle
	}
	if opts.BaseIRI == "" {
		opts.BaseIRI = DefaultBaseIRI
	}

	if err := checkFormat(opts.Format); err != nil {
		return nil, err
	}
	profile, err := ParseProfile(string(opts.Profile))
	if err != nil {
		return nil, err
	}
	opts.Profile = profile
	if u, err := url.Parse(opts.BaseIRI); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base IRI %q is not an absolute IRI", opts.BaseIRI)
	}
	for _, g := range opts.Groups {
		if g.Namespace() == "" {
			return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownGroup, g)
		}
	}

	return &Exporter{opts: opts, logger: logger}, nil
}

// Triples returns the document header (full profile only) followed by the
// triples for every exported term, in catalog order.
func (e *Exporter) Triples() []message.Triple {
	groups := e.opts.Groups
	if len(groups) == 0 {
		groups = catalog.Groups()
	}

	var triples []message.Triple
	if e.opts.Profile == ProfileFull {
		triples = append(triples, documentTriples(e.opts.BaseIRI)...)
	}
	for _, g := range groups {
		for _, term := range catalog.Terms(g) {
			triples = append(triples, TermTriples(term, e.opts.Profile)...)
		}
	}
	return triples
}

// Export writes the vocabulary document to w.
func (e *Exporter) Export(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	triples := e.Triples()
	stmts, err := resolve(triples)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch e.opts.Format {
	case FormatNTriples:
		err = writeNTriples(&buf, stmts)
	case FormatJSONLD:
		err = writeJSONLD(&buf, stmts)
	default:
		err = writeTurtle(&buf, stmts)
	}
	if err != nil {
		return fmt.Errorf("serialize %s: %w", e.opts.Format, err)
	}

	size := buf.Len()
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s output: %w", e.opts.Format, err)
	}

	e.logger.Debug("Exported vocabulary",
		"format", e.opts.Format,
		"profile", e.opts.Profile,
		"triples", len(triples),
		"output_bytes", size)
	return nil
}
