package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/annotopia/vocabularies/catalog"
	"github.com/annotopia/vocabularies/config"
	"github.com/annotopia/vocabularies/export"
	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	var (
		pattern string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List vocabulary terms",
		Long: `List the terms of one group, or of every group when none is given.
--match filters on group/NAME keys with glob syntax, e.g. 'pav/*' or '*/ANNOTATION'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var group catalog.Group
			if len(args) == 1 {
				g, err := catalog.ParseGroup(args[0])
				if err != nil {
					return err
				}
				group = g
			}

			var terms []catalog.Term
			switch {
			case pattern != "":
				matched, err := catalog.Filter(pattern)
				if err != nil {
					return err
				}
				terms = matched
				if group != "" {
					terms = filterGroup(terms, group)
				}
			case group != "":
				terms = catalog.Terms(group)
			default:
				terms = catalog.All()
			}

			a.logger.Debug("Listing terms", "count", len(terms), "match", pattern)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), terms)
			}
			return writeTerms(cmd.OutOrStdout(), terms)
		},
	}

	cmd.Flags().StringVar(&pattern, "match", "", "Glob pattern over group/NAME keys")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func lookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <group> <name>",
		Short: "Print the value of a named term",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := catalog.ParseGroup(args[0])
			if err != nil {
				return err
			}
			name := strings.ToUpper(strings.TrimSpace(args[1]))
			value, ok := catalog.Lookup(g, name)
			if !ok {
				return fmt.Errorf("no term %s in group %s", name, g)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func resolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <iri>",
		Short: "Find the terms bound to an IRI or label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			terms := catalog.Resolve(args[0])
			if len(terms) == 0 {
				return fmt.Errorf("no term has value %q", args[0])
			}
			for _, t := range terms {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), t.Key()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var (
		format  string
		profile string
		baseIRI string
		groups  []string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the vocabulary as RDF",
		Long: `Export the vocabulary as an RDF document. Flags override the export
section of the configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ec := a.cfg.Export
			if format != "" {
				ec.Format = format
			}
			if profile != "" {
				ec.Profile = profile
			}
			if baseIRI != "" {
				ec.BaseIRI = baseIRI
			}
			if len(groups) > 0 {
				ec.Groups = groups
			}

			opts, err := ec.Options()
			if err != nil {
				return err
			}
			exp, err := export.NewExporter(opts, a.logger)
			if err != nil {
				return err
			}

			if out == "" {
				return exp.Export(cmd.Context(), cmd.OutOrStdout())
			}
			if err := exportToFile(cmd.Context(), exp, out); err != nil {
				return err
			}
			a.logger.Info("Wrote vocabulary", "path", out, "format", opts.Format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVar(&profile, "profile", "", "Annotation profile (minimal, full)")
	cmd.Flags().StringVar(&baseIRI, "base-iri", "", "IRI of the vocabulary document")
	cmd.Flags().StringSliceVarP(&groups, "group", "g", nil, "Restrict export to these groups")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the registry for malformed or duplicate values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Validate(); err != nil {
				return errors.Join(errors.New("vocabulary registry is invalid"), err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ok: %d terms in %d groups\n",
				catalog.Len(), len(catalog.Groups()))
			return err
		},
	}
}

// exportToFile writes the document to path, removing the file if the export
// or the close fails.
func exportToFile(ctx context.Context, exp *export.Exporter, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return exp.Export(ctx, f)
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the default user config if none exists",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), "info")
			return config.NewLoader(logger).EnsureUserConfig()
		},
	}
}

func filterGroup(terms []catalog.Term, g catalog.Group) []catalog.Term {
	var out []catalog.Term
	for _, t := range terms {
		if t.Group == g {
			out = append(out, t)
		}
	}
	return out
}

func writeTerms(w io.Writer, terms []catalog.Term) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range terms {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Group, t.Name, t.Value)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
