package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the catalog invariants: no two names in a group share a
// value, IRI values are absolute http(s) IRIs without surrounding
// whitespace inside their defining namespace, and literal values are non-empty lower-case labels.
// All violations are reported together.
func Validate() error {
	var errs []error
	for _, g := range groupOrder {
		seen := make(map[string]string)
		for _, t := range sorted[g] {
			if prev, dup := seen[t.Value]; dup {
				errs = append(errs, fmt.Errorf("%s: %s and %s share value %q", g, prev, t.Name, t.Value))
			}
			seen[t.Value] = t.Name

			if err := validateTerm(t); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", t.Key(), err))
			}
		}
	}
	return errors.Join(errs...)
}

func validateTerm(t Term) error {
	if t.Value == "" {
		return errors.New("empty value")
	}
	if strings.TrimSpace(t.Value) != t.Value {
		return fmt.Errorf("value %q has surrounding whitespace", t.Value)
	}

	if t.Literal {
		if strings.ToLower(t.Value) != t.Value {
			return fmt.Errorf("label %q is not lower case", t.Value)
		}
		return nil
	}

	if t.Namespace == "" || !strings.HasPrefix(t.Value, t.Namespace) {
		return fmt.Errorf("IRI %q is not in namespace %q", t.Value, t.Namespace)
	}

	u, err := url.Parse(t.Value)
	if err != nil {
		return fmt.Errorf("parse IRI: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("IRI %q is not an absolute http(s) IRI", t.Value)
	}
	if u.Host == "" {
		return fmt.Errorf("IRI %q has no host", t.Value)
	}
	return nil
}
