package catalog

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// index is populated once by init and only read afterwards.
var (
	byName  map[Group]map[string]Term
	byValue map[string][]Term
	sorted  map[Group][]Term
)

func init() {
	byName = make(map[Group]map[string]Term, len(definitions))
	byValue = make(map[string][]Term)
	sorted = make(map[Group][]Term, len(definitions))

	for _, g := range groupOrder {
		defs := definitions[g]
		names := make(map[string]Term, len(defs))
		list := make([]Term, 0, len(defs))
		for _, t := range defs {
			t.Group = g
			if _, dup := names[t.Name]; dup {
				panic(fmt.Sprintf("catalog: duplicate name %s in group %s", t.Name, g))
			}
			names[t.Name] = t
			list = append(list, t)
			byValue[t.Value] = append(byValue[t.Value], t)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
		byName[g] = names
		sorted[g] = list
	}
}

// Lookup returns the value of a term. Names are matched exactly.
func Lookup(group Group, name string) (string, bool) {
	t, ok := byName[group][name]
	if !ok {
		return "", false
	}
	return t.Value, true
}

// MustLookup is like Lookup but panics if the term does not exist.
// Intended for package-level variable initialization.
func MustLookup(group Group, name string) string {
	v, ok := Lookup(group, name)
	if !ok {
		panic(fmt.Sprintf("catalog: no term %s in group %s", name, group))
	}
	return v
}

// Get returns the full term for a group and name.
func Get(group Group, name string) (Term, bool) {
	t, ok := byName[group][name]
	return t, ok
}

// Terms returns the terms of a group sorted by name. Unknown groups yield nil.
func Terms(group Group) []Term {
	list, ok := sorted[group]
	if !ok {
		return nil
	}
	out := make([]Term, len(list))
	copy(out, list)
	return out
}

// All returns every term, grouped in Groups order and sorted by name within
// each group.
func All() []Term {
	out := make([]Term, 0, Len())
	for _, g := range groupOrder {
		out = append(out, sorted[g]...)
	}
	return out
}

// Len returns the total number of terms.
func Len() int {
	n := 0
	for _, g := range groupOrder {
		n += len(sorted[g])
	}
	return n
}

// Resolve returns every term whose value equals value, in Groups order.
// The same IRI may be published under more than one group.
func Resolve(value string) []Term {
	matches := byValue[value]
	if len(matches) == 0 {
		return nil
	}
	out := make([]Term, len(matches))
	copy(out, matches)
	return out
}

// Filter returns the terms whose Key matches a doublestar glob pattern,
// for example "pav/*" or "*/ANNOTATION*". Matching is case-sensitive.
func Filter(pattern string) ([]Term, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("filter %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []Term
	for _, t := range All() {
		ok, err := doublestar.Match(pattern, t.Key())
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", pattern, err)
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
