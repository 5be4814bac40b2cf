package domain

import "slices"

// DefaultGroup is the implicit Bundler group every ungrouped dependency belongs to.
const DefaultGroup = "default"

// Set is an unordered set of strings. Operations return new sets and never mutate the receiver.
type Set map[string]struct{}

// NewSet builds a set from the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Union returns the items present in either set.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for item := range s {
		out[item] = struct{}{}
	}
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

// Minus returns the items of s that are not in other.
func (s Set) Minus(other Set) Set {
	out := make(Set, len(s))
	for item := range s {
		if !other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// ContainsAll reports whether every item of other is in s.
func (s Set) ContainsAll(other Set) bool {
	for item := range other {
		if !s.Has(item) {
			return false
		}
	}
	return true
}

// Sorted returns the items in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	slices.Sort(out)
	return out
}

// AttributeEntry holds the propagated Bundler groups and platform tags of one gem.
type AttributeEntry struct {
	Name      string
	Groups    Set
	Platforms Set
}

// RenderedGroups returns the sorted groups, falling back to the default group for an empty set.
func (e AttributeEntry) RenderedGroups() []string {
	if len(e.Groups) == 0 {
		return []string{DefaultGroup}
	}
	return e.Groups.Sorted()
}

// ExplicitDependency is a top-level Gemfile dependency with its declared groups and platforms.
type ExplicitDependency struct {
	Name      string
	Groups    []string
	Platforms []string
}
