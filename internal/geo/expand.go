// Package geo holds the static geography hierarchy used to widen a deal's
// single location label into every label that should count as an equivalent
// match: a deal in Nigeria must match buyers targeting "Western Africa",
// "Sub-Saharan Africa" or "Africa", and a deal located in a region must
// match buyers targeting any of its countries.
package geo

import "sort"

// Set is a collection of geography labels.
type Set map[string]struct{}

// Contains reports whether the label is in the set.
func (s Set) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// ContainsAny reports whether any of the given labels is in the set.
func (s Set) ContainsAny(labels []string) bool {
	for _, label := range labels {
		if s.Contains(label) {
			return true
		}
	}
	return false
}

// Labels returns the set's labels in sorted order.
func (s Set) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// IsRegion reports whether the label is a known region (continent or
// sub-region) rather than a country or an unknown label.
func IsRegion(label string) bool {
	_, ok := hierarchy[label]
	return ok
}

// Expand returns the label itself plus every ancestor region it belongs to,
// and every descendant label when the input is itself a region. Expansion is
// total: an unknown label yields a singleton set and never an error.
func Expand(label string) Set {
	set := Set{label: {}}

	// Walk up to the continent.
	for current := label; ; {
		parent, ok := parentOf[current]
		if !ok {
			break
		}
		set[parent] = struct{}{}
		current = parent
	}

	// Walk down through every sub-region and country.
	addDescendants(set, label)

	return set
}

func addDescendants(set Set, label string) {
	for _, child := range hierarchy[label] {
		if _, seen := set[child]; seen {
			continue
		}
		set[child] = struct{}{}
		addDescendants(set, child)
	}
}
