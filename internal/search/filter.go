// Package search narrows an item list by a free-text query.
//
// Matching is a case-insensitive substring test against name, category,
// description, location, model and serial number. Optional fields are only
// compared when present. Nothing here holds state: results are recomputed
// from the items passed in.
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HomeInventory_Go/internal/domain"
)

// matcher holds a lowercased query and its own Caser.
// A cases.Caser is not safe for concurrent use, so each call builds one.
type matcher struct {
	query string
	lower cases.Caser
}

func newMatcher(query string) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		query: lower.String(query),
		lower: lower,
	}
}

func (m *matcher) contains(field string) bool {
	return field != "" && strings.Contains(m.lower.String(field), m.query)
}

func (m *matcher) matches(item domain.Item) bool {
	return m.contains(item.Name) ||
		m.contains(item.Category) ||
		m.contains(item.Description) ||
		m.contains(item.Location) ||
		m.contains(item.Model) ||
		m.contains(item.SerialNumber)
}

// Matches reports whether item matches query. An empty query matches everything.
func Matches(item domain.Item, query string) bool {
	if query == "" {
		return true
	}
	return newMatcher(query).matches(item)
}

// Filter returns the items matching query, in their original relative order.
// An empty query returns items itself, unchanged.
func Filter(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return items
	}

	m := newMatcher(query)
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if m.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Seq is the lazy form of Filter. The sequence can be ranged over any number of times.
func Seq(items []domain.Item, query string) iter.Seq[domain.Item] {
	return func(yield func(domain.Item) bool) {
		if query == "" {
			for _, item := range items {
				if !yield(item) {
					return
				}
			}
			return
		}

		m := newMatcher(query)
		for _, item := range items {
			if m.matches(item) && !yield(item) {
				return
			}
		}
	}
}
