// Package basket provides the transactional data model for basketlift:
// item sets, the basket collection, and the CSV loader boundary that
// produces collections from tabular transaction data.
package basket

import "sort"

// ItemSet is a set of item identifiers.
type ItemSet map[string]struct{}

// NewItemSet creates an ItemSet containing the given items.
func NewItemSet(items ...string) ItemSet {
	s := make(ItemSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Add inserts an item into the set.
func (s ItemSet) Add(item string) {
	s[item] = struct{}{}
}

// Contains reports whether the set holds the given item.
func (s ItemSet) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// ContainsAll reports whether every item of other is present in s.
// The empty set is a subset of everything.
func (s ItemSet) ContainsAll(other ItemSet) bool {
	for it := range other {
		if _, ok := s[it]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of items in the set.
func (s ItemSet) Len() int {
	return len(s)
}

// Items returns the set's items sorted by name, for stable output.
func (s ItemSet) Items() []string {
	items := make([]string, 0, len(s))
	for it := range s {
		items = append(items, it)
	}
	sort.Strings(items)
	return items
}

// Collection maps basket identifiers to their item sets. The evaluator
// only reads collections; callers own them and must not mutate one while
// an evaluation is in flight.
type Collection map[string]ItemSet

// Add records that basket holds item, creating the basket's set on first use.
func (c Collection) Add(basketID, item string) {
	set, ok := c[basketID]
	if !ok {
		set = make(ItemSet)
		c[basketID] = set
	}
	set.Add(item)
}

// Len returns the number of baskets in the collection.
func (c Collection) Len() int {
	return len(c)
}
