// Package catalog derives the visible tour list from the full catalog and a
// set of user-chosen criteria. Everything here is pure: no I/O, no logging,
// and the input slice is never modified.
package catalog

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"tourism-booking/internal/data/entity"
)

// MatchAll disables a category filter. An empty value does the same.
const MatchAll = "all"

type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortDuration  SortMode = "duration"
)

// Criteria is the filter/sort configuration. Nil bounds are ignored.
type Criteria struct {
	Search     string
	Season     string
	TourType   string
	Difficulty string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       SortMode
}

// ExtractNumber strips everything but digits and '.', then parses the rest.
// Anything that does not parse to a finite number is 0. Filtering, sorting
// and booking totals all go through this one function.
func ExtractNumber(raw string) float64 {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseBound reads an optional numeric bound. Empty or unparseable input
// yields nil so the bound is ignored rather than rejected.
func ParseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseSort maps unknown values to SortFeatured
func ParseSort(raw string) SortMode {
	switch mode := SortMode(raw); mode {
	case SortPriceLow, SortPriceHigh, SortDuration:
		return mode
	default:
		return SortFeatured
	}
}

// Apply filters tours by every predicate in c (logical AND) and then sorts
// the result with a stable sort. SortFeatured keeps catalog order.
func Apply(tours []entity.Tour, c Criteria) []entity.Tour {
	result := make([]entity.Tour, 0, len(tours))
	for _, t := range tours {
		if c.Matches(t) {
			result = append(result, t)
		}
	}

	switch c.Sort {
	case SortPriceLow:
		slices.SortStableFunc(result, func(a, b entity.Tour) int {
			return cmp.Compare(ExtractNumber(a.Price), ExtractNumber(b.Price))
		})
	case SortPriceHigh:
		slices.SortStableFunc(result, func(a, b entity.Tour) int {
			return cmp.Compare(ExtractNumber(b.Price), ExtractNumber(a.Price))
		})
	case SortDuration:
		slices.SortStableFunc(result, func(a, b entity.Tour) int {
			return cmp.Compare(ExtractNumber(a.Duration), ExtractNumber(b.Duration))
		})
	}

	return result
}

// Matches evaluates every predicate of c against t
func (c Criteria) Matches(t entity.Tour) bool {
	return c.matchesSearch(t) &&
		matchesCategory(c.Season, t.Season) &&
		matchesCategory(c.TourType, t.TourType) &&
		matchesCategory(c.Difficulty, t.PracticalInfo.Difficulty) &&
		c.matchesPrice(ExtractNumber(t.Price))
}

func (c Criteria) matchesSearch(t entity.Tour) bool {
	if c.Search == "" {
		return true
	}
	q := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.TourType), q)
}

func (c Criteria) matchesPrice(price float64) bool {
	if c.MinPrice != nil && price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && price > *c.MaxPrice {
		return false
	}
	return true
}

func matchesCategory(want, got string) bool {
	return want == "" || want == MatchAll || want == got
}

// Options lists the values the category filters can take
type Options struct {
	Seasons      []string `json:"seasons"`
	Types        []string `json:"types"`
	Difficulties []string `json:"difficulties"`
}

// DeriveOptions collects the distinct non-empty categories present in tours,
// in order of first appearance.
func DeriveOptions(tours []entity.Tour) Options {
	opts := Options{Seasons: []string{}, Types: []string{}, Difficulties: []string{}}
	seen := map[string]struct{}{}
	add := func(list *[]string, kind, v string) {
		if v == "" {
			return
		}
		key := kind + "\x00" + v
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		*list = append(*list, v)
	}

	for _, t := range tours {
		add(&opts.Seasons, "season", t.Season)
		add(&opts.Types, "type", t.TourType)
		add(&opts.Difficulties, "difficulty", t.PracticalInfo.Difficulty)
	}
	return opts
}
