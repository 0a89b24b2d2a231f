package domain

import (
	"regexp"
	"time"
)

// SortStrategy is the closed set of post list orderings.
type SortStrategy int

const (
	SortByCreationDate SortStrategy = iota
	SortByRating
	SortByPopularity
	SortByMainPage
)

// Decaying reports whether the strategy ranks by the time-decayed
// popularity formula rather than a store-side ordering.
func (s SortStrategy) Decaying() bool {
	return s == SortByPopularity || s == SortByMainPage
}

// AgeRatio is the recency weight the popularity formula uses for this
// strategy. Only meaningful for decaying strategies.
func (s SortStrategy) AgeRatio() float64 {
	if s == SortByMainPage {
		return 130
	}
	return 60
}

// SortSpec is a resolved sort key: a strategy plus an optional trailing
// time window restricting candidates. Window is always non-zero for
// decaying strategies.
type SortSpec struct {
	Strategy SortStrategy
	Window   time.Duration
}

var sortKeyPattern = regexp.MustCompile(
	`^(rating|creation_date|popularity|main_page)(_for_(day|week|month|year))?$`)

const (
	windowDay   = 24 * time.Hour
	windowWeek  = 7 * windowDay
	windowMonth = 30 * windowDay
	windowYear  = 365 * windowDay
)

// ResolveSortKey parses a sort key into a SortSpec. It is total:
// unrecognized keys silently resolve to creation-date ordering with no
// window. Popularity and main-page keys without an explicit period get
// defaultPopularityWindow, so decaying strategies always carry one.
func ResolveSortKey(key string, defaultPopularityWindow time.Duration) SortSpec {
	spec := SortSpec{Strategy: SortByCreationDate}

	if m := sortKeyPattern.FindStringSubmatch(key); m != nil {
		switch m[1] {
		case "rating":
			spec.Strategy = SortByRating
		case "creation_date":
			spec.Strategy = SortByCreationDate
		case "popularity":
			spec.Strategy = SortByPopularity
		case "main_page":
			spec.Strategy = SortByMainPage
		}

		switch m[3] {
		case "day":
			spec.Window = windowDay
		case "week":
			spec.Window = windowWeek
		case "month":
			spec.Window = windowMonth
		case "year":
			spec.Window = windowYear
		}
	}

	if spec.Strategy.Decaying() && spec.Window == 0 {
		spec.Window = defaultPopularityWindow
	}

	return spec
}
