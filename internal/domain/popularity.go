package domain

import (
	"math"
	"sort"
	"time"
)

// PostCandidate is a post row in the candidate set, before ranking. It
// lives only for the duration of one list request.
type PostCandidate struct {
	ID        int64
	SortValue int64
	CreatedAt time.Time
}

// minPostAge floors the age term so brand-new posts don't get explosive
// scores.
const minPostAge = 6 * time.Hour

// CalcPopularity computes the time-decayed popularity score of a post.
// The quartic-root decay keeps posts visible for days rather than hours,
// and a negative rating actively suppresses a post instead of merely
// ranking it below zero-rated ones. A zero rating contributes the same
// magnitude term as a rating of one, avoiding ln(0).
func CalcPopularity(now, createdAt time.Time, rating int64, ageRatio float64) int64 {
	age := now.Sub(createdAt)
	if age < minPostAge {
		age = minPostAge
	}

	sign := float64(-1)
	if rating > 0 {
		sign = 1
	}
	magnitude := rating
	if magnitude == 0 {
		magnitude = 1
	}

	score := 1000 * (ageRatio/math.Pow(age.Seconds(), 0.25) +
		sign*math.Log(math.Abs(float64(magnitude))))

	return int64(math.Round(score))
}

// RankByPopularity scores every candidate, orders them by descending
// popularity (stable, so equal scores keep their store order), and returns
// the ids of the [offset, offset+limit) slice. A limit of zero or less
// means no limit. The full candidate set must be scored before slicing;
// pagination for decaying strategies is never a store-side limit/offset.
func RankByPopularity(candidates []PostCandidate, now time.Time, ageRatio float64, limit, offset int) []int64 {
	type scoredPost struct {
		id         int64
		popularity int64
	}

	scored := make([]scoredPost, len(candidates))
	for i, c := range candidates {
		scored[i] = scoredPost{
			id:         c.ID,
			popularity: CalcPopularity(now, c.CreatedAt, c.SortValue, ageRatio),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].popularity > scored[j].popularity
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(scored) {
		return []int64{}
	}
	end := len(scored)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	ids := make([]int64, 0, end-offset)
	for _, s := range scored[offset:end] {
		ids = append(ids, s.id)
	}
	return ids
}
