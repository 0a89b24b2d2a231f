package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gamehub/post-feed/internal/domain"
)

// postCriteriaFromQuery builds list criteria from filter_* query params.
// Status defaults to the public statuses when not given; the engine itself
// applies no access restrictions.
func postCriteriaFromQuery(q url.Values) (domain.Criteria, error) {
	criteria := domain.Criteria{}

	if q.Has("filter_game_id") {
		id, err := strconv.ParseInt(q.Get("filter_game_id"), 10, 64)
		if err != nil {
			return domain.Criteria{}, fmt.Errorf("unable to parse game id filter: %w", err)
		}
		criteria = criteria.WithField("game_id", id)
	}

	if q.Has("filter_user_id") {
		id, err := strconv.ParseInt(q.Get("filter_user_id"), 10, 64)
		if err != nil {
			return domain.Criteria{}, fmt.Errorf("unable to parse user id filter: %w", err)
		}
		criteria = criteria.WithField("user_id", id)
	}

	if q.Has("filter_type") {
		types := strings.Split(q.Get("filter_type"), ",")
		values := make([]any, len(types))
		for i, t := range types {
			values[i] = t
		}
		criteria = criteria.WithFieldIn("type", values...)
	}

	if q.Has("filter_status") {
		statuses := strings.Split(q.Get("filter_status"), ",")
		values := make([]any, len(statuses))
		for i, s := range statuses {
			values[i] = s
		}
		criteria = criteria.WithFieldIn("status", values...)
	} else {
		criteria = criteria.WithFieldIn("status", domain.StatusValues(domain.PublicStatuses())...)
	}

	if q.Has("filter_category_ids") {
		parts := strings.Split(q.Get("filter_category_ids"), ",")
		ids := make([]int64, len(parts))
		for i, part := range parts {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return domain.Criteria{}, fmt.Errorf("unable to parse category id filter: %w", err)
			}
			ids[i] = id
		}
		criteria = criteria.WithCategories(ids...)
	}

	return criteria, nil
}
