package domain

import (
	"time"
)

// Op identifies the comparison a field constraint applies.
type Op int

const (
	OpEqual Op = iota
	OpIn
	OpAtLeast
)

// FieldConstraint restricts a single post field. Field names are opaque to
// the ranking logic; the store decides whether they are valid.
type FieldConstraint struct {
	Field  string
	Op     Op
	Value  any
	Values []any
}

// Criteria describes which posts a query should match. It is a value type:
// every With* method returns a new Criteria and leaves the receiver
// untouched. Creation time and category membership get dedicated methods
// because the engine treats them specially; everything else goes through
// the generic field constraints in the order they were added.
type Criteria struct {
	fields            []FieldConstraint
	createdAfter      time.Time
	includeCategories []int64
	excludeCategories []int64
}

// WithField adds an exact-value constraint.
func (c Criteria) WithField(field string, value any) Criteria {
	c.fields = appendConstraint(c.fields, FieldConstraint{Field: field, Op: OpEqual, Value: value})
	return c
}

// WithFieldIn adds a set-membership constraint.
func (c Criteria) WithFieldIn(field string, values ...any) Criteria {
	c.fields = appendConstraint(c.fields, FieldConstraint{Field: field, Op: OpIn, Values: values})
	return c
}

// WithFieldAtLeast adds a lower-bound constraint.
func (c Criteria) WithFieldAtLeast(field string, value any) Criteria {
	c.fields = appendConstraint(c.fields, FieldConstraint{Field: field, Op: OpAtLeast, Value: value})
	return c
}

// WithCreatedAfter restricts matches to posts created at or after t.
// Last writer wins: a decay window set by the engine replaces any bound
// the caller supplied.
func (c Criteria) WithCreatedAfter(t time.Time) Criteria {
	c.createdAfter = t
	return c
}

// WithCategories restricts matches to posts belonging to at least one of
// the given categories. The store implements this as an inner join to the
// category relation, grouped by post id.
func (c Criteria) WithCategories(ids ...int64) Criteria {
	c.includeCategories = append([]int64(nil), ids...)
	return c
}

// ExcludingCategories restricts matches to posts belonging to none of the
// given categories. The store implements this as a left join to the
// category relation limited to the given ids, grouped by post id, with the
// joined row required to be absent.
func (c Criteria) ExcludingCategories(ids ...int64) Criteria {
	c.excludeCategories = append([]int64(nil), ids...)
	return c
}

// Fields returns the generic field constraints in insertion order.
func (c Criteria) Fields() []FieldConstraint {
	return c.fields
}

// CreatedAfter returns the creation-time lower bound, if one is set.
func (c Criteria) CreatedAfter() (time.Time, bool) {
	return c.createdAfter, !c.createdAfter.IsZero()
}

// IncludedCategories returns the category ids set by WithCategories.
func (c Criteria) IncludedCategories() []int64 {
	return c.includeCategories
}

// ExcludedCategories returns the category ids set by ExcludingCategories.
func (c Criteria) ExcludedCategories() []int64 {
	return c.excludeCategories
}

// appendConstraint copies before appending so two Criteria derived from
// the same value never share a backing array.
func appendConstraint(fields []FieldConstraint, fc FieldConstraint) []FieldConstraint {
	out := make([]FieldConstraint, len(fields), len(fields)+1)
	copy(out, fields)
	return append(out, fc)
}

// Int64Values converts ids for use with WithFieldIn.
func Int64Values(ids []int64) []any {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return values
}

// StatusValues converts statuses for use with WithFieldIn.
func StatusValues(statuses []PostStatus) []any {
	values := make([]any, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

// TypeValues converts post types for use with WithFieldIn.
func TypeValues(types []PostType) []any {
	values := make([]any, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	return values
}
