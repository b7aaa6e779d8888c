package reviews

import (
	"strconv"

	"moviedb-backend/pkg/errors"
)

// Op is a filter predicate operator
type Op string

const (
	OpEqual       Op = "EQ"
	OpGreaterThan Op = "GT"
	OpBeginsWith  Op = "BEGINS_WITH"
)

// Predicate is one typed (name, operator, value) filter condition. All
// predicates in a plan combine with logical AND.
type Predicate struct {
	Name  string
	Op    Op
	Value interface{}
}

// Plan is a compiled lookup: a mandatory movie partition condition plus
// zero or more filter predicates. Plans are immutable; With* methods
// return extended copies, and predicates render in the order they were
// added so generated query text is reproducible.
type Plan struct {
	movieID    int
	predicates []Predicate
}

// NewPlan starts a plan scoped to one movie's partition
func NewPlan(movieID int) Plan {
	return Plan{movieID: movieID}
}

// MovieID returns the partition key value
func (p Plan) MovieID() int {
	return p.movieID
}

// Predicates returns a copy of the filter predicates
func (p Plan) Predicates() []Predicate {
	out := make([]Predicate, len(p.predicates))
	copy(out, p.predicates)
	return out
}

// WithMinRating adds a strict rating > min predicate
func (p Plan) WithMinRating(min int) Plan {
	return p.with(Predicate{Name: AttrRating, Op: OpGreaterThan, Value: min})
}

// WithReviewer adds an exact, case-sensitive reviewer match
func (p Plan) WithReviewer(name string) Plan {
	return p.with(Predicate{Name: AttrReviewerName, Op: OpEqual, Value: name})
}

// WithYear adds a year prefix match over the review date text
func (p Plan) WithYear(year string) Plan {
	return p.with(Predicate{Name: AttrReviewDate, Op: OpBeginsWith, Value: year})
}

func (p Plan) with(pred Predicate) Plan {
	preds := make([]Predicate, len(p.predicates), len(p.predicates)+1)
	copy(preds, p.predicates)
	return Plan{movieID: p.movieID, predicates: append(preds, pred)}
}

// QueryParams are the raw optional request parameters a plan compiles
// from. Empty strings mean the parameter was absent.
type QueryParams struct {
	MinRating string
	Reviewer  string
	Year      string
}

// Compile turns raw parameters into a plan. A parameter contributes a
// predicate only when present and non-empty; a minRating that fails to
// parse is an InvalidParameter error, never a silently dropped filter.
// Predicate order is fixed (minRating, reviewer, year).
func Compile(movieID int, params QueryParams) (Plan, error) {
	plan := NewPlan(movieID)

	if params.MinRating != "" {
		min, err := strconv.Atoi(params.MinRating)
		if err != nil {
			return Plan{}, errors.NewInvalidParameterError("minRating", params.MinRating)
		}
		plan = plan.WithMinRating(min)
	}
	if params.Reviewer != "" {
		plan = plan.WithReviewer(params.Reviewer)
	}
	if params.Year != "" {
		plan = plan.WithYear(params.Year)
	}

	return plan, nil
}
