package reviews

import (
	"regexp"

	"moviedb-backend/pkg/errors"
)

// QualifierKind tags what a qualifier path segment was resolved as
type QualifierKind int

const (
	QualifierYear QualifierKind = iota
	QualifierReviewer
)

// Qualifier is the resolved form of the ambiguous path segment that may
// name either a calendar year or a reviewer. Resolution happens once,
// here, before any predicate is built.
type Qualifier struct {
	Kind  QualifierKind
	Value string
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// ResolveQualifier disambiguates a path segment: exactly four decimal
// digits reads as a year, anything else as a reviewer name. A reviewer
// whose name is a 4-digit numeral is unreachable through this path; the
// year reading always wins.
func ResolveQualifier(segment string) (Qualifier, error) {
	if segment == "" {
		return Qualifier{}, errors.NewMissingQualifierError()
	}
	if yearPattern.MatchString(segment) {
		return Qualifier{Kind: QualifierYear, Value: segment}, nil
	}
	return Qualifier{Kind: QualifierReviewer, Value: segment}, nil
}

// Apply extends a plan with the single predicate this qualifier denotes
func (q Qualifier) Apply(plan Plan) Plan {
	if q.Kind == QualifierYear {
		return plan.WithYear(q.Value)
	}
	return plan.WithReviewer(q.Value)
}
