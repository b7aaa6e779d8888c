package dynamodb

import (
	"fmt"

	"moviedb-backend/domain/reviews"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// renderPlan translates a compiled lookup plan into a DynamoDB key
// condition plus filter expression. The partition condition is always
// present; predicates AND together in plan order, so the generated
// expression text is reproducible for identical inputs.
func renderPlan(plan reviews.Plan) (expression.Expression, error) {
	keyCond := expression.Key(reviews.AttrMovieID).Equal(expression.Value(plan.MovieID()))
	builder := expression.NewBuilder().WithKeyCondition(keyCond)

	filter, err := renderPredicates(plan.Predicates())
	if err != nil {
		return expression.Expression{}, err
	}
	if filter != nil {
		builder = builder.WithFilter(*filter)
	}

	return builder.Build()
}

// renderPredicates folds predicate triples into a single AND condition,
// or nil when the plan carries no filters (full partition scan).
func renderPredicates(preds []reviews.Predicate) (*expression.ConditionBuilder, error) {
	var filter *expression.ConditionBuilder
	for _, pred := range preds {
		cond, err := renderPredicate(pred)
		if err != nil {
			return nil, err
		}
		if filter == nil {
			filter = &cond
		} else {
			combined := filter.And(cond)
			filter = &combined
		}
	}
	return filter, nil
}

func renderPredicate(pred reviews.Predicate) (expression.ConditionBuilder, error) {
	name := expression.Name(pred.Name)
	switch pred.Op {
	case reviews.OpEqual:
		return name.Equal(expression.Value(pred.Value)), nil
	case reviews.OpGreaterThan:
		return name.GreaterThan(expression.Value(pred.Value)), nil
	case reviews.OpBeginsWith:
		prefix, ok := pred.Value.(string)
		if !ok {
			return expression.ConditionBuilder{}, fmt.Errorf("begins_with predicate on %s requires a string value", pred.Name)
		}
		return name.BeginsWith(prefix), nil
	default:
		return expression.ConditionBuilder{}, fmt.Errorf("unsupported predicate operator %q", pred.Op)
	}
}
