package reviews

import (
	"testing"

	"moviedb-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_NoParams(t *testing.T) {
	plan, err := Compile(1234, QueryParams{})

	require.NoError(t, err)
	assert.Equal(t, 1234, plan.MovieID())
	assert.Empty(t, plan.Predicates())
}

func TestCompile_MinRating(t *testing.T) {
	plan, err := Compile(1234, QueryParams{MinRating: "7"})

	require.NoError(t, err)
	preds := plan.Predicates()
	require.Len(t, preds, 1)
	assert.Equal(t, AttrRating, preds[0].Name)
	assert.Equal(t, OpGreaterThan, preds[0].Op)
	assert.Equal(t, 7, preds[0].Value)
}

func TestCompile_InvalidMinRating(t *testing.T) {
	_, err := Compile(1234, QueryParams{MinRating: "seven"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeInvalidParameter, appErr.Code)
}

func TestCompile_PredicateOrder(t *testing.T) {
	plan, err := Compile(1234, QueryParams{MinRating: "5", Reviewer: "Joe Bloggs", Year: "2023"})

	require.NoError(t, err)
	preds := plan.Predicates()
	require.Len(t, preds, 3)
	assert.Equal(t, AttrRating, preds[0].Name)
	assert.Equal(t, AttrReviewerName, preds[1].Name)
	assert.Equal(t, AttrReviewDate, preds[2].Name)
}

func TestPlan_WithIsNonDestructive(t *testing.T) {
	base := NewPlan(1)
	extended := base.WithMinRating(5)
	more := extended.WithReviewer("A")

	assert.Empty(t, base.Predicates())
	assert.Len(t, extended.Predicates(), 1)
	assert.Len(t, more.Predicates(), 2)
}

func TestPlan_PredicatesReturnsCopy(t *testing.T) {
	plan := NewPlan(1).WithMinRating(5)

	preds := plan.Predicates()
	preds[0].Name = "tampered"

	assert.Equal(t, AttrRating, plan.Predicates()[0].Name)
}
