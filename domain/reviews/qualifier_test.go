package reviews

import (
	"testing"

	"moviedb-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveQualifier_Year(t *testing.T) {
	q, err := ResolveQualifier("2023")

	require.NoError(t, err)
	assert.Equal(t, QualifierYear, q.Kind)
	assert.Equal(t, "2023", q.Value)
}

func TestResolveQualifier_Reviewer(t *testing.T) {
	q, err := ResolveQualifier("Joe Bloggs")

	require.NoError(t, err)
	assert.Equal(t, QualifierReviewer, q.Kind)
	assert.Equal(t, "Joe Bloggs", q.Value)
}

func TestResolveQualifier_Empty(t *testing.T) {
	_, err := ResolveQualifier("")

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeMissingQualifier, appErr.Code)
}

func TestResolveQualifier_DigitBoundaries(t *testing.T) {
	cases := []struct {
		segment string
		kind    QualifierKind
	}{
		{"0000", QualifierYear},
		{"9999", QualifierYear},
		{"123", QualifierReviewer},
		{"12345", QualifierReviewer},
		{"202a", QualifierReviewer},
		{" 2023", QualifierReviewer},
		{"2023 ", QualifierReviewer},
	}

	for _, tc := range cases {
		q, err := ResolveQualifier(tc.segment)
		require.NoError(t, err, tc.segment)
		assert.Equal(t, tc.kind, q.Kind, tc.segment)
	}
}

func TestQualifier_Apply(t *testing.T) {
	base := NewPlan(1234)

	yearPlan := Qualifier{Kind: QualifierYear, Value: "2023"}.Apply(base)
	preds := yearPlan.Predicates()
	require.Len(t, preds, 1)
	assert.Equal(t, AttrReviewDate, preds[0].Name)
	assert.Equal(t, OpBeginsWith, preds[0].Op)

	reviewerPlan := Qualifier{Kind: QualifierReviewer, Value: "Joe Bloggs"}.Apply(base)
	preds = reviewerPlan.Predicates()
	require.Len(t, preds, 1)
	assert.Equal(t, AttrReviewerName, preds[0].Name)
	assert.Equal(t, OpEqual, preds[0].Op)

	// The base plan stays untouched
	assert.Empty(t, base.Predicates())
}
