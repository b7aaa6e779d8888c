package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `validate:"required"`
	Rating int    `validate:"required,min=1,max=10"`
	Date   string `validate:"omitempty,datetime=2006-01-02"`
}

func TestCheckStruct_Valid(t *testing.T) {
	fields, err := CheckStruct(sample{Name: "x", Rating: 5, Date: "2023-01-02"})

	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestCheckStruct_CollectsViolatedFields(t *testing.T) {
	fields, err := CheckStruct(sample{Rating: 11})

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"name", "rating"}, fields)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "rating must be at most 10")
}

func TestCheckStruct_DateFormat(t *testing.T) {
	fields, err := CheckStruct(sample{Name: "x", Rating: 5, Date: "20-10-2023"})

	require.Error(t, err)
	assert.Equal(t, []string{"date"}, fields)
	assert.Contains(t, err.Error(), "date must match")
}

func TestCheckStruct_OmitemptyDate(t *testing.T) {
	_, err := CheckStruct(sample{Name: "x", Rating: 5})

	assert.NoError(t, err)
}
