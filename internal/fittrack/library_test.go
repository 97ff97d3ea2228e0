package fittrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterLibrary_Unfiltered(t *testing.T) {
	res := FilterLibrary("", "")

	require.Len(t, res.Sections, 5)
	assert.Equal(t, "pressing", res.Sections[0].Category)
	assert.Equal(t, "pulling", res.Sections[1].Category)
	assert.Equal(t, "lower_body_standing", res.Sections[2].Category)
	assert.Equal(t, "serratus_lower_trap_focus", res.Sections[3].Category)
	assert.Equal(t, "core_standing", res.Sections[4].Category)

	assert.Contains(t, res.Sections[0].Exercises, "Landmine Press")
	assert.Equal(t, acJointUnsafe, res.Unsafe)
}

func TestFilterLibrary_ByCategory(t *testing.T) {
	res := FilterLibrary(CategoryLowerBody, "")

	require.Len(t, res.Sections, 1)
	// filtered sections carry the requested category literal, not the store key
	assert.Equal(t, "lower_body", res.Sections[0].Category)
	assert.Contains(t, res.Sections[0].Exercises, "Goblet Squats")
	assert.Equal(t, acJointUnsafe, res.Unsafe)
}

func TestFilterLibrary_RehabCategoryIsEmpty(t *testing.T) {
	res := FilterLibrary(CategoryRehab, "")
	assert.Empty(t, res.Sections)
	assert.Equal(t, acJointUnsafe, res.Unsafe)
}

func TestFilterLibrary_BySearchTerm(t *testing.T) {
	res := FilterLibrary("", "landmine")

	require.Len(t, res.Sections, 3)
	assert.Equal(t, "pressing", res.Sections[0].Category)
	assert.Equal(t, []string{"Landmine Press"}, res.Sections[0].Exercises)
	assert.Equal(t, "lower_body_standing", res.Sections[1].Category)
	assert.Equal(t, []string{"Landmine Squats"}, res.Sections[1].Exercises)
	assert.Equal(t, "core_standing", res.Sections[2].Category)
	assert.Equal(t, []string{"Landmine Rotations"}, res.Sections[2].Exercises)
}

func TestFilterLibrary_CategoryAndSearch(t *testing.T) {
	res := FilterLibrary(CategoryPressing, "floor")

	require.Len(t, res.Sections, 1)
	assert.Equal(t, "pressing", res.Sections[0].Category)
	assert.Equal(t, []string{"Floor Press"}, res.Sections[0].Exercises)
}

func TestFilterLibrary_SearchNoMatches(t *testing.T) {
	res := FilterLibrary("", "barbell bench")
	assert.Empty(t, res.Sections)
	assert.Equal(t, acJointUnsafe, res.Unsafe)
}
