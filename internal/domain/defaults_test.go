package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultUniversities_KeywordOrder(t *testing.T) {
	// "Software Engineer" contains both "software" and "engineer";
	// the fixed check order must make the software table win.
	sw := DefaultUniversities("Senior Software Engineer")
	assert.Equal(t, []string{"Massachusetts Institute of Technology", "Stanford University", "Carnegie Mellon University", "University of California, Berkeley"}, sw)

	data := DefaultUniversities("Data Analyst")
	assert.Equal(t, "Carnegie Mellon University", data[0])

	// Deterministic: same title, same list, same order.
	assert.Equal(t, sw, DefaultUniversities("Senior Software Engineer"))
}

func TestDefaultUniversities_CaseInsensitive(t *testing.T) {
	assert.Equal(t, DefaultUniversities("NURSING Assistant"), DefaultUniversities("nursing assistant"))
}

func TestDefaultUniversities_GenericFallback(t *testing.T) {
	got := DefaultUniversities("Professional Juggler")
	require.NotEmpty(t, got)
	assert.Equal(t, genericUniversities, got)
}

func TestDefaultUniversities_ReturnsCopy(t *testing.T) {
	a := DefaultUniversities("Software Engineer")
	a[0] = "mutated"
	assert.NotEqual(t, "mutated", DefaultUniversities("Software Engineer")[0])
}

func TestActivityColor(t *testing.T) {
	assert.Equal(t, "#10B981", ActivityColor("Coding Practice"))
	assert.Equal(t, neutralColor, ActivityColor("Underwater Basket Weaving"))
}

func TestCalendarEnums(t *testing.T) {
	require.Len(t, DayNames, 7)
	require.Len(t, TimeLabels, 8)

	d, ok := IsCalendarDay(" monday ")
	require.True(t, ok)
	assert.Equal(t, "Monday", d)

	_, ok = IsCalendarDay("Someday")
	assert.False(t, ok)

	l, ok := IsTimeLabel("7:00 am")
	require.True(t, ok)
	assert.Equal(t, "7:00 AM", l)

	_, ok = IsTimeLabel("13:00")
	assert.False(t, ok)
}

func TestUserProfile_Validate(t *testing.T) {
	assert.NoError(t, UserProfile{Grade: "Grade 11"}.Validate())
	assert.NoError(t, UserProfile{CareerInterest: "Medicine"}.Validate())

	err := UserProfile{Skills: []string{"Technical skills"}}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
