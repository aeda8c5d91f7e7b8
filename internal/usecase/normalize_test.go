package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unite-hq/mentorlaunch/internal/domain"
)

func TestNormalizeCareerItem_FullShape(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "Registered Nurse",
		"description": "Cares for patients.",
		"salary": "$60,000 - $90,000",
		"growth_outlook": "Faster than average",
		"education": "Bachelor of Science in Nursing",
		"degrees": ["Nursing"],
		"skills": ["Empathy", "Attention to detail"],
		"extracurriculars": ["Hospital volunteering"],
		"certifications": ["BLS"],
		"job_titles": ["Staff Nurse"],
		"universities": ["Some College"],
		"financial_advice": {
			"budgeting_tips": ["Track spending"],
			"saving_tips": ["Save early"],
			"education_costs": "Nursing programs vary widely.",
			"scholarships": ["Nursing association grants"],
			"earn_while_studying": "CNA shifts fit around classes."
		}
	}`)
	item, err := normalizeCareerItem(raw)
	require.NoError(t, err)
	assert.Equal(t, "Registered Nurse", item.Title)
	assert.Equal(t, []string{"Some College"}, item.Universities)
	assert.Equal(t, []string{"Track spending"}, item.FinancialAdvice.BudgetingTips)
	assert.Equal(t, "CNA shifts fit around classes.", item.FinancialAdvice.EarnWhileStudying)
	assert.Zero(t, item.FitScore)
}

func TestNormalizeCareerItem_UniversityDefaultKeying(t *testing.T) {
	raw := json.RawMessage(`{"title": "Software Engineer", "description": "Builds software."}`)
	item, err := normalizeCareerItem(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUniversities("Software Engineer"), item.Universities)
	assert.Equal(t, "Massachusetts Institute of Technology", item.Universities[0])
}

func TestNormalizeCareerItem_PlaceholdersAndEmptyLists(t *testing.T) {
	item, err := normalizeCareerItem(json.RawMessage(`{"title": "Mystery Job"}`))
	require.NoError(t, err)
	assert.Equal(t, "Not specified", item.Description)
	assert.Equal(t, "Not specified", item.Salary)
	assert.NotNil(t, item.Skills)
	assert.Empty(t, item.Skills)
	assert.NotNil(t, item.Certifications)
	assert.NotNil(t, item.FinancialAdvice.BudgetingTips)
	assert.NotEmpty(t, item.Universities)
}

func TestNormalizeCareerItem_AliasKeys(t *testing.T) {
	raw := json.RawMessage(`{"title": "Analyst", "compensation": "$50k", "growth": "steady", "roles": ["Junior Analyst"]}`)
	item, err := normalizeCareerItem(raw)
	require.NoError(t, err)
	assert.Equal(t, "$50k", item.Salary)
	assert.Equal(t, "steady", item.GrowthOutlook)
	assert.Equal(t, []string{"Junior Analyst"}, item.JobTitles)
}

func TestNormalizeCareerItem_ScalarSkillBecomesList(t *testing.T) {
	item, err := normalizeCareerItem(json.RawMessage(`{"title": "Writer", "skills": "Storytelling"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Storytelling"}, item.Skills)
}

func TestNormalizeCareerItem_RawScoreNeverTrusted(t *testing.T) {
	item, err := normalizeCareerItem(json.RawMessage(`{"title": "Analyst", "fit_score": 99}`))
	require.NoError(t, err)
	assert.Zero(t, item.FitScore)
}

func TestNormalizeCareerItem_Malformed(t *testing.T) {
	cases := map[string]string{
		"not an object":    `"just a string"`,
		"number":           `42`,
		"null":             `null`,
		"missing title":    `{"description": "no title at all"}`,
		"blank title":      `{"title": "   "}`,
		"title wrong type": `{"title": 5}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := normalizeCareerItem(json.RawMessage(raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedItem)
		})
	}
}

func TestNormalizeScheduleSlot(t *testing.T) {
	slot, err := normalizeScheduleSlot(json.RawMessage(`{"day": "monday", "time_label": "7:00 am", "activity": "Coding Practice"}`))
	require.NoError(t, err)
	assert.Equal(t, "Monday", slot.Day)
	assert.Equal(t, "7:00 AM", slot.TimeLabel)
	assert.Equal(t, domain.ActivityColor("Coding Practice"), slot.Color)
}

func TestNormalizeScheduleSlot_UnknownActivityGetsNeutralColor(t *testing.T) {
	slot, err := normalizeScheduleSlot(json.RawMessage(`{"day": "Friday", "time": "5:00 PM", "activity": "Kite Flying"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityColor("Kite Flying"), slot.Color)
	assert.NotEmpty(t, slot.Color)
}

func TestNormalizeScheduleSlot_Malformed(t *testing.T) {
	cases := map[string]string{
		"bad day":     `{"day": "Funday", "time_label": "7:00 AM", "activity": "Reading"}`,
		"bad time":    `{"day": "Monday", "time_label": "midnight", "activity": "Reading"}`,
		"no activity": `{"day": "Monday", "time_label": "7:00 AM"}`,
		"not object":  `[1,2,3]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := normalizeScheduleSlot(json.RawMessage(raw))
			require.ErrorIs(t, err, domain.ErrMalformedItem)
		})
	}
}
