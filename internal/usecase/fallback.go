package usecase

import (
	"fmt"
	"strings"

	"github.com/unite-hq/mentorlaunch/internal/domain"
)

// The fallback synthesizer guarantees availability, not quality: it is pure,
// performs no I/O, and produces identical output for identical profiles so
// the pipeline can always terminate with a usable result.

// synthesizeCareerFallback returns exactly one generic, complete suggestion
// built from the profile.
func synthesizeCareerFallback(profile domain.UserProfile) []domain.SuggestionItem {
	desc := "A flexible starting point while you compare fields, talk to mentors, and build transferable skills."
	if interest := strings.TrimSpace(profile.CareerInterest); interest != "" {
		desc = fmt.Sprintf("A flexible starting point while you explore paths related to %s, talk to mentors, and build transferable skills.", interest)
	}
	skills := append([]string(nil), profile.Skills...)
	if len(skills) == 0 {
		skills = []string{"Communication", "Problem solving", "Time management"}
	}
	item := domain.SuggestionItem{
		Title:            "Career Explorer",
		Description:      desc,
		Salary:           "Varies by role and region",
		GrowthOutlook:    "Stable across most industries",
		Education:        "High school diploma; bachelor's degree recommended",
		Degrees:          []string{"General Studies"},
		Skills:           skills,
		Extracurriculars: []string{"Student clubs", "Volunteering", "Internships"},
		Certifications:   []string{},
		JobTitles:        []string{"Intern", "Junior Associate"},
		Universities:     domain.DefaultUniversities("Career Explorer"),
		FinancialAdvice: domain.FinancialAdvice{
			BudgetingTips:     []string{"Track monthly spending", "Set a fixed allowance for extras"},
			SavingTips:        []string{"Open a student savings account", "Automate a small weekly transfer"},
			EducationCosts:    "Compare in-state tuition and community college transfer routes before committing.",
			Scholarships:      []string{"Local community scholarships", "Merit-based school awards"},
			EarnWhileStudying: "Part-time tutoring or campus jobs keep hours compatible with classes.",
		},
	}
	return []domain.SuggestionItem{item}
}

// weekdayTemplate lists base activities per day, in DayNames order.
var weekdayTemplate = map[string][]string{
	"Monday":    {"Study Session", "Reading", "Exercise"},
	"Tuesday":   {"Study Session", "Group Study", "Hobby Time"},
	"Wednesday": {"Study Session", "Reading", "Exercise"},
	"Thursday":  {"Study Session", "Career Research", "Hobby Time"},
	"Friday":    {"Study Session", "Reading", "Review Notes"},
	"Saturday":  {"Group Study", "Exercise", "Hobby Time"},
	"Sunday":    {"Review Notes", "Rest"},
}

// synthesizeScheduleFallback builds a full-week schedule from the fixed
// per-day template, adjusted by simple predicate checks on the profile.
// Time labels are assigned by walking the fixed label list in order,
// wrapping around if a day ever holds more activities than labels.
func synthesizeScheduleFallback(profile domain.UserProfile) []domain.ScheduleSlot {
	technical := hasTechnicalBent(profile)
	math := hasMathStrength(profile)

	var slots []domain.ScheduleSlot
	for _, day := range domain.DayNames {
		activities := append([]string(nil), weekdayTemplate[day]...)
		for i, a := range activities {
			if technical && a == "Reading" {
				activities[i] = "Coding Practice"
			}
			if math && a == "Review Notes" {
				activities[i] = "Math Problems"
			}
		}
		slots = append(slots, assignLabels(day, activities)...)
	}
	return slots
}

// assignLabels places one day's activities on the fixed label list in order.
// Every activity gets a valid label; a label repeats within the day only
// once all labels are taken.
func assignLabels(day string, activities []string) []domain.ScheduleSlot {
	slots := make([]domain.ScheduleSlot, 0, len(activities))
	for i, a := range activities {
		slots = append(slots, domain.ScheduleSlot{
			Day:       day,
			TimeLabel: domain.TimeLabels[i%len(domain.TimeLabels)],
			Activity:  a,
			Color:     domain.ActivityColor(a),
		})
	}
	return slots
}

func hasTechnicalBent(profile domain.UserProfile) bool {
	if containsAnyFold(profile.CareerInterest, "tech", "software", "computer", "engineering") {
		return true
	}
	for _, s := range profile.Skills {
		if containsAnyFold(s, "tech", "coding", "programming") {
			return true
		}
	}
	return false
}

func hasMathStrength(profile domain.UserProfile) bool {
	for _, s := range profile.AcademicStrengths {
		if containsAnyFold(s, "math") {
			return true
		}
	}
	return false
}

func containsAnyFold(s string, subs ...string) bool {
	l := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
