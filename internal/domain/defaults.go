package domain

import "strings"

// The lookup tables below back the normalizer and the fallback synthesizer.
// They are deliberately the single source of these defaults; handlers and
// services must not re-declare them so the same title always resolves to the
// same universities and the same activity to the same color.

type universityEntry struct {
	keyword string
	schools []string
}

// universityTable is checked in declaration order; the first keyword found
// as a case-insensitive substring of the title wins.
var universityTable = []universityEntry{
	{"software", []string{"Massachusetts Institute of Technology", "Stanford University", "Carnegie Mellon University", "University of California, Berkeley"}},
	{"data", []string{"Carnegie Mellon University", "Massachusetts Institute of Technology", "University of Washington", "Georgia Institute of Technology"}},
	{"medicine", []string{"Harvard University", "Johns Hopkins University", "Stanford University", "Duke University"}},
	{"business", []string{"Harvard University", "University of Pennsylvania", "Stanford University"}},
	{"marketing", []string{"Northwestern University", "New York University", "University of Michigan"}},
	{"nursing", []string{"Johns Hopkins University", "University of Pennsylvania", "Emory University"}},
	{"journalism", []string{"Columbia University", "Northwestern University", "University of Missouri"}},
	{"engineering", []string{"Massachusetts Institute of Technology", "Georgia Institute of Technology", "California Institute of Technology", "Purdue University"}},
}

// genericUniversities is the default when no keyword matches.
var genericUniversities = []string{"Arizona State University", "Pennsylvania State University", "University of Florida"}

// DefaultUniversities resolves a suggestion title to its default university
// list. The returned slice is a copy; callers may append freely.
func DefaultUniversities(title string) []string {
	t := strings.ToLower(title)
	for _, e := range universityTable {
		if strings.Contains(t, e.keyword) {
			return append([]string(nil), e.schools...)
		}
	}
	return append([]string(nil), genericUniversities...)
}

// Weekly schedule enumerations. Order is part of the contract: fallback
// synthesis walks TimeLabels in order and wraps around when a day holds
// more activities than labels.
var (
	DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	TimeLabels = []string{"7:00 AM", "9:00 AM", "11:00 AM", "1:00 PM", "3:00 PM", "5:00 PM", "7:00 PM", "9:00 PM"}
)

// activityColors maps the activity vocabulary to display colors.
var activityColors = map[string]string{
	"Study Session":   "#4F46E5",
	"Reading":         "#0EA5E9",
	"Coding Practice": "#10B981",
	"Math Problems":   "#F59E0B",
	"Exercise":        "#EF4444",
	"Hobby Time":      "#8B5CF6",
	"Group Study":     "#14B8A6",
	"Career Research": "#6366F1",
	"Review Notes":    "#EC4899",
	"Rest":            "#64748B",
}

// neutralColor is used for activities outside the known vocabulary.
const neutralColor = "#9CA3AF"

// ActivityColor returns the display color for an activity name, falling
// back to a neutral color for unrecognized activities.
func ActivityColor(activity string) string {
	if c, ok := activityColors[activity]; ok {
		return c
	}
	return neutralColor
}

// IsCalendarDay reports whether name is one of the seven day names and
// returns the canonical spelling.
func IsCalendarDay(name string) (string, bool) {
	for _, d := range DayNames {
		if strings.EqualFold(strings.TrimSpace(name), d) {
			return d, true
		}
	}
	return "", false
}

// IsTimeLabel reports whether label is in the fixed daily label list and
// returns the canonical form.
func IsTimeLabel(label string) (string, bool) {
	for _, t := range TimeLabels {
		if strings.EqualFold(strings.TrimSpace(label), t) {
			return t, true
		}
	}
	return "", false
}

// AdvancedDegreeKeywords mark study goals that indicate a degree-track
// ambition for scoring purposes.
var AdvancedDegreeKeywords = []string{"bachelor", "masters", "phd"}
