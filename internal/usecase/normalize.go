package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/unite-hq/mentorlaunch/internal/domain"
)

// normalizeCareerItem coerces one raw AI-produced element into the canonical
// SuggestionItem shape. Missing fields get placeholders; list fields come
// back non-nil. Only a fundamentally wrong shape (not an object, no usable
// title) is an error, which drops that item alone from the batch.
func normalizeCareerItem(raw json.RawMessage) (domain.SuggestionItem, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return domain.SuggestionItem{}, fmt.Errorf("%w: element is not an object", domain.ErrMalformedItem)
	}

	title := strings.TrimSpace(strField(m, "title"))
	if title == "" {
		return domain.SuggestionItem{}, fmt.Errorf("%w: missing title", domain.ErrMalformedItem)
	}

	item := domain.SuggestionItem{
		Title:            title,
		Description:      orPlaceholder(strField(m, "description")),
		Salary:           orPlaceholder(strField(m, "salary", "salary_range", "compensation")),
		GrowthOutlook:    orPlaceholder(strField(m, "growth_outlook", "growth", "outlook")),
		Education:        orPlaceholder(strField(m, "education", "education_requirement")),
		Degrees:          listField(m, "degrees", "degree"),
		Skills:           listField(m, "skills"),
		Extracurriculars: listField(m, "extracurriculars", "extracurricular_activities"),
		Certifications:   listField(m, "certifications"),
		JobTitles:        listField(m, "job_titles", "jobTitles", "roles"),
		Universities:     listField(m, "universities"),
		FinancialAdvice:  financialAdviceField(m),
	}
	if len(item.Universities) == 0 {
		item.Universities = domain.DefaultUniversities(item.Title)
	}
	// Raw fit scores from the model are unverified; always recompute.
	item.FitScore = 0
	return item, nil
}

// normalizeScheduleSlot validates one raw element against the fixed day and
// time enumerations and assigns the derived display color.
func normalizeScheduleSlot(raw json.RawMessage) (domain.ScheduleSlot, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return domain.ScheduleSlot{}, fmt.Errorf("%w: element is not an object", domain.ErrMalformedItem)
	}
	day, ok := domain.IsCalendarDay(strField(m, "day"))
	if !ok {
		return domain.ScheduleSlot{}, fmt.Errorf("%w: unknown day", domain.ErrMalformedItem)
	}
	label, ok := domain.IsTimeLabel(strField(m, "time_label", "time", "timeLabel"))
	if !ok {
		return domain.ScheduleSlot{}, fmt.Errorf("%w: unknown time label", domain.ErrMalformedItem)
	}
	activity := strings.TrimSpace(strField(m, "activity", "name"))
	if activity == "" {
		return domain.ScheduleSlot{}, fmt.Errorf("%w: missing activity", domain.ErrMalformedItem)
	}
	return domain.ScheduleSlot{
		Day:       day,
		TimeLabel: label,
		Activity:  activity,
		Color:     domain.ActivityColor(activity),
	}, nil
}

const placeholder = "Not specified"

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return strings.TrimSpace(s)
}

// strField returns the first present string value among the candidate keys.
func strField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// listField returns the first plausible string list among the candidate
// keys. A bare string becomes a one-element list; anything else yields the
// empty (non-nil) list.
func listField(m map[string]any, keys ...string) []string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch vv := v.(type) {
		case []any:
			out := make([]string, 0, len(vv))
			for _, e := range vv {
				if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			return out
		case string:
			if strings.TrimSpace(vv) != "" {
				return []string{strings.TrimSpace(vv)}
			}
		}
	}
	return []string{}
}

func financialAdviceField(m map[string]any) domain.FinancialAdvice {
	adv := domain.FinancialAdvice{
		BudgetingTips: []string{},
		SavingTips:    []string{},
		Scholarships:  []string{},
	}
	sub, ok := m["financial_advice"].(map[string]any)
	if !ok {
		if sub, ok = m["financialAdvice"].(map[string]any); !ok {
			return adv
		}
	}
	adv.BudgetingTips = listField(sub, "budgeting_tips", "budgeting")
	adv.SavingTips = listField(sub, "saving_tips", "saving")
	adv.EducationCosts = strings.TrimSpace(strField(sub, "education_costs", "education_cost_advice"))
	adv.Scholarships = listField(sub, "scholarships", "scholarship_suggestions")
	adv.EarnWhileStudying = strings.TrimSpace(strField(sub, "earn_while_studying", "earning_while_studying"))
	return adv
}
