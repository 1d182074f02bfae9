package quiz

import (
	"math"
	"strings"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

// QuestionsFor filters the master list against the partial profile built so
// far. Questions without a condition are always included. Order is the
// master list's order; filtering only ever excludes, never reorders.
func QuestionsFor(p models.Profile) []Question {
	out := make([]Question, 0, len(masterQuestions))
	for _, q := range masterQuestions {
		if q.Condition != nil && !q.Condition(p) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ClampPosition keeps a flow position in bounds after the applicable
// question set shrinks. An empty flow clamps to zero.
func ClampPosition(questions []Question, idx int) int {
	if len(questions) == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= len(questions) {
		return len(questions) - 1
	}
	return idx
}

// ApplyAnswer sets a single answer on the profile, coercing the raw value
// to the field's type. An unknown question ID is a no-op: this sits on the
// hot path of interactive input and must never fail. Setting
// physically_active to anything other than true clears the dependent
// activities list so no stale follow-up data survives.
func ApplyAnswer(p models.Profile, questionID string, value any) models.Profile {
	switch questionID {
	case "name":
		p.Name = asString(value)
	case "preferred_name":
		p.PreferredName = asString(value)
	case "age":
		p.Age = asInt(value)
	case "marital_status":
		p.MaritalStatus = asString(value)
	case "dependents":
		p.Dependents = asInt(value)
	case "citizenship":
		p.Citizenship = asString(value)
	case "residency_state":
		p.ResidencyState = asString(value)
	case "employment_start_date":
		p.EmploymentStartDate = asString(value)
	case "education_level":
		p.EducationLevel = asString(value)
	case "major":
		p.Major = asString(value)
	case "work_location":
		p.WorkLocation = asString(value)
	case "coverage_scope":
		p.CoverageScope = asString(value)
	case "income_range":
		p.IncomeRange = asString(value)
	case "has_existing_coverage":
		p.HasExistingCoverage = asBoolPtr(value)
	case "partner_has_coverage":
		p.PartnerHasCoverage = asBoolPtr(value)
	case "savings_rate":
		p.SavingsRate = asInt(value)
	case "risk_comfort":
		p.RiskComfort = asInt(value)
	case "investing":
		p.Investing = asBoolPtr(value)
	case "contributes_retirement":
		p.ContributesRetirement = asBoolPtr(value)
	case "retirement_contribution_rate":
		p.RetirementContributionRate = asInt(value)
	case "primary_goal":
		p.PrimaryGoal = asString(value)
	case "milestone":
		p.Milestone = asString(value)
	case "activity_level":
		p.ActivityLevel = asString(value)
	case "physically_active":
		p.PhysicallyActive = asBoolPtr(value)
		if !isTrue(p.PhysicallyActive) {
			p.Activities = []string{}
		}
	case "activities":
		p.Activities = asStringSlice(value)
	case "tobacco_use":
		p.TobaccoUse = asBoolPtr(value)
	case "has_disability":
		p.HasDisability = asBoolPtr(value)
	case "chronic_conditions":
		p.ChronicConditions = asStringSlice(value)
	case "care_visit_frequency":
		p.CareVisitFrequency = asString(value)
	case "prescription_frequency":
		p.PrescriptionFrequency = asString(value)
	case "follow_up_consent":
		p.FollowUpConsent = asBoolPtr(value)
	}
	return p
}

// ValidAnswer reports whether a candidate value satisfies the question
// type's validity predicate. The engine only exposes the predicate; the
// caller decides whether to gate advancement on it.
func ValidAnswer(q Question, value any) bool {
	switch q.Type {
	case TypeText, TypeDate:
		return strings.TrimSpace(asString(value)) != ""
	case TypeNumber, TypeSlider:
		f, ok := asFloat(value)
		return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
	case TypeSelect:
		return asString(value) != ""
	case TypeBoolean:
		// Strictly true or false; null (unanswered) does not validate.
		return asBoolPtr(value) != nil
	case TypeMultiSelect:
		return len(asStringSlice(value)) > 0
	}
	return false
}

// IsAnswered applies ValidAnswer to the value currently stored on the
// profile for this question.
func IsAnswered(q Question, p models.Profile) bool {
	return ValidAnswer(q, profileValue(q.ID, p))
}

func profileValue(id string, p models.Profile) any {
	switch id {
	case "name":
		return p.Name
	case "preferred_name":
		return p.PreferredName
	case "age":
		return p.Age
	case "marital_status":
		return p.MaritalStatus
	case "dependents":
		return p.Dependents
	case "citizenship":
		return p.Citizenship
	case "residency_state":
		return p.ResidencyState
	case "employment_start_date":
		return p.EmploymentStartDate
	case "education_level":
		return p.EducationLevel
	case "major":
		return p.Major
	case "work_location":
		return p.WorkLocation
	case "coverage_scope":
		return p.CoverageScope
	case "income_range":
		return p.IncomeRange
	case "has_existing_coverage":
		return p.HasExistingCoverage
	case "partner_has_coverage":
		return p.PartnerHasCoverage
	case "savings_rate":
		return p.SavingsRate
	case "risk_comfort":
		return p.RiskComfort
	case "investing":
		return p.Investing
	case "contributes_retirement":
		return p.ContributesRetirement
	case "retirement_contribution_rate":
		return p.RetirementContributionRate
	case "primary_goal":
		return p.PrimaryGoal
	case "milestone":
		return p.Milestone
	case "activity_level":
		return p.ActivityLevel
	case "physically_active":
		return p.PhysicallyActive
	case "activities":
		return p.Activities
	case "tobacco_use":
		return p.TobaccoUse
	case "has_disability":
		return p.HasDisability
	case "chronic_conditions":
		return p.ChronicConditions
	case "care_visit_frequency":
		return p.CareVisitFrequency
	case "prescription_frequency":
		return p.PrescriptionFrequency
	case "follow_up_consent":
		return p.FollowUpConsent
	}
	return nil
}

// Coercion helpers. JSON numbers arrive as float64, form values sometimes
// as strings; both are accepted.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asInt(v any) int {
	f, ok := asFloat(v)
	if !ok {
		return 0
	}
	return int(f)
}

func asBoolPtr(v any) *bool {
	switch b := v.(type) {
	case bool:
		return &b
	case *bool:
		return b
	}
	return nil
}

func asStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
