package models

import "time"

// CoverageComplexity buckets how much coordination a household's coverage
// needs. Derived only, never set by hand.
type CoverageComplexity string

const (
	ComplexityLow    CoverageComplexity = "low"
	ComplexityMedium CoverageComplexity = "medium"
	ComplexityHigh   CoverageComplexity = "high"
)

// Coverage scope options, matching the quiz select values.
const (
	CoverageSelf       = "self"
	CoverageSelfSpouse = "self_plus_spouse"
	CoverageFamily     = "family"
)

// Derived holds the fields recomputed from the rest of the profile on every
// mutation. Stale values here are a bug, not a valid state.
type Derived struct {
	RiskFactorScore      int                `json:"risk_factor_score" bson:"risk_factor_score"`
	ActivityRiskModifier int                `json:"activity_risk_modifier" bson:"activity_risk_modifier"`
	CoverageComplexity   CoverageComplexity `json:"coverage_complexity" bson:"coverage_complexity"`
}

// Profile is the complete questionnaire answer set for one user. Optional
// boolean answers are pointers so that "unanswered" round-trips as null
// instead of collapsing to false.
type Profile struct {
	UserID string `json:"user_id" bson:"user_id"`

	// Identity
	Name          string `json:"name" bson:"name"`
	PreferredName string `json:"preferred_name" bson:"preferred_name"`

	// Demographic
	Age            int    `json:"age" bson:"age"`
	MaritalStatus  string `json:"marital_status" bson:"marital_status"`
	Dependents     int    `json:"dependents" bson:"dependents"`
	Citizenship    string `json:"citizenship" bson:"citizenship"`
	ResidencyState string `json:"residency_state" bson:"residency_state"`

	// Employment
	EmploymentStartDate string `json:"employment_start_date" bson:"employment_start_date"`
	EducationLevel      string `json:"education_level" bson:"education_level"`
	Major               string `json:"major" bson:"major"`
	WorkLocation        string `json:"work_location" bson:"work_location"`

	// Coverage preferences
	CoverageScope       string `json:"coverage_scope" bson:"coverage_scope"`
	IncomeRange         string `json:"income_range" bson:"income_range"`
	HasExistingCoverage *bool  `json:"has_existing_coverage" bson:"has_existing_coverage"`
	PartnerHasCoverage  *bool  `json:"partner_has_coverage" bson:"partner_has_coverage"`

	// Financial behavior
	SavingsRate                int    `json:"savings_rate" bson:"savings_rate"`
	RiskComfort                int    `json:"risk_comfort" bson:"risk_comfort"`
	Investing                  *bool  `json:"investing" bson:"investing"`
	ContributesRetirement      *bool  `json:"contributes_retirement" bson:"contributes_retirement"`
	RetirementContributionRate int    `json:"retirement_contribution_rate" bson:"retirement_contribution_rate"`
	PrimaryGoal                string `json:"primary_goal" bson:"primary_goal"`
	Milestone                  string `json:"milestone" bson:"milestone"`

	// Health and activity
	ActivityLevel         string   `json:"activity_level" bson:"activity_level"`
	PhysicallyActive      *bool    `json:"physically_active" bson:"physically_active"`
	Activities            []string `json:"activities" bson:"activities"`
	TobaccoUse            *bool    `json:"tobacco_use" bson:"tobacco_use"`
	HasDisability         *bool    `json:"has_disability" bson:"has_disability"`
	ChronicConditions     []string `json:"chronic_conditions" bson:"chronic_conditions"`
	CareVisitFrequency    string   `json:"care_visit_frequency" bson:"care_visit_frequency"`
	PrescriptionFrequency string   `json:"prescription_frequency" bson:"prescription_frequency"`

	// Consent / meta
	Guest           bool      `json:"guest" bson:"guest"`
	FollowUpConsent *bool     `json:"follow_up_consent" bson:"follow_up_consent"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`

	Derived Derived `json:"derived" bson:"derived"`
}

// NewProfile returns a profile with defaults for a first visit.
func NewProfile(userID string, guest bool) Profile {
	return Profile{
		UserID:      userID,
		RiskComfort: 3,
		Guest:       guest,
		CreatedAt:   time.Now().UTC(),
	}
}
