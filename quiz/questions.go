// Package quiz defines the questionnaire master list and the flow engine
// that filters, validates, and applies answers against a profile.
package quiz

import "github.com/SujayCh07/codelinc10-sub000/models"

type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeNumber      QuestionType = "number"
	TypeDate        QuestionType = "date"
	TypeSelect      QuestionType = "select"
	TypeSlider      QuestionType = "slider"
	TypeBoolean     QuestionType = "boolean"
	TypeMultiSelect QuestionType = "multi-select"
)

// Option is one selectable value for select and multi-select questions.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is one entry in the master list. ID maps 1:1 onto a profile
// field. Condition, when set, decides inclusion against the partial
// profile built so far; a nil condition means always included. FollowUp
// names the question that only applies when this one's answer triggers it,
// and the follow-up's own Condition must check that exact field.
type Question struct {
	ID        string                    `json:"id"`
	Title     string                    `json:"title"`
	Prompt    string                    `json:"prompt"`
	Type      QuestionType              `json:"type"`
	Min       int                       `json:"min,omitempty"`
	Max       int                       `json:"max,omitempty"`
	Step      int                       `json:"step,omitempty"`
	Options   []Option                  `json:"options,omitempty"`
	FollowUp  string                    `json:"follow_up,omitempty"`
	Condition func(models.Profile) bool `json:"-"`
}

// AllQuestions returns the master list in fixed order.
func AllQuestions() []Question {
	return masterQuestions
}

// QuestionByID looks up a question in the master list.
func QuestionByID(id string) (Question, bool) {
	for _, q := range masterQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func isTrue(b *bool) bool { return b != nil && *b }

var masterQuestions = []Question{
	{
		ID:     "name",
		Title:  "Your name",
		Prompt: "What's your full name?",
		Type:   TypeText,
	},
	{
		ID:     "preferred_name",
		Title:  "Preferred name",
		Prompt: "What should we call you?",
		Type:   TypeText,
	},
	{
		ID:     "age",
		Title:  "Age",
		Prompt: "How old are you?",
		Type:   TypeNumber,
		Min:    18,
		Max:    100,
	},
	{
		ID:     "marital_status",
		Title:  "Marital status",
		Prompt: "What's your marital status?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "Single", Value: "single"},
			{Label: "Married", Value: "married"},
			{Label: "Domestic partnership", Value: "partnered"},
			{Label: "Divorced", Value: "divorced"},
			{Label: "Widowed", Value: "widowed"},
		},
	},
	{
		ID:     "dependents",
		Title:  "Dependents",
		Prompt: "How many dependents do you support?",
		Type:   TypeNumber,
		Min:    0,
		Max:    10,
	},
	{
		ID:     "citizenship",
		Title:  "Citizenship",
		Prompt: "What's your citizenship status?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "U.S. citizen", Value: "us_citizen"},
			{Label: "Permanent resident", Value: "permanent_resident"},
			{Label: "Visa holder", Value: "visa"},
			{Label: "Other", Value: "other"},
		},
	},
	{
		ID:     "residency_state",
		Title:  "State of residence",
		Prompt: "Which state do you live in?",
		Type:   TypeText,
	},
	{
		ID:     "employment_start_date",
		Title:  "Start date",
		Prompt: "When did you start your current job?",
		Type:   TypeDate,
	},
	{
		ID:       "education_level",
		Title:    "Education",
		Prompt:   "What's your highest level of education?",
		Type:     TypeSelect,
		FollowUp: "major",
		Options: []Option{
			{Label: "High school", Value: "high_school"},
			{Label: "Associate degree", Value: "associate"},
			{Label: "Bachelor's degree", Value: "bachelors"},
			{Label: "Master's degree", Value: "masters"},
			{Label: "Doctorate", Value: "doctorate"},
		},
	},
	{
		ID:     "major",
		Title:  "Field of study",
		Prompt: "What did you study?",
		Type:   TypeText,
		Condition: func(p models.Profile) bool {
			switch p.EducationLevel {
			case "associate", "bachelors", "masters", "doctorate":
				return true
			}
			return false
		},
	},
	{
		ID:     "work_location",
		Title:  "Work location",
		Prompt: "How do you work most of the time?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "On site", Value: "onsite"},
			{Label: "Hybrid", Value: "hybrid"},
			{Label: "Remote", Value: "remote"},
		},
	},
	{
		ID:       "coverage_scope",
		Title:    "Who needs coverage",
		Prompt:   "Who are you looking to cover?",
		Type:     TypeSelect,
		FollowUp: "partner_has_coverage",
		Options: []Option{
			{Label: "Just me", Value: models.CoverageSelf},
			{Label: "Me and my spouse or partner", Value: models.CoverageSelfSpouse},
			{Label: "My whole family", Value: models.CoverageFamily},
		},
	},
	{
		ID:     "income_range",
		Title:  "Income",
		Prompt: "What's your annual income range?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "Under $40,000", Value: "under_40k"},
			{Label: "$40,000–$75,000", Value: "40k_75k"},
			{Label: "$75,000–$125,000", Value: "75k_125k"},
			{Label: "Over $125,000", Value: "over_125k"},
		},
	},
	{
		ID:     "has_existing_coverage",
		Title:  "Current coverage",
		Prompt: "Do you currently have health coverage?",
		Type:   TypeBoolean,
	},
	{
		ID:     "partner_has_coverage",
		Title:  "Partner coverage",
		Prompt: "Does your spouse or partner have coverage through their own employer?",
		Type:   TypeBoolean,
		Condition: func(p models.Profile) bool {
			return p.CoverageScope == models.CoverageSelfSpouse || p.CoverageScope == models.CoverageFamily
		},
	},
	{
		ID:     "savings_rate",
		Title:  "Savings rate",
		Prompt: "What percentage of your income do you save?",
		Type:   TypeSlider,
		Min:    0,
		Max:    50,
		Step:   1,
	},
	{
		ID:     "risk_comfort",
		Title:  "Risk comfort",
		Prompt: "How comfortable are you with financial risk?",
		Type:   TypeSlider,
		Min:    1,
		Max:    5,
		Step:   1,
	},
	{
		ID:     "investing",
		Title:  "Investing",
		Prompt: "Do you invest outside of retirement accounts?",
		Type:   TypeBoolean,
	},
	{
		ID:       "contributes_retirement",
		Title:    "Retirement savings",
		Prompt:   "Are you contributing to a retirement plan today?",
		Type:     TypeBoolean,
		FollowUp: "retirement_contribution_rate",
	},
	{
		ID:     "retirement_contribution_rate",
		Title:  "Contribution rate",
		Prompt: "What percentage of each paycheck goes to retirement?",
		Type:   TypeSlider,
		Min:    1,
		Max:    25,
		Step:   1,
		Condition: func(p models.Profile) bool {
			return isTrue(p.ContributesRetirement)
		},
	},
	{
		ID:     "primary_goal",
		Title:  "Main goal",
		Prompt: "What's your main financial goal right now?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "Save for retirement", Value: "retirement"},
			{Label: "Buy a home", Value: "buy a home"},
			{Label: "Protect my family", Value: "protect my family"},
			{Label: "Build emergency savings", Value: "emergency savings"},
			{Label: "Something else", Value: "other"},
		},
	},
	{
		ID:     "milestone",
		Title:  "Milestone",
		Prompt: "Is there a specific milestone you're working toward?",
		Type:   TypeText,
	},
	{
		ID:     "activity_level",
		Title:  "Activity level",
		Prompt: "How would you describe your activity level?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "Mostly sedentary", Value: "sedentary"},
			{Label: "Lightly active", Value: "light"},
			{Label: "Moderately active", Value: "moderate"},
			{Label: "Very active", Value: "high"},
		},
	},
	{
		ID:       "physically_active",
		Title:    "Regular activity",
		Prompt:   "Do you exercise or play sports regularly?",
		Type:     TypeBoolean,
		FollowUp: "activities",
	},
	{
		ID:     "activities",
		Title:  "Your activities",
		Prompt: "Which activities do you do?",
		Type:   TypeMultiSelect,
		Options: []Option{
			{Label: "Running", Value: "running"},
			{Label: "Gym / weights", Value: "gym"},
			{Label: "Cycling", Value: "cycling"},
			{Label: "Swimming", Value: "swimming"},
			{Label: "Contact sports", Value: "contact_sports"},
			{Label: "Climbing", Value: "climbing"},
			{Label: "Motorsports", Value: "motorsports"},
			{Label: "Skydiving", Value: "skydiving"},
			{Label: "Scuba diving", Value: "scuba"},
		},
		Condition: func(p models.Profile) bool {
			return isTrue(p.PhysicallyActive)
		},
	},
	{
		ID:     "tobacco_use",
		Title:  "Tobacco",
		Prompt: "Do you use tobacco products?",
		Type:   TypeBoolean,
	},
	{
		ID:     "has_disability",
		Title:  "Disability",
		Prompt: "Do you have a disability we should account for?",
		Type:   TypeBoolean,
	},
	{
		ID:     "chronic_conditions",
		Title:  "Ongoing conditions",
		Prompt: "Do you manage any ongoing health conditions?",
		Type:   TypeMultiSelect,
		Options: []Option{
			{Label: "None", Value: "none"},
			{Label: "Diabetes", Value: "diabetes"},
			{Label: "Heart condition", Value: "heart"},
			{Label: "Asthma", Value: "asthma"},
			{Label: "High blood pressure", Value: "hypertension"},
			{Label: "Other", Value: "other"},
		},
	},
	{
		ID:     "care_visit_frequency",
		Title:  "Care visits",
		Prompt: "How often do you see a doctor?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "Rarely", Value: "rarely"},
			{Label: "Once or twice a year", Value: "annual"},
			{Label: "Every few months", Value: "quarterly"},
			{Label: "Monthly or more", Value: "monthly"},
		},
	},
	{
		ID:     "prescription_frequency",
		Title:  "Prescriptions",
		Prompt: "How often do you fill prescriptions?",
		Type:   TypeSelect,
		Options: []Option{
			{Label: "Never", Value: "never"},
			{Label: "Occasionally", Value: "occasional"},
			{Label: "Monthly", Value: "monthly"},
		},
	},
	{
		ID:     "follow_up_consent",
		Title:  "Stay in touch",
		Prompt: "Can we follow up with enrollment reminders?",
		Type:   TypeBoolean,
	},
}
