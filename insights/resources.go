package insights

import "github.com/SujayCh07/codelinc10-sub000/models"

// themeResources is the static resource library. Every theme key must
// resolve to a non-empty list; foundation doubles as the fallback set.
var themeResources = map[models.ThemeKey][]models.Resource{
	models.ThemeRetirement: {
		{
			Title:       "Retirement Plan Basics",
			Description: "How employer retirement plans, matching, and vesting work.",
			URL:         "https://www.irs.gov/retirement-plans/plan-participant-employee/retirement-topics-401k-and-profit-sharing-plan-contribution-limits",
		},
		{
			Title:       "Contribution Rate Calculator",
			Description: "Estimate how small rate changes compound over a career.",
			URL:         "https://www.investor.gov/financial-tools-calculators/calculators/compound-interest-calculator",
		},
		{
			Title:       "Catch-Up Contributions",
			Description: "Extra contribution room once you turn 50.",
			URL:         "https://www.irs.gov/retirement-plans/plan-participant-employee/retirement-topics-catch-up-contributions",
		},
	},
	models.ThemeProtection: {
		{
			Title:       "Life Insurance 101",
			Description: "Term versus whole life, and how much coverage a household needs.",
			URL:         "https://content.naic.org/consumer/life-insurance.htm",
		},
		{
			Title:       "Disability Coverage Guide",
			Description: "Short-term and long-term disability benefits explained.",
			URL:         "https://www.ssa.gov/benefits/disability/",
		},
		{
			Title:       "Dependent Coverage Checklist",
			Description: "Adding a spouse or child to your benefits elections.",
			URL:         "https://www.healthcare.gov/coverage/dependent-coverage/",
		},
	},
	models.ThemeHome: {
		{
			Title:       "First-Time Homebuyer Guide",
			Description: "Down payments, closing costs, and mortgage pre-approval.",
			URL:         "https://www.consumerfinance.gov/owning-a-home/",
		},
		{
			Title:       "Down Payment Assistance Programs",
			Description: "State and federal programs that lower the cash needed at closing.",
			URL:         "https://www.hud.gov/topics/buying_a_home",
		},
	},
	models.ThemeSavings: {
		{
			Title:       "Emergency Fund How-To",
			Description: "Why three to six months of expenses is the usual target.",
			URL:         "https://www.consumerfinance.gov/start-small-save-up/",
		},
		{
			Title:       "High-Yield Savings Explained",
			Description: "Where to park an emergency fund so it keeps pace.",
			URL:         "https://www.fdic.gov/resources/consumers/",
		},
	},
	models.ThemeFoundation: {
		{
			Title:       "Benefits Enrollment Checklist",
			Description: "A walkthrough of every election you make during enrollment.",
			URL:         "https://www.dol.gov/general/topic/health-plans",
		},
		{
			Title:       "Budgeting Starter Guide",
			Description: "The 50/30/20 rule and simple ways to track spending.",
			URL:         "https://www.consumerfinance.gov/consumer-tools/",
		},
		{
			Title:       "Understanding Your Paycheck",
			Description: "Pre-tax deductions, withholdings, and what they mean for take-home pay.",
			URL:         "https://www.irs.gov/individuals/tax-withholding-estimator",
		},
	},
}

// resourcesForTheme always returns a non-empty list; unknown keys get the
// foundation set.
func resourcesForTheme(t models.ThemeKey) []models.Resource {
	if rs, ok := themeResources[t]; ok && len(rs) > 0 {
		return rs
	}
	return themeResources[models.ThemeFoundation]
}
