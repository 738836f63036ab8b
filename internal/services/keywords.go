package services

// SectionRule names a canonical resume section and the keywords whose
// presence marks it as found. Table order is the detection output order.
type SectionRule struct {
	Name     string
	Keywords []string
}

// JobRule maps a keyword cluster to a candidate role. MatchPercentage is an
// opaque per-rule label. Rules fire independently in declaration order.
type JobRule struct {
	Keywords        []string
	Title           string
	MatchPercentage string
	Reason          string
}

// Static reference data, loaded once and safe for unlimited concurrent
// readers. Keywords are matched case-insensitively as substrings.
var sectionTable = []SectionRule{
	{Name: "experience", Keywords: []string{"experience", "work history", "employment"}},
	{Name: "education", Keywords: []string{"education", "academic", "university", "college"}},
	{Name: "skills", Keywords: []string{"skills", "technologies", "technical proficiencies"}},
	{Name: "projects", Keywords: []string{"projects", "personal work", "portfolio"}},
	{Name: "contact", Keywords: []string{"email", "phone", "linkedin", "github"}},
}

var jobRules = []JobRule{
	{
		Keywords:        []string{"react", "javascript", "frontend"},
		Title:           "Frontend Developer",
		MatchPercentage: "92%",
		Reason:          "Strong match for modern web technologies found in your profile.",
	},
	{
		Keywords:        []string{"python", "data", "sql"},
		Title:           "Data Analyst",
		MatchPercentage: "88%",
		Reason:          "Your experience with data processing and databases aligns well.",
	},
	{
		Keywords:        []string{"manager", "lead", "agile"},
		Title:           "Project Manager",
		MatchPercentage: "85%",
		Reason:          "Leadership and methodology keywords detected.",
	},
}

var fallbackJob = JobRule{
	Title:           "General Associate",
	MatchPercentage: "70%",
	Reason:          "Based on your general professional profile.",
}
