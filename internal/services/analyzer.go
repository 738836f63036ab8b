package services

import (
	"fmt"
	"strings"

	"github.com/Devendra-Pratap-Singh/AI-Resume-Analyzer/internal/models"
)

const (
	baseScore        = 50
	sectionScore     = 8
	maxScore         = 99
	shortPenalty     = 15
	shortThreshold   = 500
	lengthyThreshold = 1500
	maxJobMatches    = 3
	atsThreshold     = 70
)

// AnalyzerService runs the heuristic analysis over normalized resume text.
// It is stateless and deterministic: identical text always yields an
// identical result.
type AnalyzerService interface {
	Analyze(text string) *models.AnalysisResult
}

type analyzerService struct {
	sections []SectionRule
	jobs     []JobRule
	fallback JobRule
}

func NewAnalyzerService() AnalyzerService {
	return &analyzerService{
		sections: sectionTable,
		jobs:     jobRules,
		fallback: fallbackJob,
	}
}

// Analyze composes section detection, heuristic scoring and job matching
// into a single result.
func (a *analyzerService) Analyze(text string) *models.AnalysisResult {
	lower := strings.ToLower(text)

	found := a.detectSections(lower)
	result := a.score(text, found)
	result.Jobs = a.matchJobs(lower)

	return result
}

// detectSections reports which canonical sections are present, in table
// order. A section counts as found when any of its keywords appears in the
// lower-cased text.
func (a *analyzerService) detectSections(lower string) []string {
	var found []string
	for _, rule := range a.sections {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, rule.Name)
				break
			}
		}
	}
	return found
}

func (a *analyzerService) score(text string, found []string) *models.AnalysisResult {
	score := baseScore + sectionScore*len(found)

	var pros, cons, recommendations []string

	if contains(found, "experience") {
		pros = append(pros, "Professional experience section detected")
	} else {
		cons = append(cons, "Missing clear work experience section")
		recommendations = append(recommendations, "Add a dedicated 'Experience' section to showcase your career history.")
	}

	if contains(found, "skills") {
		pros = append(pros, "Technical skills are clearly listed")
	} else {
		cons = append(cons, "Skills section is missing or poorly defined")
		recommendations = append(recommendations, "Create a 'Skills' section with keywords relevant to your target roles.")
	}

	if len(text) > lengthyThreshold {
		pros = append(pros, "Comprehensive content length")
	} else if len(text) < shortThreshold {
		score -= shortPenalty
		cons = append(cons, "Resume is too short")
		recommendations = append(recommendations, "Expand on your achievements and responsibilities to provide more context.")
	}

	// The clamp is one-sided on purpose: heavy penalties may drive the score
	// below zero and the result keeps that value.
	if score > maxScore {
		score = maxScore
	}

	verdict := "It needs more optimization to pass automated filters."
	if score > atsThreshold {
		verdict = "It is well-structured for ATS systems."
	}
	summary := fmt.Sprintf("Your resume contains %d key professional sections. %s", len(found), verdict)

	if len(pros) == 0 {
		pros = []string{"Basic contact information found"}
	}
	if len(cons) == 0 {
		cons = []string{"No major structural issues found"}
	}
	if len(recommendations) == 0 {
		recommendations = []string{"Quantify your achievements with numbers (e.g., 'Increased sales by 20%')"}
	}

	return &models.AnalysisResult{
		Score:           score,
		Summary:         summary,
		Pros:            pros,
		Cons:            cons,
		Recommendations: recommendations,
	}
}

// matchJobs evaluates every rule in order and caps the output at three
// matches. Rules are not mutually exclusive; with no match at all a single
// fallback role is emitted.
func (a *analyzerService) matchJobs(lower string) []models.JobMatch {
	var matches []models.JobMatch
	for _, rule := range a.jobs {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, models.JobMatch{
					Title:           rule.Title,
					MatchPercentage: rule.MatchPercentage,
					Reason:          rule.Reason,
				})
				break
			}
		}
	}

	if len(matches) == 0 {
		matches = append(matches, models.JobMatch{
			Title:           a.fallback.Title,
			MatchPercentage: a.fallback.MatchPercentage,
			Reason:          a.fallback.Reason,
		})
	}

	if len(matches) > maxJobMatches {
		matches = matches[:maxJobMatches]
	}

	return matches
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
