package domain

import (
	"context"
	"sort"
	"strings"
)

// AnalysisErrorMessage is shown when the analysis flow fails for any reason.
const AnalysisErrorMessage = "Analysis failed. Please try again."

// SectionCategories is the display order of report sections.
var SectionCategories = []string{
	"user_experience",
	"content_strategy",
	"conversion_optimization",
	"brand_positioning",
}

type AnalysisSection struct {
	Score           int      `json:"score"`
	Insight         string   `json:"insight"`
	Recommendations []string `json:"recommendations"`
}

type AnalysisReport struct {
	URL               string                     `json:"url"`
	OverallScore      int                        `json:"overall_score"`
	Sections          map[string]AnalysisSection `json:"sections"`
	StrategicQuestion string                     `json:"strategic_question"`
}

// NamedSection pairs a section with its category key
type NamedSection struct {
	Category string
	AnalysisSection
}

// OrderedSections returns the sections in display order. Known categories
// come first, anything else follows alphabetically.
func (r *AnalysisReport) OrderedSections() []NamedSection {
	out := make([]NamedSection, 0, len(r.Sections))
	seen := make(map[string]bool, len(SectionCategories))
	for _, cat := range SectionCategories {
		if s, ok := r.Sections[cat]; ok {
			out = append(out, NamedSection{Category: cat, AnalysisSection: s})
			seen[cat] = true
		}
	}

	var rest []string
	for cat := range r.Sections {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	for _, cat := range rest {
		out = append(out, NamedSection{Category: cat, AnalysisSection: r.Sections[cat]})
	}
	return out
}

// Clone returns a deep copy of the report
func (r *AnalysisReport) Clone() *AnalysisReport {
	cp := *r
	cp.Sections = make(map[string]AnalysisSection, len(r.Sections))
	for k, s := range r.Sections {
		recs := make([]string, len(s.Recommendations))
		copy(recs, s.Recommendations)
		s.Recommendations = recs
		cp.Sections[k] = s
	}
	return &cp
}

// CategoryTitle turns "user_experience" into "User Experience"
func CategoryTitle(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type ScoreBand string

const (
	ScoreHigh   ScoreBand = "high"
	ScoreMedium ScoreBand = "medium"
	ScoreLow    ScoreBand = "low"
)

// BandFor classifies a score for display
func BandFor(score int) ScoreBand {
	switch {
	case score >= 80:
		return ScoreHigh
	case score >= 70:
		return ScoreMedium
	default:
		return ScoreLow
	}
}

// AnalyzeRequest is the JSON body accepted by the analyze endpoint
type AnalyzeRequest struct {
	URL string `json:"url" form:"url" binding:"required,max=2048"`
}

// AnalysisUsecase runs the website analysis flow
type AnalysisUsecase interface {
	Analyze(ctx context.Context, url string) (*AnalysisReport, error)
}
