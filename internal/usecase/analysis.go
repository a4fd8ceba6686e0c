package usecase

import (
	"context"
	"strings"
	"time"

	"monarch-web/internal/domain"
)

// mockReport stands in for the analysis backend, which does not exist yet.
// Analyze always returns a copy of it with the requested URL.
var mockReport = domain.AnalysisReport{
	URL:          "https://example-agency.com",
	OverallScore: 78,
	Sections: map[string]domain.AnalysisSection{
		"user_experience": {
			Score:           82,
			Insight:         "Strong visual hierarchy and intuitive navigation, but mobile responsiveness needs optimization.",
			Recommendations: []string{"Implement responsive breakpoints", "Optimize touch targets", "Improve loading performance"},
		},
		"content_strategy": {
			Score:           74,
			Insight:         "Compelling messaging with clear value propositions, though some technical jargon may alienate non-technical prospects.",
			Recommendations: []string{"Simplify technical language", "Add more case studies", "Strengthen calls-to-action"},
		},
		"conversion_optimization": {
			Score:           68,
			Insight:         "Multiple friction points in the conversion funnel. Contact forms are buried and trust signals are weak.",
			Recommendations: []string{"Streamline contact flow", "Add social proof", "Implement exit-intent optimization"},
		},
		"brand_positioning": {
			Score:           85,
			Insight:         "Clear differentiation and premium positioning. Brand voice is consistent and professional throughout.",
			Recommendations: []string{"Expand thought leadership content", "Strengthen industry expertise messaging"},
		},
	},
	StrategicQuestion: "Your site positions you as premium consultants, but your conversion path suggests you're competing on convenience rather than expertise. How might we redesign your client acquisition to reflect the true value of strategic partnership?",
}

type analysisUsecase struct {
	delay time.Duration
}

// NewAnalysisUsecase creates the mock analysis flow with a fixed artificial delay
func NewAnalysisUsecase(delay time.Duration) domain.AnalysisUsecase {
	return &analysisUsecase{delay: delay}
}

// Analyze waits for the configured delay and returns the canned report for url.
// An empty url never starts the flow.
func (uc *analysisUsecase) Analyze(ctx context.Context, url string) (*domain.AnalysisReport, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domain.ErrEmptyURL
	}

	if uc.delay > 0 {
		timer := time.NewTimer(uc.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	report := mockReport.Clone()
	report.URL = url
	return report, nil
}
