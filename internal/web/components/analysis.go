package components

import (
	"monarch-web/internal/domain"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AnalysisInput is the URL form of the services page. The loading panel is
// revealed by analyze.js while the POST is pending.
func AnalysisInput(csrfToken, url string) g.Node {
	return Div(
		Class("analysis"),
		AnimatedSection("analysis-input", "card text-center",
			H1(Class("section-title"), g.Text("Free AI Website Analysis")),
			P(Class("section-lead"), g.Text("Enter your website and get a strategic review of user experience, content, conversion and brand positioning.")),

			g.El("form",
				ID("analysis-form"),
				Class("analysis-form"),
				Method("post"),
				Action("/services"),

				Input(Type("hidden"), Name("csrf_token"), Value(csrfToken)),
				Input(
					ID("analysis-url"),
					Name("url"),
					Type("text"),
					g.Attr("inputmode", "url"),
					g.Attr("placeholder", "https://yourwebsite.com"),
					g.Attr("required"),
					Value(url),
				),
				Button(
					Class("btn btn-dark"),
					Type("submit"),
					g.Attr("data-analyze-submit"),
					g.If(url == "", g.Attr("disabled")),
					g.Text("Analyze Website"),
				),
			),
		),
		loadingState(),
	)
}

func loadingState() g.Node {
	return Div(
		ID("analysis-loading"),
		Class("card text-center analysis-loading"),
		g.Attr("hidden"),
		g.Attr("aria-live", "polite"),
		Div(Class("spinner"), g.Attr("aria-hidden", "true")),
		H2(g.Text("Analyzing your website...")),
		P(g.Text("Our AI is reviewing your site's structure, content and conversion paths.")),
	)
}

func ReportView(report *domain.AnalysisReport, embeds Embeds) g.Node {
	return Div(
		Class("analysis report"),

		A(Class("back-link"), Href("/services"), g.Text("← New Analysis")),

		AnimatedSection("report-summary", "card text-center",
			P(Class("eyebrow"), g.Text("Analysis for")),
			H1(Class("report-url"), g.Text(report.URL)),
			Div(
				Class("score score-"+string(domain.BandFor(report.OverallScore))),
				g.Attr("data-score", "overall"),
				Span(Class("score-value"), g.Textf("%d", report.OverallScore)),
				Span(Class("score-max"), g.Text("/100")),
			),
			P(g.Text("Overall Score")),
		),

		Div(
			Class("grid grid-2"),
			g.Group(g.Map(report.OrderedSections(), reportSection)),
		),

		g.If(report.StrategicQuestion != "",
			AnimatedSection("report-question", "card strategic",
				H2(g.Text("The Strategic Question")),
				P(g.Text(report.StrategicQuestion)),
				ConsultationButton(embeds, "btn btn-light", "Let's Discuss This"),
			),
		),
	)
}

func reportSection(s domain.NamedSection) g.Node {
	return AnimatedSection("report-"+s.Category, "card",
		Div(
			Class("report-section-head"),
			H3(g.Text(domain.CategoryTitle(s.Category))),
			Span(
				Class("score-badge score-"+string(domain.BandFor(s.Score))),
				g.Attr("data-score", s.Category),
				g.Textf("%d", s.Score),
			),
		),
		P(Class("insight"), g.Text(s.Insight)),
		g.If(len(s.Recommendations) > 0,
			Div(
				H4(Class("recommendations-title"), g.Text("Recommendations")),
				Ul(Class("checks"), g.Group(g.Map(s.Recommendations, CheckItem))),
			),
		),
	)
}

func AnalysisErrorView(message string) g.Node {
	return Div(
		Class("analysis"),
		AnimatedSection("analysis-error", "card text-center",
			H2(g.Text("Something went wrong")),
			P(Class("form-error"), g.Attr("role", "alert"), g.Text(message)),
			A(Class("btn btn-dark"), Href("/services"), g.Text("Try Again")),
		),
	)
}
