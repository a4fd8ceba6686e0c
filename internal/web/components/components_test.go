package components_test

import (
	"strings"
	"testing"

	"monarch-web/internal/domain"
	"monarch-web/internal/web/components"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

var testEmbeds = components.Embeds{
	CalLink:      "monarch-ai-cloud/30min",
	CalNamespace: "30min",
	TypeformURL:  "https://form.typeform.com/to/abc123",
}

func parse(t *testing.T, node g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func TestHomePage(t *testing.T) {
	doc := parse(t, components.HomePage(
		components.PageConfig{Embeds: testEmbeds},
		components.ContactView{FormID: "form-1", CSRFToken: "tok", Available: true},
	))

	t.Run("Should wrap every section for the scroll reveal", func(t *testing.T) {
		for _, id := range []string{"hero", "process-heading", "services-heading", "tools", "about-heading", "faq-heading", "contact-intro"} {
			sel := doc.Find("#" + id)
			require.Equal(t, 1, sel.Length(), id)
			_, ok := sel.Attr("data-animate")
			assert.True(t, ok, id)
		}
	})

	t.Run("Should render the static content lists", func(t *testing.T) {
		assert.Equal(t, 4, doc.Find("#process .card").Length())
		assert.Equal(t, 3, doc.Find("#services .card").Length())
		assert.Equal(t, 3, doc.Find("#about .testimonial").Length())
		assert.Equal(t, 5, doc.Find("#faq details").Length())
		assert.Equal(t, "Days 1-2", strings.TrimSpace(doc.Find("#process-1 .step-duration").Text()))
	})

	t.Run("Should carry csrf token and form id in the contact form", func(t *testing.T) {
		form := doc.Find("form#contact-form")
		require.Equal(t, 1, form.Length())
		assert.Equal(t, "/v1/contact", form.AttrOr("data-endpoint", ""))
		assert.Equal(t, "tok", form.Find("input[name=csrf_token]").AttrOr("value", ""))
		assert.Equal(t, "form-1", form.Find("input[name=formId]").AttrOr("value", ""))
		_, hidden := doc.Find("[data-form-success]").Attr("hidden")
		assert.True(t, hidden)
	})

	t.Run("Should link booking buttons to cal.com in a new tab", func(t *testing.T) {
		btn := doc.Find("a[data-cal-link]").First()
		assert.Equal(t, "https://cal.com/monarch-ai-cloud/30min", btn.AttrOr("href", ""))
		assert.Equal(t, "_blank", btn.AttrOr("target", ""))
	})

	t.Run("Should load the embed scripts", func(t *testing.T) {
		assert.Equal(t, 1, doc.Find(`script[src="https://embed.typeform.com/next/embed.js"]`).Length())
		cal := doc.Find(`script[src="/static/js/cal.js"]`)
		assert.Equal(t, "monarch-ai-cloud/30min", cal.AttrOr("data-cal-link", ""))
		assert.Equal(t, "30min", cal.AttrOr("data-cal-namespace", ""))
		assert.Equal(t, 1, doc.Find(`script[src="/static/js/contact.js"]`).Length())
	})

	t.Run("Should open the blueprint form as popup with a link fallback", func(t *testing.T) {
		cta := doc.Find("a[data-typeform-popup]")
		assert.Equal(t, testEmbeds.TypeformURL, cta.AttrOr("href", ""))
		assert.Equal(t, 1, doc.Find("#typeform-modal iframe").Length())
	})

	t.Run("Should omit the chat widget when no url is set", func(t *testing.T) {
		assert.Equal(t, 0, doc.Find(".chat-widget").Length())
	})
}

func TestHomePageChatWidget(t *testing.T) {
	embeds := testEmbeds
	embeds.ChatWidgetURL = "https://chat.example.com/widget"
	doc := parse(t, components.HomePage(components.PageConfig{Embeds: embeds}, components.ContactView{}))

	assert.Equal(t, embeds.ChatWidgetURL, doc.Find(".chat-widget iframe").AttrOr("src", ""))
}

func TestContactSection(t *testing.T) {
	t.Run("Should keep values and show the error after a failure", func(t *testing.T) {
		doc := parse(t, components.ContactSection(components.ContactView{
			State: domain.ContactFormState{
				Fields: domain.ContactFormFields{FirstName: "Ada", Email: "ada@example.com", Message: "Hello"},
				Error:  domain.ContactErrorMessage,
			},
			Available: true,
		}))

		assert.Equal(t, "Ada", doc.Find("input[name=firstName]").AttrOr("value", ""))
		assert.Equal(t, "ada@example.com", doc.Find("input[name=email]").AttrOr("value", ""))
		assert.Equal(t, "Hello", doc.Find("textarea[name=message]").Text())

		errBox := doc.Find("[data-form-error]")
		_, hidden := errBox.Attr("hidden")
		assert.False(t, hidden)
		assert.Equal(t, domain.ContactErrorMessage, errBox.Text())
	})

	t.Run("Should show only the confirmation after success", func(t *testing.T) {
		doc := parse(t, components.ContactSection(components.ContactView{
			State:     domain.ContactFormState{Submitted: true},
			Available: true,
		}))

		assert.Equal(t, 0, doc.Find("form#contact-form").Length())
		success := doc.Find("[data-form-success]")
		require.Equal(t, 1, success.Length())
		_, hidden := success.Attr("hidden")
		assert.False(t, hidden)
	})

	t.Run("Should disable submit when the webhook is not configured", func(t *testing.T) {
		doc := parse(t, components.ContactSection(components.ContactView{}))

		_, disabled := doc.Find("button[type=submit]").Attr("disabled")
		assert.True(t, disabled)
	})
}

func TestReportView(t *testing.T) {
	report := &domain.AnalysisReport{
		URL:          "https://example.com",
		OverallScore: 78,
		Sections: map[string]domain.AnalysisSection{
			"brand_positioning": {Score: 85, Insight: "Strong", Recommendations: []string{"Keep going"}},
			"user_experience":   {Score: 62, Insight: "Weak"},
		},
		StrategicQuestion: "Why?",
	}
	doc := parse(t, components.ReportView(report, testEmbeds))

	assert.Equal(t, "https://example.com", doc.Find(".report-url").Text())
	assert.Equal(t, "78", doc.Find(".score-value").Text())
	assert.True(t, doc.Find(`[data-score="overall"]`).HasClass("score-medium"))

	titles := doc.Find(".report-section-head h3").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"User Experience", "Brand Positioning"}, titles)

	assert.True(t, doc.Find(`[data-score="user_experience"]`).HasClass("score-low"))
	assert.True(t, doc.Find(`[data-score="brand_positioning"]`).HasClass("score-high"))
	assert.Equal(t, "/services", doc.Find("a.back-link").AttrOr("href", ""))
	assert.Contains(t, doc.Find(".strategic").Text(), "Why?")

	strategic := doc.Find(".strategic")
	assert.Equal(t, "The Strategic Question", strategic.Find("h2").Text())
	cta := strategic.Find("a.btn")
	require.Equal(t, 1, cta.Length())
	assert.Equal(t, "Let's Discuss This", cta.Text())
	assert.Equal(t, components.CalURL(testEmbeds.CalLink), cta.AttrOr("href", ""))
	assert.Equal(t, testEmbeds.CalLink, cta.AttrOr("data-cal-link", ""))
}

func TestAnalysisViews(t *testing.T) {
	t.Run("Should disable analyze until a url is entered", func(t *testing.T) {
		doc := parse(t, components.AnalysisInput("tok", ""))

		_, disabled := doc.Find("[data-analyze-submit]").Attr("disabled")
		assert.True(t, disabled)
		assert.Equal(t, "tok", doc.Find("input[name=csrf_token]").AttrOr("value", ""))
		_, hidden := doc.Find("#analysis-loading").Attr("hidden")
		assert.True(t, hidden)
	})

	t.Run("Should offer try again on failure", func(t *testing.T) {
		doc := parse(t, components.AnalysisErrorView(domain.AnalysisErrorMessage))

		assert.Equal(t, domain.AnalysisErrorMessage, doc.Find(".form-error").Text())
		link := doc.Find("a.btn")
		assert.Equal(t, "Try Again", link.Text())
		assert.Equal(t, "/services", link.AttrOr("href", ""))
	})
}

func TestCalURL(t *testing.T) {
	assert.Equal(t, "https://cal.com/team/intro", components.CalURL("team/intro"))
}
