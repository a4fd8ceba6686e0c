package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CalURL is the public booking page for a Cal.com link such as "team/30min"
func CalURL(calLink string) string {
	return "https://cal.com/" + calLink
}

func Logo() g.Node {
	return A(
		Class("logo"),
		Href("/"),
		Span(Class("logo-mark"), g.Attr("aria-hidden", "true"), g.Text("M")),
		Div(
			Span(Class("logo-name"), g.Text("Monarch AI")),
			Div(Class("logo-tagline"), g.Text("Intelligent Systems for Growth")),
		),
	)
}

// AnimatedSection marks a block for the scroll reveal in site.js. It starts
// offset and fades in once it scrolls into view.
func AnimatedSection(id, class string, children ...g.Node) g.Node {
	classes := "animate"
	if class != "" {
		classes += " " + class
	}
	return Div(
		ID(id),
		Class(classes),
		g.Attr("data-animate"),
		g.Group(children),
	)
}

// ConsultationButton opens the booking page in a new tab
func ConsultationButton(embeds Embeds, class, label string) g.Node {
	return A(
		Class(class),
		Href(CalURL(embeds.CalLink)),
		g.Attr("target", "_blank"),
		g.Attr("rel", "noopener"),
		g.Attr("data-cal-link", embeds.CalLink),
		g.Attr("data-cal-namespace", embeds.CalNamespace),
		g.Text(label),
	)
}

func CheckItem(text string) g.Node {
	return Li(
		Class("check-item"),
		Span(Class("check"), g.Attr("aria-hidden", "true"), g.Text("✓")),
		g.Text(text),
	)
}

// TypeformButton opens the form as a popup once embed.js has loaded; the
// href is the new-tab fallback.
func TypeformButton(formURL, class, label string) g.Node {
	return A(
		Class(class),
		Href(formURL),
		g.Attr("target", "_blank"),
		g.Attr("rel", "noopener"),
		g.Attr("data-typeform-popup"),
		g.Attr("data-typeform-url", formURL),
		g.Text(label),
	)
}
