package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(embeds Embeds) g.Node {
	currentYear := strconv.Itoa(time.Now().Year())

	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),

			Div(
				Class("footer-brand"),
				Logo(),
				P(g.Text("Building intelligent systems for service-based businesses. Replacing manual work with streamlined, automated workflows.")),
			),

			Div(
				P(Class("footer-heading"), g.Text("Company")),
				A(Href("/#services"), g.Text("Services")),
				A(Href("/#process"), g.Text("Process")),
				A(Href("/#about"), g.Text("About")),
				A(Href("/#faq"), g.Text("FAQ")),
			),

			Div(
				P(Class("footer-heading"), g.Text("Get Started")),
				A(Href("/services"), g.Text("Free Website Analysis")),
				A(Href(CalURL(embeds.CalLink)), g.Attr("target", "_blank"), g.Attr("rel", "noopener"), g.Text("Book a Consultation")),
				A(Href("/#contact"), g.Text("Contact")),
			),
		),

		Div(
			Class("container footer-bottom"),
			P(g.Textf("© %s Monarch AI. All rights reserved.", currentYear)),
			P(g.Text("Brussels, Belgium")),
		),
	)
}
