package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(embeds Embeds) g.Node {
	return Section(
		Class("hero"),
		Div(
			Class("container"),
			AnimatedSection("hero", "text-center",
				Div(Class("pill"), g.Text("Building Intelligent Systems for Service-Based Businesses")),

				H1(
					Class("hero-title"),
					g.Text("Automate Your"),
					Br(),
					Span(Class("gradient-text"), g.Text("Growth")),
				),

				P(
					Class("hero-lead"),
					g.Text("Transform your business with tailored AI and process automation solutions. Our specialty is replacing the operational drag of manual tasks with streamlined, automated workflows that give you back your time."),
				),

				Div(
					Class("hero-actions"),
					g.If(embeds.TypeformURL != "", TypeformButton(embeds.TypeformURL, "btn btn-dark btn-lg", "Get Your Free Automation Blueprint")),
					Ul(
						Class("hero-checks"),
						CheckItem("No Consultation Fees"),
						CheckItem("Delivered in 10 Business Days"),
					),
				),
			),
		),
	)
}
