package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{"/#services", "Services"},
	{"/#process", "Process"},
	{"/#about", "About"},
	{"/services", "Free Analysis"},
	{"/#contact", "Contact"},
}

func SiteTopbar(embeds Embeds) g.Node {
	links := func(class string) g.Node {
		return g.Group(g.Map(navLinks, func(l navLink) g.Node {
			return A(Class(class), Href(l.Href), g.Text(l.Label))
		}))
	}

	return Nav(
		Class("topbar"),
		Div(
			Class("container topbar-inner"),
			Logo(),

			Div(
				Class("nav-desktop"),
				links("nav-link"),
				ConsultationButton(embeds, "btn btn-dark", "Free Consultation"),
			),

			Button(
				Class("nav-toggle"),
				Type("button"),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", "false"),
				g.Attr("aria-label", "Toggle menu"),
				g.Attr("data-menu-toggle"),
				g.Text("☰"),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("nav-mobile"),
			g.Attr("hidden"),
			links("nav-link"),
			ConsultationButton(embeds, "btn btn-dark", "Free Consultation"),
		),
	)
}
