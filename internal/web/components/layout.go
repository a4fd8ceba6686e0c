package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Embeds configures the third-party widgets the pages load
type Embeds struct {
	CalLink       string
	CalNamespace  string
	TypeformURL   string
	ChatWidgetURL string
}

type PageConfig struct {
	Title       string
	Description string
	URL         string
	OGImage     string
	Embeds      Embeds
	// Scripts are extra page-specific scripts under /static/js
	Scripts []string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Monarch AI - Intelligent Systems for Growth"
	}

	if config.Description == "" {
		config.Description = "Transform your business with tailored AI and process automation solutions. Replacing operational drag with streamlined workflows that give you back your time."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("keywords"), Content("AI automation, business automation, workflow optimization, process automation, Belgium, Brussels")),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				g.If(config.Embeds.TypeformURL != "",
					Script(Src("https://embed.typeform.com/next/embed.js"), g.Attr("async")),
				),
			),
			Body(
				g.Group(content),

				Script(Src("/static/js/site.js"), g.Attr("defer")),
				g.If(config.Embeds.CalLink != "", CalEmbed(config.Embeds)),
				g.Group(g.Map(config.Scripts, func(name string) g.Node {
					return Script(Src("/static/js/"+name), g.Attr("defer"))
				})),
			),
		),
	})
}
