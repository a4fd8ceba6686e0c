package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func HomePage(config PageConfig, contact ContactView) g.Node {
	contact.Embeds = config.Embeds
	config.Scripts = append(config.Scripts, "contact.js")

	return Layout(
		config,
		SiteTopbar(config.Embeds),
		Main(
			Hero(config.Embeds),
			ProcessSection(),
			FeaturesSection(),
			ToolsSection(),
			TestimonialsSection(),
			FAQSection(),
			ContactSection(contact),
		),
		PageFooter(config.Embeds),
		ChatWidget(config.Embeds.ChatWidgetURL),
	)
}

// ServicesPage wraps one of the analysis views (input, report or error)
func ServicesPage(config PageConfig, body g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Free AI Website Analysis - Monarch AI"
	}
	config.Scripts = append(config.Scripts, "analyze.js")

	return Layout(
		config,
		SiteTopbar(config.Embeds),
		Main(
			Section(
				Class("section"),
				Div(Class("container narrow"), body),
			),
		),
		PageFooter(config.Embeds),
	)
}
