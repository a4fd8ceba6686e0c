package components

import (
	"monarch-web/internal/domain"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactView is everything the contact section needs for one render
type ContactView struct {
	State     domain.ContactFormState
	FormID    string
	CSRFToken string
	Available bool
	Embeds    Embeds
}

func ContactSection(view ContactView) g.Node {
	return Section(
		ID("contact"),
		Class("section"),
		Div(
			Class("container grid grid-2"),

			AnimatedSection("contact-intro", "",
				H2(Class("section-title"), g.Text("Let's Build Your Growth Engine")),
				P(Class("section-lead"), g.Text("Tell us where the manual work piles up. We reply within one business day with next steps.")),
				Ul(
					Class("checks"),
					CheckItem("Free consultation, remote or onsite"),
					CheckItem("Fixed price, no surprises"),
					CheckItem("Based in Brussels, working across Belgium"),
				),
				Div(
					Class("contact-actions"),
					ConsultationButton(view.Embeds, "btn btn-dark", "Book a Call"),
					g.If(view.Embeds.TypeformURL != "",
						Button(
							Class("btn btn-outline"),
							Type("button"),
							g.Attr("data-modal-open", "typeform-modal"),
							g.Text("Get Your Free Blueprint"),
						),
					),
				),
			),

			AnimatedSection("contact-form-card", "card",
				g.Iff(view.State.Submitted, func() g.Node { return contactSuccess(false) }),
				g.Iff(!view.State.Submitted, func() g.Node { return contactForm(view) }),
			),
		),

		g.If(view.Embeds.TypeformURL != "", TypeformModal(view.Embeds.TypeformURL)),
	)
}

func contactForm(view ContactView) g.Node {
	f := view.State.Fields

	return Div(
		contactSuccess(true),
		g.El("form",
			ID("contact-form"),
			Method("post"),
			Action("/contact#contact"),
			g.Attr("data-endpoint", "/v1/contact"),
			g.Attr("novalidate"),

			Input(Type("hidden"), Name("csrf_token"), Value(view.CSRFToken)),
			Input(Type("hidden"), Name("formId"), Value(view.FormID)),

			Div(
				Class("field-row"),
				field("firstName", "First Name", "text", f.FirstName, true),
				field("lastName", "Last Name", "text", f.LastName, true),
			),
			field("email", "Email", "text", f.Email, true),
			Div(
				Class("field-row"),
				field("company", "Company", "text", f.Company, false),
				field("phone", "Phone", "text", f.Phone, false),
			),
			Div(
				Class("field"),
				Label(g.Attr("for", "contact-message"), g.Text("Message *")),
				Textarea(
					ID("contact-message"),
					Name("message"),
					g.Attr("rows", "5"),
					g.Attr("required"),
					g.Text(f.Message),
				),
			),

			P(
				Class("form-error"),
				g.Attr("role", "alert"),
				g.Attr("data-form-error"),
				g.If(view.State.Error == "", g.Attr("hidden")),
				g.Text(view.State.Error),
			),

			g.If(!view.Available,
				P(Class("form-note"), g.Text("The contact form is temporarily unavailable. Please book a call instead.")),
			),

			Button(
				Class("btn btn-dark btn-block"),
				Type("submit"),
				g.Attr("data-submit"),
				g.If(!view.Available, g.Attr("disabled")),
				g.Text("Send Message"),
			),
		),
	)
}

// contactSuccess is rendered hidden next to the form so contact.js can swap
// to it without a reload.
func contactSuccess(hidden bool) g.Node {
	return Div(
		Class("form-success"),
		g.Attr("data-form-success"),
		g.Attr("role", "status"),
		g.If(hidden, g.Attr("hidden")),
		H3(g.Text("Thank you!")),
		P(g.Text("Your message has been sent. We'll get back to you within one business day.")),
		A(Class("btn btn-outline"), Href("/#contact"), g.Attr("data-form-reset"), g.Text("Send another message")),
	)
}

func field(name, label, kind, value string, required bool) g.Node {
	id := "contact-" + name
	text := label
	if required {
		text += " *"
	}

	return Div(
		Class("field"),
		Label(g.Attr("for", id), g.Text(text)),
		Input(
			ID(id),
			Name(name),
			Type(kind),
			Value(value),
			g.Attr("autocomplete", autocomplete[name]),
			g.If(required, g.Attr("required")),
		),
	)
}

// TypeformModal shows the blueprint form in an iframe overlay
func TypeformModal(formURL string) g.Node {
	return Div(
		ID("typeform-modal"),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-label", "Free Automation Blueprint"),
		g.Attr("hidden"),
		Div(Class("modal-backdrop"), g.Attr("data-modal-close")),
		Div(
			Class("modal-panel"),
			Button(
				Class("modal-close"),
				Type("button"),
				g.Attr("aria-label", "Close"),
				g.Attr("data-modal-close"),
				g.Text("×"),
			),
			g.El("iframe",
				g.Attr("data-src", formURL),
				g.Attr("title", "Free Automation Blueprint"),
				g.Attr("allow", "camera; microphone; autoplay; encrypted-media;"),
			),
		),
	)
}

var autocomplete = map[string]string{
	"firstName": "given-name",
	"lastName":  "family-name",
	"email":     "email",
	"company":   "organization",
	"phone":     "tel",
}
