package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ProcessSection() g.Node {
	return Section(
		ID("process"),
		Class("section"),
		Div(
			Class("container"),
			AnimatedSection("process-heading", "text-center",
				H2(Class("section-title"), g.Text("From Chaos to Clarity in 10 Days")),
				P(Class("section-lead"), g.Text("A transparent process, a fixed price, and a functional system delivered in 10 business days.")),
			),
			Div(
				Class("grid grid-4"),
				g.Group(g.Map(indexed(processSteps), func(s indexedStep) g.Node {
					return AnimatedSection(fmt.Sprintf("process-%d", s.Index+1), "card",
						Div(Class("step-number"), g.Textf("%02d", s.Index+1)),
						Div(Class("step-duration"), g.Text(s.Duration)),
						H3(g.Text(s.Title)),
						P(g.Text(s.Description)),
					)
				})),
			),
		),
	)
}

type indexedStep struct {
	Index int
	processStep
}

func indexed(steps []processStep) []indexedStep {
	out := make([]indexedStep, len(steps))
	for i, s := range steps {
		out[i] = indexedStep{Index: i, processStep: s}
	}
	return out
}

func FeaturesSection() g.Node {
	return Section(
		ID("services"),
		Class("section section-muted"),
		Div(
			Class("container"),
			AnimatedSection("services-heading", "text-center",
				H2(Class("section-title"), g.Text("Intelligent Systems, Built for You")),
			),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(features, func(f feature) g.Node {
					return AnimatedSection("feature-"+slug(f.Title), "card",
						H3(g.Text(f.Title)),
						P(g.Text(f.Description)),
						Ul(Class("checks"), g.Group(g.Map(f.Benefits, CheckItem))),
					)
				})),
			),
		),
	)
}

func ToolsSection() g.Node {
	return Section(
		Class("section tools"),
		Div(
			Class("container"),
			AnimatedSection("tools", "text-center",
				P(Class("eyebrow"), g.Text("Built with the tools you already trust")),
				Ul(
					Class("tool-strip"),
					g.Group(g.Map(tools, func(name string) g.Node {
						return Li(Class("tool"), g.Text(name))
					})),
				),
			),
		),
	)
}

func TestimonialsSection() g.Node {
	return Section(
		ID("about"),
		Class("section"),
		Div(
			Class("container"),
			AnimatedSection("about-heading", "text-center",
				H2(Class("section-title"), g.Text("Trusted by Teams Who Ship")),
			),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(testimonials, func(t testimonial) g.Node {
					return AnimatedSection("testimonial-"+slug(t.Name), "card testimonial",
						Div(Class("stars"), g.Attr("aria-label", fmt.Sprintf("%d out of 5", t.Rating)), g.Text(strings.Repeat("★", t.Rating))),
						g.El("blockquote", g.Text(t.Content)),
						P(Class("author"), Strong(g.Text(t.Name)), Br(), g.Textf("%s, %s", t.Role, t.Company)),
					)
				})),
			),
		),
	)
}

func FAQSection() g.Node {
	return Section(
		ID("faq"),
		Class("section section-muted"),
		Div(
			Class("container narrow"),
			AnimatedSection("faq-heading", "text-center",
				H2(Class("section-title"), g.Text("Frequently Asked Questions")),
			),
			g.Group(g.Map(faqs, func(f faq) g.Node {
				return g.El("details",
					Class("faq"),
					Summary(g.Text(f.Question)),
					P(g.Text(f.Answer)),
				)
			})),
		),
	)
}

// slug turns a title into an id fragment: "Delivery & Support" -> "delivery-support"
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
