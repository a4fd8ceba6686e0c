package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CalEmbed loads the Cal.com bootstrap. The booking config travels as data
// attributes so the script itself stays static.
func CalEmbed(embeds Embeds) g.Node {
	return Script(
		Src("/static/js/cal.js"),
		g.Attr("defer"),
		g.Attr("data-cal-link", embeds.CalLink),
		g.Attr("data-cal-namespace", embeds.CalNamespace),
		g.Attr("data-cal-origin", "https://app.cal.com"),
		g.Attr("data-cal-layout", "month_view"),
	)
}

func ChatWidget(src string) g.Node {
	if src == "" {
		return nil
	}
	return Div(
		Class("chat-widget"),
		g.El("iframe",
			Src(src),
			g.Attr("title", "Chat with Monarch AI"),
			g.Attr("loading", "lazy"),
			g.Attr("allow", "microphone"),
		),
	)
}
