package view

import (
	"github.com/maragudk/gomponents-heroicons/v2/outline"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"ReferEarn/internal/referral"
)

const siteName = "Refer & Earn"

func page(title string, flash *referral.Notification, body ...Node) Node {
	return HTML5(HTML5Props{
		Title:       title + " - " + siteName,
		Description: "Refer friends to our courses and earn rewards.",
		Language:    "en",
		Head: []Node{
			Link(Rel("icon"), Href("/static/favicon.ico")),
			Script(Src("https://cdn.tailwindcss.com")),
			StyleEl(Raw(animations)),
		},
		Body: []Node{
			Class("antialiased"),
			Group(body),
			toast(flash),
			Script(Raw(toastScript)),
		},
	})
}

// toast renders a top-center notification that hides itself after a few seconds.
func toast(n *referral.Notification) Node {
	if n == nil {
		return nil
	}
	icon, tone := Node(outline.CheckCircle()), "text-green-600"
	if n.Kind == referral.NotifyError {
		icon, tone = outline.ExclamationCircle(), "text-red-600"
	}
	return Div(
		ID("toast"),
		Role("status"),
		Aria("live", "polite"),
		Data("kind", string(n.Kind)),
		Class("fixed top-4 left-1/2 -translate-x-1/2 z-[60] animate-fade-in-up"),
		Div(
			Class("flex items-center gap-3 bg-white rounded-lg shadow-lg px-4 py-3"),
			Span(Class("h-6 w-6 "+tone), icon),
			P(Class("text-gray-800 font-medium"), Text(n.Message)),
		),
	)
}

const animations = `
@keyframes fade-in-up { from { opacity: 0; transform: translateY(20px); } to { opacity: 1; transform: none; } }
@keyframes pop-in { from { opacity: 0; transform: scale(0); } to { opacity: 1; transform: scale(1); } }
.animate-fade-in-up { animation: fade-in-up 0.6s ease-out both; }
.animate-pop-in { animation: pop-in 0.4s ease-out both; }
.delay-200 { animation-delay: 0.2s; }
.delay-300 { animation-delay: 0.3s; }
.delay-400 { animation-delay: 0.4s; }
.delay-500 { animation-delay: 0.5s; }
.delay-600 { animation-delay: 0.6s; }
`

const toastScript = `
(function () {
	var t = document.getElementById('toast');
	if (t) { setTimeout(function () { t.remove(); }, 4000); }
})();
`
