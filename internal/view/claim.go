package view

import (
	"encoding/json"
	"net/url"

	"github.com/maragudk/gomponents-heroicons/v2/outline"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ClaimProps is the read-only input of the claim page.
type ClaimProps struct {
	Referrer string
	Course   string
	Claimed  bool
}

// ConfettiOptions are handed to canvas-confetti when a bonus is claimed.
type ConfettiOptions struct {
	ParticleCount int    `json:"particleCount"`
	Spread        int    `json:"spread"`
	Origin        Origin `json:"origin"`
}

type Origin struct {
	Y float64 `json:"y"`
}

var DefaultConfetti = ConfettiOptions{ParticleCount: 100, Spread: 70, Origin: Origin{Y: 0.6}}

// ClaimHref links to the claim page with the given parameters.
func ClaimHref(referrer, course string, claimed bool) string {
	q := url.Values{}
	q.Set("referrer", referrer)
	q.Set("course", course)
	if claimed {
		q.Set("claimed", "1")
	}
	return "/claim?" + q.Encode()
}

func ClaimPage(p ClaimProps) Node {
	return page("Claim Your Bonus", nil,
		Div(
			Class("min-h-screen bg-gradient-to-br from-purple-600 to-pink-600 flex items-center justify-center p-4"),
			Div(
				Class("bg-white rounded-2xl p-8 max-w-md w-full shadow-xl animate-fade-in-up"),
				Div(
					Class("w-24 h-24 bg-purple-100 rounded-full mx-auto mb-6 flex items-center justify-center animate-pop-in delay-200"),
					Span(Class("text-4xl"), Text("🎁")),
				),
				H1(
					Class("text-3xl font-bold text-center text-gray-800 mb-4 animate-fade-in-up delay-300"),
					Text("Claim Your Bonus!"),
				),
				P(
					ID("claim-message"),
					Class("text-center text-gray-600 mb-8 animate-fade-in-up delay-400"),
					Text("You've been referred by "+p.Referrer+" for the "+p.Course+" course"),
				),
				Div(
					ID("claim-button"),
					If(p.Claimed, Class("hidden")),
					A(
						Href(ClaimHref(p.Referrer, p.Course, true)),
						Data("claim", ""),
						Role("button"),
						Class("block text-center w-full py-3 px-6 bg-gradient-to-r from-purple-600 to-pink-600 text-white rounded-lg font-semibold shadow-lg hover:opacity-90 hover:scale-105 active:scale-95 transition-all"),
						Text("Claim 20% Discount"),
					),
				),
				Div(
					ID("claim-done"),
					claimedClass(p.Claimed),
					Div(Class("h-8 w-8 mx-auto mb-4 text-green-600"), outline.Sparkles()),
					P(Class("text-green-600 font-semibold"), Text("Bonus Claimed Successfully!")),
					P(Class("text-sm text-gray-500 mt-2"), Text("Check your email for the discount code")),
				),
				Div(
					Class("mt-6 text-center animate-fade-in-up delay-500"),
					P(Class("text-sm text-gray-500"), Text("Valid for next 48 hours")),
				),
			),
		),
		Script(Src("https://cdn.jsdelivr.net/npm/canvas-confetti@1.9.3/dist/confetti.browser.min.js")),
		Script(Raw(claimScript(DefaultConfetti))),
	)
}

// claimedClass hides the confirmation until the bonus is claimed.
func claimedClass(claimed bool) Node {
	if claimed {
		return Class("text-center animate-fade-in-up")
	}
	return Class("text-center hidden")
}

// claimScript swaps the button for the confirmation without reloading and fires
// the confetti once. Without script the link renders the claimed page instead.
func claimScript(opts ConfettiOptions) string {
	raw, _ := json.Marshal(opts)
	return `
(function () {
	var link = document.querySelector('[data-claim]');
	if (!link) { return; }
	var fired = false;
	link.addEventListener('click', function (e) {
		e.preventDefault();
		if (fired) { return; }
		fired = true;
		document.getElementById('claim-button').classList.add('hidden');
		var done = document.getElementById('claim-done');
		done.classList.remove('hidden');
		done.classList.add('animate-fade-in-up');
		if (window.confetti) { window.confetti(` + string(raw) + `); }
	});
})();
`
}
