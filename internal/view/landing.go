package view

import (
	"fmt"

	"github.com/maragudk/gomponents-heroicons/v2/outline"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"ReferEarn/internal/content"
	"ReferEarn/internal/referral"
)

// OpenModalHref opens the referral dialog on the landing page.
const OpenModalHref = "/?modal=open"

// LandingPage wraps the prerendered sections with the call to action and the dialog.
func LandingPage(sections Node, c content.Landing, modal ModalProps, flash *referral.Notification) Node {
	return page("Home", flash,
		Div(
			Class("min-h-screen bg-gradient-to-br from-purple-900 to-indigo-800"),
			Main(
				Class("container mx-auto px-4 py-16"),
				sections,
				callToAction(c),
			),
			ReferralModal(modal),
		),
	)
}

// Sections renders the static part of the landing page.
func Sections(c content.Landing) Node {
	return Group([]Node{
		hero(c),
		features(c.Features),
		stats(c.Stats),
		howItWorks(c.Steps),
		popularCourses(c.Courses),
		community(c.CommunityTags, c.CommunityStats),
	})
}

func hero(c content.Landing) Node {
	return Div(
		Class("text-center animate-fade-in-up"),
		H1(
			Class("text-6xl font-bold mb-6 bg-clip-text text-transparent bg-gradient-to-r from-purple-400 to-pink-400"),
			Text(c.Title),
		),
		P(Class("text-2xl text-purple-200 mb-8 max-w-2xl mx-auto"), Text(c.Tagline)),
	)
}

func features(items []content.Feature) Node {
	return Div(
		Class("grid md:grid-cols-3 gap-8 mb-16 animate-fade-in-up delay-300"),
		Group(mapIndexed(items, func(i int, f content.Feature) Node {
			return Div(
				Class("bg-gradient-to-r "+f.Gradient+" bg-opacity-20 backdrop-blur-lg rounded-xl p-8 text-center transition-all duration-300 hover:scale-105 hover:rotate-2 hover:shadow-2xl"),
				Div(
					Class("text-5xl mb-4 animate-pop-in"),
					Style(fmt.Sprintf("animation-delay: %.1fs", 0.5+float64(i)*0.1)),
					Text(f.Icon),
				),
				H3(Class("text-2xl font-semibold text-white mb-3"), Text(f.Title)),
				P(Class("text-purple-200 text-lg"), Text(f.Description)),
			)
		})),
	)
}

func stats(items []content.Stat) Node {
	return Div(
		Class("grid md:grid-cols-3 gap-8 mb-16 animate-fade-in-up delay-600"),
		Map(items, func(s content.Stat) Node {
			return Div(
				Class("text-center transition-transform hover:scale-110"),
				H2(Class("text-4xl font-bold text-white mb-2"), Text(s.Number)),
				P(Class("text-purple-300"), Text(s.Label)),
			)
		}),
	)
}

func howItWorks(steps []content.Step) Node {
	return Section(
		Class("py-16 bg-gradient-to-r from-purple-900/50 to-indigo-900/50 backdrop-blur-lg rounded-2xl mb-16"),
		H2(Class("text-4xl font-bold text-center text-white mb-12"), Text("How It Works")),
		Div(
			Class("grid md:grid-cols-4 gap-8 px-4"),
			Map(steps, func(s content.Step) Node {
				return Div(
					Class("text-center relative transition-transform hover:-translate-y-2"),
					Div(Class("text-6xl mb-4"), Text(s.Icon)),
					Div(Class("text-3xl font-bold text-purple-400 mb-2"), Text("Step "+s.Number)),
					H3(Class("text-xl font-semibold text-white mb-2"), Text(s.Title)),
					P(Class("text-purple-200"), Text(s.Description)),
				)
			}),
		),
	)
}

func popularCourses(courses []content.Course) Node {
	return Section(
		Class("py-16 mb-16"),
		H2(Class("text-4xl font-bold text-center text-white mb-12"), Text("Popular Courses")),
		Div(
			Class("grid md:grid-cols-3 gap-8"),
			Map(courses, func(c content.Course) Node {
				return Div(
					Class("bg-gradient-to-r "+c.Gradient+" rounded-2xl p-6 text-white transition-transform hover:scale-105"),
					H3(Class("text-2xl font-bold mb-4"), Text(c.Title)),
					Div(Class("text-3xl font-bold mb-2"), Text(c.Price)),
					Div(Class("text-sm mb-4"), Text(c.Duration)),
					Ul(
						Class("space-y-2"),
						Map(c.Features, func(f string) Node {
							return Li(
								Class("flex items-center"),
								Span(Class("h-4 w-4 mr-2"), outline.Check()),
								Text(f),
							)
						}),
					),
				)
			}),
		),
	)
}

func community(tags []string, numbers []content.Stat) Node {
	return Section(
		Class("py-16 bg-gradient-to-r from-purple-900/30 to-indigo-900/30 backdrop-blur-lg rounded-2xl mb-16"),
		Div(
			Class("px-4"),
			H2(Class("text-4xl font-bold text-center text-white mb-12"), Text("Join Our Community")),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),
				Div(
					Class("space-y-6"),
					H3(Class("text-3xl font-bold text-white"), Text("Connect. Learn. Grow.")),
					P(
						Class("text-purple-200 text-lg"),
						Text("Join thousands of learners in our vibrant community. Share experiences, get help, and grow together."),
					),
					Div(
						Class("flex flex-wrap gap-4"),
						Map(tags, func(tag string) Node {
							return Span(Class("px-4 py-2 bg-white/10 rounded-full text-purple-200"), Text(tag))
						}),
					),
				),
				Div(
					Class("grid grid-cols-2 gap-4"),
					Map(numbers, func(s content.Stat) Node {
						return Div(
							Class("bg-white/5 rounded-xl p-6 text-center"),
							Div(Class("text-3xl font-bold text-white mb-2"), Text(s.Number)),
							Div(Class("text-purple-300"), Text(s.Label)),
						)
					}),
				),
			),
		),
	)
}

func callToAction(c content.Landing) Node {
	return Div(
		Class("text-center py-12"),
		A(
			ID("start-referring"),
			Href(OpenModalHref),
			Class("inline-block bg-gradient-to-r from-amber-500 to-pink-500 text-white font-bold py-6 px-12 rounded-full text-2xl shadow-lg hover:shadow-2xl transition-all duration-300 transform hover:-translate-y-1"),
			Text(c.CallToAction),
		),
		P(Class("text-purple-300 mt-4 text-lg"), Text(c.CallToActionSub)),
	)
}

func mapIndexed[T any](ts []T, cb func(int, T) Node) []Node {
	nodes := make([]Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return nodes
}
