package view

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Fallback is shown while a page is still being prepared.
func Fallback() Node {
	return page("Loading", nil,
		Div(
			ID("loading"),
			Class("min-h-screen flex items-center justify-center"),
			Div(
				Role("status"),
				Aria("label", "Loading"),
				Class("animate-spin rounded-full h-32 w-32 border-t-2 border-b-2 border-purple-500"),
			),
		),
	)
}
