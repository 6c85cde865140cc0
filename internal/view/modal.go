package view

import (
	"github.com/maragudk/gomponents-heroicons/v2/outline"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"ReferEarn/internal/referral"
)

const (
	SubmitPath = "/referrals"
	ClosePath  = "/referrals/close"
)

// ModalProps is everything the referral dialog needs to render.
type ModalProps struct {
	Open   bool
	Form   referral.Form
	Errors referral.Errors
	Focus  referral.Field
}

type input struct {
	field referral.Field
	label string
	kind  string
}

var inputs = []input{
	{referral.FieldRefreeName, "Your Name", "text"},
	{referral.FieldRefreeEmail, "Your Email", "email"},
	{referral.FieldReferedName, "Friend's Name", "text"},
	{referral.FieldReferedEmail, "Friend's Email", "email"},
}

// ReferralModal renders nothing when the dialog is closed.
func ReferralModal(p ModalProps) Node {
	if !p.Open {
		return nil
	}
	return Div(
		ID("referral-modal"),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "referral-title"),
		Data("backdrop", ""),
		Class("fixed inset-0 bg-black/50 backdrop-blur-sm flex items-center justify-center p-4 z-50"),
		Div(
			Class("bg-white rounded-2xl p-6 w-full max-w-md animate-fade-in-up"),
			Div(
				Class("flex items-center justify-between mb-4"),
				H2(ID("referral-title"), Class("text-2xl font-bold text-gray-800"), Text("Refer a Friend")),
				Span(Class("h-6 w-6 text-gray-400"), outline.UserPlus()),
			),
			Form(
				ID("referral-form"),
				Method("post"),
				Action(SubmitPath),
				Attr("novalidate"),
				Class("space-y-4"),
				Map(inputs, func(in input) Node { return textField(in, p) }),
				courseSelect(p.Form.Course, p.Focus == referral.FieldCourse),
				Div(
					Class("flex gap-4 pt-4"),
					Button(
						Type("submit"),
						Attr("formaction", ClosePath),
						Attr("formnovalidate"),
						Data("cancel", ""),
						Class("flex-1 px-4 py-2 border border-gray-300 rounded-lg text-gray-700 hover:bg-gray-50 transition-colors disabled:opacity-50"),
						Text("Cancel"),
					),
					Button(
						Type("submit"),
						Data("send", ""),
						Class("flex-1 px-4 py-2 bg-gradient-to-r from-purple-600 to-pink-600 text-white rounded-lg hover:opacity-90 transition-opacity disabled:opacity-50"),
						Span(Data("idle", ""), Text("Send Invitation")),
						Span(
							Data("busy", ""),
							Class("hidden items-center justify-center"),
							Raw(spinnerSVG),
							Text("Sending..."),
						),
					),
				),
			),
		),
		Script(Raw(modalScript)),
	)
}

func textField(in input, p ModalProps) Node {
	msg := p.Errors.For(in.field)
	id := string(in.field)
	next, _ := referral.Next(in.field)
	return Div(
		Label(
			For(id),
			Class("block text-sm font-medium text-gray-700 mb-1"),
			Text(in.label),
		),
		Input(
			ID(id),
			Name(id),
			Type(in.kind),
			Value(p.Form.Value(in.field)),
			Data("next", string(next)),
			If(p.Focus == in.field, Attr("autofocus")),
			If(msg != "", Aria("invalid", "true")),
			Classes{
				"w-full px-4 py-2 border rounded-lg focus:ring-2 focus:ring-purple-500 focus:border-transparent": true,
				"border-red-500": msg != "",
			},
		),
		If(msg != "", P(Class("text-red-500 text-sm mt-1"), Data("error", id), Text(msg))),
	)
}

func courseSelect(selected referral.Course, focus bool) Node {
	id := string(referral.FieldCourse)
	return Div(
		Label(
			For(id),
			Class("block text-sm font-medium text-gray-700 mb-1"),
			Text("Select Course"),
		),
		Select(
			ID(id),
			Name(id),
			If(focus, Attr("autofocus")),
			Class("w-full px-4 py-2 border rounded-lg focus:ring-2 focus:ring-purple-500 focus:border-transparent"),
			Map(referral.Courses, func(c referral.Course) Node {
				return Option(Value(string(c)), If(c == selected, Selected()), Text(string(c)))
			}),
		),
	)
}

const spinnerSVG = `<svg class="animate-spin h-5 w-5 mr-3" viewBox="0 0 24 24"><circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4" fill="none"></circle><path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"></path></svg>`

// Enter moves to the next field instead of submitting. Clicking the backdrop
// closes the dialog through the close endpoint so the draft is kept. While a
// submission is in flight both buttons are disabled.
const modalScript = `
(function () {
	var modal = document.getElementById('referral-modal');
	var form = document.getElementById('referral-form');
	if (!modal || !form) { return; }
	var cancel = form.querySelector('[data-cancel]');

	form.querySelectorAll('[data-next]').forEach(function (el) {
		el.addEventListener('keydown', function (e) {
			if (e.key !== 'Enter') { return; }
			e.preventDefault();
			var next = document.getElementById(el.dataset.next);
			if (next) { next.focus(); }
		});
	});

	modal.addEventListener('click', function (e) {
		if (e.target === modal) { form.requestSubmit(cancel); }
	});

	form.addEventListener('submit', function (e) {
		if (e.submitter && e.submitter.hasAttribute('data-cancel')) { return; }
		form.querySelectorAll('button').forEach(function (b) { b.disabled = true; });
		form.querySelector('[data-idle]').classList.add('hidden');
		var busy = form.querySelector('[data-busy]');
		busy.classList.remove('hidden');
		busy.classList.add('flex');
	});
})();
`
