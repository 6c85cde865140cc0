package referral

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	MsgFriendNameRequired  = "Friend's name is required"
	MsgFriendEmailRequired = "Friend's email is required"
	MsgYourNameRequired    = "Your name is required"
	MsgYourEmailRequired   = "Your email is required"
	MsgInvalidEmail        = "Please enter a valid email"
	MsgSameEmail           = "Referral email cannot be the same as your email"
)

// emailPattern is "non-space @ non-space . non-space", where space includes the
// Unicode separators, vertical tab and the byte order mark.
var emailPattern = regexp.MustCompile(`[^\s\x0B\p{Z}\x{FEFF}]+@[^\s\x0B\p{Z}\x{FEFF}]+\.[^\s\x0B\p{Z}\x{FEFF}]+`)

// Errors holds at most one message per text field. An empty string means the field is fine.
type Errors struct {
	ReferedName  string `json:"referedName,omitempty"`
	ReferedEmail string `json:"referedEmail,omitempty"`
	RefreeName   string `json:"refreeName,omitempty"`
	RefreeEmail  string `json:"refreeEmail,omitempty"`
}

func (e Errors) Valid() bool {
	return e == Errors{}
}

// For returns the message attached to field, if any.
func (e Errors) For(field Field) string {
	switch field {
	case FieldReferedName:
		return e.ReferedName
	case FieldReferedEmail:
		return e.ReferedEmail
	case FieldRefreeName:
		return e.RefreeName
	case FieldRefreeEmail:
		return e.RefreeEmail
	}
	return ""
}

// First returns the earliest failing field in form order.
func (e Errors) First() (Field, bool) {
	for _, f := range Fields {
		if e.For(f) != "" {
			return f, true
		}
	}
	return "", false
}

// Validate checks f and returns a fresh set of errors.
//
// The duplicate-address check runs last and overwrites whatever was found for the
// friend's email, so two empty addresses report the duplicate message.
func Validate(f Form) Errors {
	var errs Errors

	if blank(f.ReferedName) {
		errs.ReferedName = MsgFriendNameRequired
	}
	errs.ReferedEmail = checkEmail(f.ReferedEmail, MsgFriendEmailRequired)

	if blank(f.RefreeName) {
		errs.RefreeName = MsgYourNameRequired
	}
	errs.RefreeEmail = checkEmail(f.RefreeEmail, MsgYourEmailRequired)

	if f.ReferedEmail == f.RefreeEmail {
		errs.ReferedEmail = MsgSameEmail
	}

	return errs
}

func checkEmail(email, required string) string {
	if blank(email) {
		return required
	}
	if !emailPattern.MatchString(email) {
		return MsgInvalidEmail
	}
	return ""
}

func blank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
