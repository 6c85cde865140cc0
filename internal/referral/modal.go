package referral

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// StatusCreated is the value the backend puts in the reply body's status field
// when it accepted a referral. The transport status code is not consulted.
const StatusCreated = 201

const (
	MsgSent       = "Referral sent successfully!"
	MsgSendFailed = "Failed to send referral. Please try again."
)

// Reply is the decoded body returned by the referrals backend.
type Reply struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

// Sender delivers a referral to the backend.
type Sender interface {
	Send(ctx context.Context, f Form) (Reply, error)
}

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient message shown to the visitor once.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// ErrNotCreated is reported when the backend answered without status 201 in its body.
var ErrNotCreated = errors.New("referral not created")

// Result describes what one Submit did.
type Result struct {
	// Sent is true when the backend was called.
	Sent   bool
	Errors Errors
	Notice *Notification
	// Err is the underlying failure, kept for diagnostics only.
	Err      error
	Duration time.Duration
}

// Modal is the referral dialog: its visibility, the form draft, the last
// validation errors and whether a submission is in flight.
type Modal struct {
	mu         sync.Mutex
	sender     Sender
	open       bool
	form       Form
	errs       Errors
	focus      Field
	submitting bool
}

// NewModal returns a closed modal around form.
func NewModal(sender Sender, form Form) *Modal {
	if form.Course == "" {
		form.Course = DefaultCourse
	}
	return &Modal{sender: sender, form: form}
}

func (m *Modal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
}

// Close hides the modal. The draft and errors are kept.
func (m *Modal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
}

func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Modal) Update(field Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = m.form.With(field, value)
}

// Focus is the field that should receive focus when the dialog renders:
// the first invalid one after a rejected submit, otherwise none.
func (m *Modal) Focus() Field {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focus
}

func (m *Modal) Form() Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

func (m *Modal) Errors() Errors {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errs
}

func (m *Modal) Submitting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitting
}

// Submit validates the draft and, when it is valid, sends it once.
// On success the modal closes; on failure it stays open with the draft intact.
func (m *Modal) Submit(ctx context.Context) Result {
	m.mu.Lock()
	form := m.form
	m.errs = Validate(form)
	m.focus, _ = m.errs.First()
	if !m.errs.Valid() {
		errs := m.errs
		m.mu.Unlock()
		return Result{Errors: errs}
	}
	m.submitting = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.submitting = false
		m.mu.Unlock()
	}()

	start := time.Now()
	reply, err := m.sender.Send(ctx, form)
	res := Result{Sent: true, Duration: time.Since(start)}

	if err == nil && reply.Status != StatusCreated {
		err = fmt.Errorf("%w: body status %d", ErrNotCreated, reply.Status)
	}
	if err != nil {
		res.Err = err
		res.Notice = &Notification{Kind: NotifyError, Message: MsgSendFailed}
		return res
	}

	res.Notice = &Notification{Kind: NotifySuccess, Message: MsgSent}
	m.Close()
	return res
}
