package referral_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ReferEarn/internal/referral"
)

// mockSender records every form it is asked to send.
type mockSender struct {
	sent  []referral.Form
	reply referral.Reply
	err   error
	// observed is filled with the modal's submitting flag during the call
	modal    *referral.Modal
	observed []bool
}

func (m *mockSender) Send(ctx context.Context, f referral.Form) (referral.Reply, error) {
	m.sent = append(m.sent, f)
	if m.modal != nil {
		m.observed = append(m.observed, m.modal.Submitting())
	}
	return m.reply, m.err
}

func TestNext_Order(t *testing.T) {
	want := []referral.Field{
		referral.FieldRefreeEmail,
		referral.FieldReferedName,
		referral.FieldReferedEmail,
		referral.FieldCourse,
	}
	field := referral.FieldRefreeName
	for _, w := range want {
		next, ok := referral.Next(field)
		require.True(t, ok)
		assert.Equal(t, w, next)
		field = next
	}
	_, ok := referral.Next(referral.FieldCourse)
	assert.False(t, ok)
}

func TestModal_FocusFollowsFirstInvalidField(t *testing.T) {
	form := validForm()
	form.RefreeEmail = "nope"
	form.ReferedName = ""
	m := referral.NewModal(&mockSender{}, form)
	m.Open()
	assert.Equal(t, referral.Field(""), m.Focus())

	m.Submit(context.Background())
	assert.Equal(t, referral.FieldRefreeEmail, m.Focus())

	m.Update(referral.FieldRefreeEmail, "alice@example.com")
	m.Submit(context.Background())
	assert.Equal(t, referral.FieldReferedName, m.Focus())
}

func TestModal_UpdateReplacesOneField(t *testing.T) {
	m := referral.NewModal(&mockSender{}, referral.NewForm())
	m.Update(referral.FieldRefreeName, "Alice")
	m.Update(referral.FieldCourse, string(referral.CloudComputing))
	m.Update(referral.FieldCourse, "Underwater Basket Weaving")

	form := m.Form()
	assert.Equal(t, "Alice", form.RefreeName)
	assert.Empty(t, form.ReferedName)
	assert.Equal(t, referral.CloudComputing, form.Course)
}

func TestModal_SubmitInvalidMakesNoCall(t *testing.T) {
	sender := &mockSender{reply: referral.Reply{Status: referral.StatusCreated}}
	form := validForm()
	form.RefreeName = ""
	m := referral.NewModal(sender, form)
	m.Open()

	res := m.Submit(context.Background())
	assert.False(t, res.Sent)
	assert.Nil(t, res.Notice)
	assert.Equal(t, referral.MsgYourNameRequired, res.Errors.RefreeName)
	assert.Equal(t, res.Errors, m.Errors())
	assert.Empty(t, sender.sent)
	assert.True(t, m.IsOpen())
}

func TestModal_SubmitSuccessClosesModal(t *testing.T) {
	sender := &mockSender{reply: referral.Reply{Status: referral.StatusCreated}}
	m := referral.NewModal(sender, validForm())
	sender.modal = m
	m.Open()

	res := m.Submit(context.Background())
	require.Len(t, sender.sent, 1)
	assert.Equal(t, validForm(), sender.sent[0])
	assert.Equal(t, []bool{true}, sender.observed)
	assert.True(t, res.Sent)
	assert.NoError(t, res.Err)
	require.NotNil(t, res.Notice)
	assert.Equal(t, referral.NotifySuccess, res.Notice.Kind)
	assert.Equal(t, referral.MsgSent, res.Notice.Message)
	assert.False(t, m.IsOpen())
	assert.False(t, m.Submitting())
	// the draft is still there for the next time the modal opens
	assert.Equal(t, validForm(), m.Form())
}

func TestModal_SubmitRejectedKeepsModalOpen(t *testing.T) {
	sender := &mockSender{err: errors.New("connection refused")}
	m := referral.NewModal(sender, validForm())
	sender.modal = m
	m.Open()

	res := m.Submit(context.Background())
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, []bool{true}, sender.observed)
	assert.EqualError(t, res.Err, "connection refused")
	require.NotNil(t, res.Notice)
	assert.Equal(t, referral.NotifyError, res.Notice.Kind)
	assert.Equal(t, referral.MsgSendFailed, res.Notice.Message)
	assert.True(t, m.IsOpen())
	assert.False(t, m.Submitting())
	assert.Equal(t, validForm(), m.Form())
}

func TestModal_SubmitOtherBodyStatusFails(t *testing.T) {
	sender := &mockSender{reply: referral.Reply{Status: 200}}
	m := referral.NewModal(sender, validForm())
	m.Open()

	res := m.Submit(context.Background())
	assert.ErrorIs(t, res.Err, referral.ErrNotCreated)
	require.NotNil(t, res.Notice)
	assert.Equal(t, referral.NotifyError, res.Notice.Kind)
	assert.True(t, m.IsOpen())
	assert.False(t, m.Submitting())
}

func TestModal_ResubmitAfterFailureSendsAgain(t *testing.T) {
	sender := &mockSender{err: errors.New("boom")}
	m := referral.NewModal(sender, validForm())
	m.Open()

	m.Submit(context.Background())
	sender.err = nil
	sender.reply = referral.Reply{Status: referral.StatusCreated}
	res := m.Submit(context.Background())

	assert.Len(t, sender.sent, 2)
	assert.NoError(t, res.Err)
	assert.False(t, m.IsOpen())
}

func TestModal_CloseKeepsDraft(t *testing.T) {
	m := referral.NewModal(&mockSender{}, referral.NewForm())
	m.Open()
	m.Update(referral.FieldReferedName, "Bob")
	m.Close()
	m.Open()
	assert.Equal(t, "Bob", m.Form().ReferedName)
}
