package landing

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"ReferEarn/internal/content"
	"ReferEarn/internal/db"
	"ReferEarn/internal/handlers"
	"ReferEarn/internal/middleware"
	"ReferEarn/internal/referral"
	"ReferEarn/internal/store"
	"ReferEarn/internal/view"
)

// Deps are the collaborators of the landing page.
type Deps struct {
	Log      *zap.Logger
	Sender   referral.Sender
	Sessions store.Store
	Journal  db.Journal
	Content  content.Landing
	// CookieName identifies the visitor whose draft is kept in Sessions.
	CookieName string
	CookieTTL  time.Duration
}

// Handler serves the landing page and the referral dialog's form posts.
type Handler struct {
	Deps
	sections g.Node
	mux      *http.ServeMux
}

// New prepares the static sections once so later requests only render the dialog.
func New(deps Deps) (*Handler, error) {
	if deps.Journal == nil {
		deps.Journal = db.Nop{}
	}
	sections, err := view.Prerender(view.Sections(deps.Content))
	if err != nil {
		return nil, err
	}

	h := &Handler{Deps: deps, sections: sections, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /{$}", h.show)
	h.mux.HandleFunc("POST "+view.SubmitPath, h.submit)
	h.mux.HandleFunc("POST "+view.ClosePath, h.close)
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// show renders the page. ?modal=open opens the dialog with the visitor's last draft.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id := h.visitor(w, r)
	sess := h.load(r.Context(), id)

	var flash *referral.Notification
	if sess.Flash != nil {
		popped, err := h.update(r.Context(), id, func(s *store.Session) {
			flash = s.Flash
			s.Flash = nil
		})
		if err == nil {
			sess = popped
		} else {
			flash = sess.Flash
		}
	}

	props := view.ModalProps{
		Open:   r.URL.Query().Get("modal") == "open",
		Form:   sess.Form,
		Errors: sess.Errors,
	}
	h.render(w, r, props, flash, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	id := h.visitor(w, r)

	var modal *referral.Modal
	draft := func(s *store.Session) {
		modal = referral.NewModal(h.Sender, s.Form)
		modal.Open()
		bind(modal, r)
		s.Form = modal.Form()
	}
	if _, err := h.update(r.Context(), id, draft); err != nil {
		sess := store.NewSession()
		draft(&sess)
	}

	// the backend call outlives a visitor who navigates away
	res := modal.Submit(context.WithoutCancel(r.Context()))

	// only the outcome is written back; the draft may have changed meanwhile
	outcome := func(s *store.Session) {
		s.Errors = modal.Errors()
		if res.Sent && res.Err == nil {
			s.Flash = res.Notice
		}
	}

	if !res.Sent {
		_, _ = h.update(r.Context(), id, outcome)
		props := view.ModalProps{Open: true, Form: modal.Form(), Errors: modal.Errors(), Focus: modal.Focus()}
		h.render(w, r, props, nil, http.StatusUnprocessableEntity)
		return
	}

	h.record(r, modal.Form(), res)
	_, _ = h.update(context.WithoutCancel(r.Context()), id, outcome)

	if res.Err != nil {
		h.render(w, r, view.ModalProps{Open: modal.IsOpen(), Form: modal.Form()}, res.Notice, http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// close keeps whatever was typed so reopening the dialog shows it again.
func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	id := h.visitor(w, r)

	_, _ = h.update(r.Context(), id, func(s *store.Session) {
		modal := referral.NewModal(h.Sender, s.Form)
		bind(modal, r)
		modal.Close()
		s.Form = modal.Form()
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func bind(m *referral.Modal, r *http.Request) {
	for _, f := range referral.Fields {
		if values, ok := r.PostForm[string(f)]; ok && len(values) > 0 {
			m.Update(f, values[0])
		}
	}
}

func (h *Handler) record(r *http.Request, f referral.Form, res referral.Result) {
	requestID := middleware.RequestIDFrom(r.Context())
	attempt := db.Attempt{
		RequestID: requestID,
		Course:    string(f.Course),
		Outcome:   db.OutcomeSent,
		Duration:  res.Duration,
	}
	if res.Err != nil {
		attempt.Outcome = db.OutcomeFailed
		attempt.Error = res.Err.Error()
		h.Log.Error("failed to send referral",
			zap.String("request_id", requestID),
			zap.String("course", string(f.Course)),
			zap.Duration("duration", res.Duration),
			zap.Error(res.Err),
		)
	} else {
		h.Log.Info("referral sent",
			zap.String("request_id", requestID),
			zap.String("course", string(f.Course)),
			zap.Duration("duration", res.Duration),
		)
	}
	if err := h.Journal.RecordAttempt(context.WithoutCancel(r.Context()), attempt); err != nil {
		h.Log.Warn("failed to journal referral attempt", zap.String("request_id", requestID), zap.Error(err))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, props view.ModalProps, flash *referral.Notification, status int) {
	page := view.LandingPage(h.sections, h.Content, props, flash)
	handlers.Render(w, r, h.Log, page, status)
}

// visitor returns the id in the visitor cookie, issuing a new one when missing.
func (h *Handler) visitor(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(h.CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (h *Handler) load(ctx context.Context, id string) store.Session {
	sess, err := h.Sessions.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.NewSession()
	}
	if err != nil {
		h.Log.Warn("failed to load session", zap.String("request_id", middleware.RequestIDFrom(ctx)), zap.Error(err))
		return store.NewSession()
	}
	return sess
}

func (h *Handler) update(ctx context.Context, id string, fn store.UpdateFunc) (store.Session, error) {
	sess, err := h.Sessions.Update(ctx, id, fn)
	if err != nil {
		h.Log.Warn("failed to update session", zap.String("request_id", middleware.RequestIDFrom(ctx)), zap.Error(err))
	}
	return sess, err
}
