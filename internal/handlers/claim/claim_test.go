package claim_test

import (
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"ReferEarn/internal/handlers/claim"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  claim.Params
	}{
		{"both", "referrer=Alice&course=Data+Science", claim.Params{Referrer: "Alice", Course: "Data Science"}},
		{"missing", "", claim.Params{}},
		{"first value wins", "referrer=A&referrer=B", claim.Params{Referrer: "A"}},
		{"escaped", "course=UI%2FUX+Design", claim.Params{Course: "UI/UX Design"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, claim.ParseParams(q))
		})
	}
}

func TestHandler_ShowsReferrer(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/claim?referrer=Alice&course=Cloud+Computing", nil)

	claim.New(zap.NewNop()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), html.EscapeString("You've been referred by Alice for the Cloud Computing course"))
	assert.Contains(t, rec.Body.String(), "Claim 20% Discount")
	assert.Contains(t, rec.Body.String(), `class="text-center hidden"`)
}

func TestHandler_EscapesInput(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/claim?referrer=%3Cscript%3Ealert(1)%3C%2Fscript%3E", nil)

	claim.New(zap.NewNop()).ServeHTTP(rec, req)

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

func TestHandler_Claimed(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/claim?referrer=Alice&course=Data+Science&claimed=1", nil)

	claim.New(zap.NewNop()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bonus Claimed Successfully!")
	assert.NotContains(t, rec.Body.String(), `class="text-center hidden"`)
}
