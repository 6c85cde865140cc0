package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"ReferEarn/internal/referral"
)

// DetailsPath is where referrals are posted on the backend.
const DetailsPath = "/api/v1/details"

// wireReply is the body as sent. status is a JSON number, so 201 and 201.0 are the same value.
type wireReply struct {
	Status  float64 `json:"status"`
	Message string  `json:"message"`
}

// Client posts referral forms to the referrals backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout means the call is
// only bounded by the transport.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// URL returns the full details endpoint.
func (c *Client) URL() string {
	return c.BaseURL + DetailsPath
}

// Send posts f as JSON and decodes the reply body. Any non-2xx response is an error;
// deciding whether a 2xx body means success is left to the caller.
func (c *Client) Send(ctx context.Context, f referral.Form) (referral.Reply, error) {
	var reply referral.Reply

	payload, err := json.Marshal(f)
	if err != nil {
		return reply, errors.Wrap(err, "failed to marshal referral")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return reply, errors.Wrap(err, "failed to create HTTP request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return reply, errors.Wrap(err, "failed to send referral to backend")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return reply, errors.Errorf("backend returned non-2xx status: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var body wireReply
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return reply, errors.Wrap(err, "failed to decode backend reply")
	}
	reply.Message = body.Message
	// a fractional status matches no status code and is left at zero
	if body.Status == math.Trunc(body.Status) && math.Abs(body.Status) <= math.MaxInt32 {
		reply.Status = int(body.Status)
	}
	return reply, nil
}
