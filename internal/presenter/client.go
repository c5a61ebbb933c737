// internal/presenter/client.go
package presenter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMalformed means the server answered but the payload lacked the
// expected fields. Callers treat it like a transport failure.
var ErrMalformed = errors.New("presenter: malformed response")

// StatusError is returned when the server answers with an unexpected
// HTTP status. The code is passed through verbatim.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("presenter: %s: unexpected status %d", e.Op, e.Status)
}

// Code exposes the raw HTTP status.
func (e *StatusError) Code() int { return e.Status }

// Action is a one-shot trigger endpoint.
type Action int

const (
	ActionNext Action = iota
	ActionPrevious
	ActionHome
)

// Path returns the endpoint path for the action.
func (a Action) Path() string {
	switch a {
	case ActionNext:
		return "/trigger/next"
	case ActionPrevious:
		return "/trigger/previous"
	case ActionHome:
		return "/presentation/active/0/trigger"
	default:
		return ""
	}
}

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionHome:
		return "home"
	default:
		return "unknown"
	}
}

// Slide is the server's view of the active presentation.
// Index is 0-based, as reported by the server.
type Slide struct {
	Index int
	Name  string
}

// Config is minimal transport config.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the presentation-control HTTP API.
// Every request is single-shot: no keep-alive, no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. No connection is made.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("presenter: base url required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 1500 * time.Millisecond
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}, nil
}

// BaseURL returns the server root the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

const (
	statusSlideOK   = http.StatusOK
	statusTriggerOK = http.StatusNoContent

	// maxSlideBody caps the slide index payload; real answers are a few hundred bytes.
	maxSlideBody = 64 << 10
)

type slideIndexBody struct {
	PresentationIndex *struct {
		Index          *int `json:"index"`
		PresentationID *struct {
			Name *string `json:"name"`
		} `json:"presentation_id"`
	} `json:"presentation_index"`
}

// SlideIndex fetches the active slide.
func (c *Client) SlideIndex(ctx context.Context) (Slide, error) {
	resp, err := c.get(ctx, "/presentation/slide_index")
	if err != nil {
		return Slide{}, fmt.Errorf("presenter: slide index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != statusSlideOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Slide{}, &StatusError{Op: "slide index", Status: resp.StatusCode}
	}

	return decodeSlide(io.LimitReader(resp.Body, maxSlideBody))
}

// Trigger fires a one-shot action. Only 204 counts as success.
func (c *Client) Trigger(ctx context.Context, a Action) error {
	path := a.Path()
	if path == "" {
		return fmt.Errorf("presenter: unsupported action %d", int(a))
	}

	resp, err := c.get(ctx, path)
	if err != nil {
		return fmt.Errorf("presenter: trigger %s: %w", a, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != statusTriggerOK {
		return &StatusError{Op: "trigger " + a.String(), Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Close = true
	return c.http.Do(req)
}

func decodeSlide(r io.Reader) (Slide, error) {
	var body slideIndexBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return Slide{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	pi := body.PresentationIndex
	if pi == nil || pi.Index == nil || pi.PresentationID == nil || pi.PresentationID.Name == nil {
		return Slide{}, ErrMalformed
	}

	return Slide{
		Index: *pi.Index,
		Name:  *pi.PresentationID.Name,
	}, nil
}
