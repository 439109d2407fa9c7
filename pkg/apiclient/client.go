package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/logger"
)

// Client talks to the upstream Strapi-style CMS. Responses are normalized: the
// caller either gets the payload bytes or an *Error describing what the
// upstream rejected.
type Client struct {
	baseURL    *url.URL
	cookieName string
	httpClient *http.Client
	tokens     TokenStore
	logg       *logger.Logger
}

func New(cfg config.UpstreamConfig, tokens TokenStore, logg *logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing upstream base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("upstream base url %q must be absolute", cfg.BaseURL)
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL:    base,
		cookieName: cfg.CookieName,
		httpClient: &http.Client{Timeout: cfg.Timeout, Jar: jar},
		tokens:     tokens,
		logg:       logg,
	}, nil
}

// Get issues a GET request. params become the query string.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, includeAuth bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, includeAuth, "")
}

// Post sends body as JSON.
func (c *Client) Post(ctx context.Context, endpoint string, body any, includeAuth bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, includeAuth, "")
}

// PostForm sends a pre-encoded multipart/form payload with the caller's
// content type instead of JSON.
func (c *Client) PostForm(ctx context.Context, endpoint string, form io.Reader, contentType string, includeAuth bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, form, includeAuth, contentType)
}

// Put sends body as JSON.
func (c *Client) Put(ctx context.Context, endpoint string, body any, includeAuth bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, includeAuth, "")
}

// Delete issues a DELETE request. A nil body sends no payload.
func (c *Client) Delete(ctx context.Context, endpoint string, body any, includeAuth bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, body, includeAuth, "")
}

// SetAuthToken persists the upstream token. An empty token clears it.
func (c *Client) SetAuthToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return c.tokens.ClearToken(ctx)
	}
	return c.tokens.SetToken(ctx, token)
}

// AuthToken returns the stored token, falling back to the upstream's auth
// cookie when the store is empty.
func (c *Client) AuthToken(ctx context.Context) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}
	if c.httpClient.Jar != nil && c.cookieName != "" {
		for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
			if cookie.Name == c.cookieName {
				return cookie.Value, nil
			}
		}
	}
	return "", nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body any, includeAuth bool, contentType string) (json.RawMessage, error) {
	target := c.requestURL(endpoint, params)

	var reader io.Reader
	switch payload := body.(type) {
	case nil:
	case io.Reader:
		reader = payload
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", method, err)
	}

	if reader != nil {
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		} else {
			req.Header.Set("Content-Type", "application/json")
		}
	} else if method != http.MethodGet && method != http.MethodDelete {
		req.Header.Set("Content-Type", "application/json")
	}

	if includeAuth {
		token, err := c.AuthToken(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.logg != nil {
		c.logg.Debug(c.logg.WithFields(ctx, map[string]any{
			"method": method,
			"url":    target,
		}), "upstream request")
	}

	// Transport failures are returned as-is so callers can tell them apart
	// from upstream rejections.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(ctx, resp)
}

func (c *Client) requestURL(endpoint string, params url.Values) string {
	target := c.baseURL.String() + "/" + strings.TrimLeft(endpoint, "/")
	if query := params.Encode(); query != "" {
		target += "?" + query
	}
	return target
}

func (c *Client) handleResponse(ctx context.Context, resp *http.Response) (json.RawMessage, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.normalizeFailure(ctx, resp.StatusCode, raw)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Arrays and scalars pass through untouched.
		return raw, nil
	}

	if payload["success"] == false || payload["error"] == true {
		message := MsgRequestError
		if text, ok := payload["message"].(string); ok && text != "" {
			message = text
		}
		return nil, &Error{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    message,
			Details:    payload,
		}
	}

	if payload["success"] == true {
		delete(payload, "success")
		stripped, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("re-encoding upstream payload: %w", err)
		}
		return stripped, nil
	}

	return raw, nil
}

// normalizeFailure shapes a non-2xx response into an *Error. A 401 also drops
// the stored token so the next request starts unauthenticated.
func (c *Client) normalizeFailure(ctx context.Context, status int, raw []byte) error {
	message := genericHTTPMessage(status)

	switch {
	case status == http.StatusUnauthorized:
		message = MsgUnauthorized
		if err := c.tokens.ClearToken(ctx); err != nil && c.logg != nil {
			c.logg.Error(ctx, "clearing upstream token", err)
		}
	case status == http.StatusForbidden:
		message = MsgForbidden
	case status == http.StatusNotFound:
		message = MsgNotFound
	case status >= http.StatusInternalServerError:
		message = MsgServerError
	}

	// A 401 always reports the fixed authorization message; the body text
	// only survives in Details.
	var details any
	var body upstreamErrorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		_ = json.Unmarshal(raw, &details)
		if fromBody := body.message(); fromBody != "" && status != http.StatusUnauthorized {
			message = fromBody
		}
	} else if text := strings.TrimSpace(string(raw)); text != "" && status != http.StatusUnauthorized {
		message = text
	}

	return &Error{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
		Details:    details,
	}
}

// upstreamErrorBody covers the error shapes the CMS is known to produce: the
// Strapi envelope with optional validation details and the flat message form.
// The error field is decoded lazily since some upstreams put a bool or string
// there.
type upstreamErrorBody struct {
	Message string          `json:"message"`
	ErrRaw  json.RawMessage `json:"error"`
}

type upstreamErrorDetail struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Details struct {
		Errors []struct {
			Path    []any  `json:"path"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"details"`
}

func (b upstreamErrorBody) message() string {
	var detail upstreamErrorDetail
	if len(b.ErrRaw) > 0 && json.Unmarshal(b.ErrRaw, &detail) == nil {
		if len(detail.Details.Errors) > 0 {
			parts := make([]string, 0, len(detail.Details.Errors))
			for _, item := range detail.Details.Errors {
				segments := make([]string, 0, len(item.Path))
				for _, segment := range item.Path {
					segments = append(segments, fmt.Sprint(segment))
				}
				parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(segments, "."), item.Message))
			}
			return fmt.Sprintf("Ошибка валидации: %s", strings.Join(parts, ", "))
		}
		if detail.Message != "" {
			return detail.Message
		}
		if detail.Name != "" {
			return fmt.Sprintf("Ошибка %s", detail.Name)
		}
	}
	if b.Message != "" {
		return b.Message
	}
	return ""
}
