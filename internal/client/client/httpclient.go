package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/employwise/internal/client/models"
	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/logging"
	"github.com/dmitrijs2005/employwise/internal/netx"
	"github.com/google/uuid"
)

// DefaultBaseURL is the public reqres API.
const DefaultBaseURL = "https://reqres.in/api"

type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient builds a client rooted at baseURL. tokens may be nil, in
// which case every call is unauthenticated. timeout <= 0 keeps the transport
// default.
func NewHTTPClient(baseURL string, tokens TokenSource, logger logging.Logger, timeout time.Duration) *HTTPClient {
	if logger == nil {
		logger = logging.Nop()
	}

	transport := &netx.BearerTransport{Base: http.DefaultTransport}
	if tokens != nil {
		transport.Token = tokens.Token
	}

	hc := &http.Client{Transport: transport}
	if timeout > 0 {
		hc.Timeout = timeout
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		logger:  logger,
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.TokenResponse

	creds := models.Credentials{Email: email, Password: password}
	if err := c.do(netx.WithoutAuth(ctx), http.MethodPost, "/login", creds, &resp, ErrAuth); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrAuth)
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var resp models.Page
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &resp, ErrServer); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.UpdateConfirmation, error) {
	var resp models.UpdateConfirmation
	if err := c.do(ctx, http.MethodPut, userPath(id), upd, &resp, ErrServer); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, userPath(id), nil, nil, ErrServer)
}

func userPath(id int) string {
	return "/users/" + strconv.Itoa(id)
}

// do issues one request. in is JSON-encoded when non-nil, out is decoded
// from a 2xx body when non-nil. kind is the sentinel for non-2xx statuses.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, kind error) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if !netx.IsSuccess(resp.StatusCode) {
		return newStatusError(method, path, resp.StatusCode, errorMessage(netx.ReadErrorBody(resp)), kind)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: decode %s %s: %w", kind, method, path, err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} from a failure body, falling back to
// the trimmed raw text.
func errorMessage(b []byte) string {
	var e models.ErrorResponse
	if err := json.Unmarshal(b, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(b))
}
