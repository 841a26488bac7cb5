// Package netx holds small net/http building blocks shared by the API client
// and its tests.
package netx

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/employwise/internal/common"
)

// maxErrorBody bounds how much of a failing response is read for diagnostics.
const maxErrorBody = 4 << 10

type anonymousKey struct{}

// WithoutAuth marks ctx so BearerTransport sends the request without a token.
func WithoutAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey{}).(bool)
	return v
}

// BearerTransport attaches "Authorization: Bearer <token>" to every outgoing
// request when Token returns a non-empty value. Requests whose context was
// marked with WithoutAuth are passed through untouched.
type BearerTransport struct {
	Base  http.RoundTripper
	Token func() string
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if isAnonymous(req.Context()) || t.Token == nil {
		return base.RoundTrip(req)
	}

	token := t.Token()
	if token == "" {
		return base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	return base.RoundTrip(r)
}

// ReadErrorBody drains at most a few KiB of resp.Body.
func ReadErrorBody(resp *http.Response) []byte {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return b
}

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
