package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v67/github"
	"github.com/google/go-querystring/query"
	"github.com/jmgilman/go/hub/errors"
	"github.com/jmgilman/go/hub/internal/urltemplate"
)

// dispatcher performs one authenticated round trip per call and hands back
// the raw response body. go-github builds the requests and classifies the
// responses. Requests go out on its http.Client rather than through BareDo,
// so no client-side rate-limit state can skip a round trip. Decoding happens
// in fetch and fetchList so that decode failures keep their own error code.
type dispatcher struct {
	gh         *github.Client
	httpClient *http.Client
	logger     logr.Logger
}

func newDispatcher(gh *github.Client, logger logr.Logger) *dispatcher {
	return &dispatcher{
		gh:         gh,
		httpClient: gh.Client(),
		logger:     logger,
	}
}

// request describes a single call.
type request struct {
	method string
	tmpl   string
	values urltemplate.Values
	query  interface{} // struct with `url` tags, or nil
	body   interface{} // JSON-encoded when non-nil
}

func (r request) path() string {
	return urltemplate.MustExpand(r.tmpl, r.values)
}

// do sends req and returns the response body. A nil body with a nil error
// means the resource is absent: the server answered 404, 204 or an empty body.
func (d *dispatcher) do(ctx context.Context, req request) ([]byte, error) {
	path := req.path()
	log := d.logger.WithValues("method", req.method, "path", path)

	urlStr, err := withQuery(strings.TrimPrefix(path, "/"), req.query)
	if err != nil {
		return nil, err
	}

	httpReq, err := d.gh.NewRequest(req.method, urlStr, req.body)
	if err != nil {
		err := errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
		return nil, errors.WithContextMap(err, map[string]interface{}{"method": req.method, "path": path})
	}

	log.V(1).Info("sending request")
	resp, err := d.httpClient.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, d.roundTripError(ctx, req.method, path, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := github.CheckResponse(resp); err != nil {
		var accepted *github.AcceptedError
		switch {
		case errors.As(err, &accepted):
			log.V(1).Info("request accepted", "status", resp.StatusCode)
		case resp.StatusCode == http.StatusNotFound:
			log.V(1).Info("resource absent", "status", resp.StatusCode)
			return nil, nil
		default:
			return nil, d.roundTripError(ctx, req.method, path, resp.StatusCode, err)
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err := errors.Wrap(err, errors.CodeNetwork, "failed to read response body")
		return nil, errors.WithContextMap(err, map[string]interface{}{"method": req.method, "path": path})
	}

	log.V(1).Info("received response", "status", resp.StatusCode, "bytes", len(body))
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	return nonEmpty(body), nil
}

// roundTripError classifies a failed round trip. status is 0 when no
// response was received.
func (d *dispatcher) roundTripError(ctx context.Context, method, path string, status int, err error) error {
	fields := map[string]interface{}{"method": method, "path": path}
	d.logger.V(1).Info("request failed", "method", method, "path", path, "status", status, "error", err.Error())

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var netErr net.Error
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		fields["status_code"] = status
		return errors.WithContextMap(errors.Wrap(err, errors.CodeRateLimit, "rate limit exceeded"), fields)
	case status != 0:
		return errors.WithContextMap(WrapHTTPError(err, status, "request failed"), fields)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return errors.WithContextMap(errors.Wrap(err, errors.CodeTimeout, "request timed out"), fields)
	default:
		return errors.WithContextMap(errors.Wrap(err, errors.CodeNetwork, "request failed"), fields)
	}
}

func nonEmpty(body []byte) []byte {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return body
}

// withQuery appends the URL-encoded form of opts to path.
func withQuery(path string, opts interface{}) (string, error) {
	if opts == nil {
		return path, nil
	}
	values, err := query.Values(opts)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidInput, "failed to encode query parameters")
	}
	if len(values) == 0 {
		return path, nil
	}
	return path + "?" + values.Encode(), nil
}

// fetch performs req and decodes a single object. It returns nil, nil when
// the resource is absent.
func fetch[T any](ctx context.Context, d *dispatcher, req request) (*T, error) {
	body, err := d.do(ctx, req)
	if err != nil || body == nil {
		return nil, err
	}

	var out *T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, d.decodeError(err, req)
	}
	return out, nil
}

// fetchList performs req and decodes a JSON array, keeping server order.
// It returns nil, nil when the resource is absent.
func fetchList[T any](ctx context.Context, d *dispatcher, req request) ([]*T, error) {
	body, err := d.do(ctx, req)
	if err != nil || body == nil {
		return nil, err
	}

	var out []*T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, d.decodeError(err, req)
	}
	for i, item := range out {
		if item == nil {
			err := errors.Newf(errors.CodeDecodeFailed, "unexpected null element at index %d", i)
			return nil, d.decodeError(err, req)
		}
	}
	return out, nil
}

func (d *dispatcher) decodeError(err error, req request) error {
	path := req.path()
	d.logger.Error(err, "failed to decode response", "method", req.method, "path", path)
	wrapped := errors.Wrap(err, errors.CodeDecodeFailed, "failed to decode response")
	return errors.WithContextMap(wrapped, map[string]interface{}{"method": req.method, "path": path})
}
