package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmgilman/go/hub/errors"
	"github.com/jmgilman/go/hub/internal/urltemplate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_AbsentResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusNotFound, `{"message": "Not Found"}`)
			},
		},
		{
			name: "no content",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, "")
			},
		},
		{
			name: "whitespace body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, " \n")
			},
		},
		{
			name: "null body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, "null")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, mux := newTestClient(t)
			mux.HandleFunc("GET /repos/octo/hello", tt.handler)
			mux.HandleFunc("GET /users/octo/repos", tt.handler)

			repo, err := client.GetRepository(context.Background(), "octo", "hello")
			require.NoError(t, err)
			assert.Nil(t, repo)

			repos, err := client.ListUserRepositories(context.Background(), "octo")
			require.NoError(t, err)
			assert.Nil(t, repos)
		})
	}
}

func TestDispatcher_DecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		object string
		list   string
	}{
		{
			name:   "malformed JSON",
			object: `{"name": "hello",`,
			list:   `[{"name": "hello"}`,
		},
		{
			name:   "wrong field type",
			object: `{"name": 42}`,
			list:   `[{"name": 42}]`,
		},
		{
			name:   "wrong top-level shape",
			object: `["hello"]`,
			list:   `{"name": "hello"}`,
		},
		{
			name:   "null list element",
			object: `"hello"`,
			list:   `[{"name": "hello", "owner": {"login": "octo"}}, null]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, mux := newTestClient(t)
			mux.HandleFunc("GET /repos/octo/hello", func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tt.object)
			})
			mux.HandleFunc("GET /users/octo/repos", func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, tt.list)
			})

			repo, err := client.GetRepository(context.Background(), "octo", "hello")
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.True(t, IsDecodeError(err))
			assert.False(t, IsTransportError(err))

			var platformErr errors.PlatformError
			require.True(t, errors.As(err, &platformErr))
			assert.Equal(t, "/repos/octo/hello", platformErr.Context()["path"])
			assert.Equal(t, http.MethodGet, platformErr.Context()["method"])

			repos, err := client.ListUserRepositories(context.Background(), "octo")
			require.Error(t, err)
			assert.Nil(t, repos)
			assert.True(t, IsDecodeError(err))
		})
	}
}

func TestDispatcher_StatusErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        int
		header        map[string]string
		wantCode      errors.ErrorCode
		wantTransport bool
		wantStatus    bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantCode: errors.CodeUnauthorized, wantStatus: true},
		{name: "forbidden", status: http.StatusForbidden, wantCode: errors.CodeForbidden, wantStatus: true},
		{name: "conflict", status: http.StatusConflict, wantCode: errors.CodeConflict, wantStatus: true},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantCode: errors.CodeInvalidInput, wantStatus: true},
		{name: "gone", status: http.StatusGone, wantCode: errors.CodeNotFound, wantStatus: true},
		{name: "internal server error", status: http.StatusInternalServerError, wantCode: errors.CodeNetwork, wantTransport: true, wantStatus: true},
		{name: "bad gateway", status: http.StatusBadGateway, wantCode: errors.CodeNetwork, wantTransport: true, wantStatus: true},
		{name: "service unavailable", status: http.StatusServiceUnavailable, wantCode: errors.CodeUnavailable, wantTransport: true, wantStatus: true},
		{
			name:       "primary rate limit",
			status:     http.StatusForbidden,
			header:     map[string]string{"X-RateLimit-Limit": "60", "X-RateLimit-Remaining": "0"},
			wantCode:   errors.CodeRateLimit,
			wantStatus: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, mux := newTestClient(t)
			mux.HandleFunc("GET /repos/octo/hello", func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				writeJSON(w, tt.status, `{"message": "request failed"}`)
			})

			repo, err := client.GetRepository(context.Background(), "octo", "hello")

			require.Error(t, err)
			assert.Nil(t, repo)
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
			assert.Equal(t, tt.wantTransport, IsTransportError(err))
			assert.False(t, IsDecodeError(err))

			status, ok := StatusCode(err)
			assert.Equal(t, tt.wantStatus, ok)
			if tt.wantStatus {
				assert.Equal(t, tt.status, status)
			}
		})
	}
}

func TestDispatcher_RateLimitedCallsReachServer(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client, mux := newTestClient(t)
	mux.HandleFunc("GET /repos/octo/{repo}", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("X-RateLimit-Limit", "60")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
		writeJSON(w, http.StatusForbidden, `{"message": "API rate limit exceeded"}`)
	})

	ctx := context.Background()

	_, err := client.GetRepository(ctx, "octo", "a")
	require.Error(t, err)
	assert.Equal(t, ErrCodeRateLimited, errors.GetCode(err))

	_, err = client.GetRepository(ctx, "octo", "b")
	require.Error(t, err)
	assert.Equal(t, ErrCodeRateLimited, errors.GetCode(err))

	status, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, int32(2), hits.Load())
}

func TestDispatcher_TransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		baseURL := server.URL
		server.Close()

		client, err := NewClient(WithBaseURL(baseURL), WithToken("test-token"))
		require.NoError(t, err)

		repo, err := client.GetRepository(context.Background(), "octo", "hello")

		require.Error(t, err)
		assert.Nil(t, repo)
		assert.True(t, IsTransportError(err))
		assert.Equal(t, errors.CodeNetwork, errors.GetCode(err))
		assert.True(t, errors.IsRetryable(err))

		_, ok := StatusCode(err)
		assert.False(t, ok)
	})

	t.Run("http client timeout", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		mux.HandleFunc("GET /repos/octo/slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
			writeJSON(w, http.StatusOK, `{}`)
		})

		client, err := NewClient(WithBaseURL(server.URL), WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
		require.NoError(t, err)

		_, err = client.GetRepository(context.Background(), "octo", "slow")

		require.Error(t, err)
		assert.Equal(t, errors.CodeTimeout, errors.GetCode(err))
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		t.Parallel()

		client, mux := newTestClient(t)
		mux.HandleFunc("GET /repos/octo/slow", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
			writeJSON(w, http.StatusOK, `{}`)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		repo, err := client.GetRepository(ctx, "octo", "slow")

		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Equal(t, errors.CodeTimeout, errors.GetCode(err))
		assert.True(t, IsTransportError(err))
	})
}

func TestDispatcher_NotFoundOnWrite(t *testing.T) {
	t.Parallel()

	client, mux := newTestClient(t)
	repo := mustGetRepository(t, client, mux)
	mux.HandleFunc("POST /repos/octo/hello/issues", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message": "Not Found"}`)
	})

	issue, err := repo.CreateIssue(context.Background(), "title", "body")

	require.NoError(t, err)
	assert.Nil(t, issue)
}

func TestRequest_Path(t *testing.T) {
	t.Parallel()

	req := request{
		method: http.MethodGet,
		tmpl:   pathRepositoryPull,
		values: urltemplate.Values{"owner": "octo", "repo": "hello", "pull": "42"},
	}
	assert.Equal(t, "/repos/octo/hello/pulls/42", req.path())

	missing := request{method: http.MethodGet, tmpl: pathRepositoryPull, values: urltemplate.Values{"owner": "octo"}}
	assert.Panics(t, func() { _ = missing.path() })
}

func TestWithQuery(t *testing.T) {
	t.Parallel()

	t.Run("nil options", func(t *testing.T) {
		t.Parallel()

		got, err := withQuery("repos/octo/hello/pulls", nil)

		require.NoError(t, err)
		assert.Equal(t, "repos/octo/hello/pulls", got)
	})

	t.Run("zero options", func(t *testing.T) {
		t.Parallel()

		got, err := withQuery("user/repos", ListOptions{})

		require.NoError(t, err)
		assert.Equal(t, "user/repos", got)
	})

	t.Run("embedded list options are flattened", func(t *testing.T) {
		t.Parallel()

		got, err := withQuery("repos/octo/hello/issues", ListIssuesOptions{
			State:       StateAll,
			Labels:      []string{"bug", "ui"},
			ListOptions: ListOptions{Page: 3, PerPage: 25},
		})
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "repos/octo/hello/issues", u.Path)
		assert.Equal(t, "all", u.Query().Get("state"))
		assert.Equal(t, "bug,ui", u.Query().Get("labels"))
		assert.Equal(t, "3", u.Query().Get("page"))
		assert.Equal(t, "25", u.Query().Get("per_page"))
		assert.False(t, u.Query().Has("assignee"))
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()

		_, err := withQuery("user/repos", "not a struct")

		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}
