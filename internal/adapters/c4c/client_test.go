package c4c

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"c4ctexts/internal/core/odata"
	perr "c4ctexts/internal/platform/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func odataQuery(id string) odata.Query {
	return odata.Query{Filter: odata.Eq(FieldID, id), Expand: ExpandEMailNotes}
}

func TestBasicAuth(t *testing.T) {
	got, err := BasicAuth(Credentials{Username: "svc", Password: "p:w"})
	require.NoError(t, err)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("svc:p:w")), got)

	for _, c := range []Credentials{{}, {Username: "svc"}, {Password: "pw"}} {
		_, err := BasicAuth(c)
		e, ok := perr.As(err)
		require.True(t, ok, "expected *perr.Error for %+v", c)
		assert.Equal(t, perr.ErrorCodeInvalidArgument, e.Code())
		assert.Equal(t, MsgMissingCreds, e.Message())
	}
}

func TestFetchJSON_SendsHeadersAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Basic abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "c4ctexts/"))
		_, _ = io.WriteString(w, `{"d":{"results":[{"ObjectID":"obj-9"}]}}`)
	}))
	defer srv.Close()

	c := NewClient(Options{})
	got, err := c.FetchJSON(context.Background(), Request{Collection: ServiceRequests, URL: srv.URL, Auth: "Basic abc"})
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "obj-9", got.Results[0].String("ObjectID"))
}

func TestFetchJSON_MissingResultsIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"d":{}}`)
	}))
	defer srv.Close()

	got, err := NewClient(Options{}).FetchJSON(context.Background(), Request{URL: srv.URL, Auth: "Basic abc"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestFetchJSON_StatusError(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"body kept raw", http.StatusUnauthorized, `{"error":"nope"}`, `Upstream error 401: {"error":"nope"}`},
		{"status text when body empty", http.StatusServiceUnavailable, "", "Upstream error 503: Service Unavailable"},
		{"html body", http.StatusNotFound, "<html>gone</html>", "Upstream error 404: <html>gone</html>"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = io.WriteString(w, c.body)
			}))
			defer srv.Close()

			_, err := NewClient(Options{}).FetchJSON(context.Background(), Request{URL: srv.URL, Auth: "Basic abc"})
			require.Error(t, err)

			status, ok := StatusOf(err)
			require.True(t, ok)
			assert.Equal(t, c.status, status)
			assert.Equal(t, perr.ErrorCodeUpstream, perr.CodeOf(err))
			assert.Equal(t, http.StatusBadGateway, perr.HTTPStatus(err))
			assert.Equal(t, c.message, perr.WireFrom(err).Message)
			assert.Equal(t, c.status == http.StatusUnauthorized, IsAuthRejected(err))
		})
	}
}

func TestFetchJSON_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>login page</html>")
	}))
	defer srv.Close()

	_, err := NewClient(Options{}).FetchJSON(context.Background(), Request{URL: srv.URL, Auth: "Basic abc"})
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeUpstreamMalformed, perr.CodeOf(err))
	assert.Equal(t, http.StatusBadGateway, perr.HTTPStatus(err))
	assert.Equal(t, MsgMalformedJSON, perr.WireFrom(err).Message)
	_, isStatus := StatusOf(err)
	assert.False(t, isStatus)
}

func TestFetchJSON_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"d":{"results":[{"Text":"`+strings.Repeat("x", 256)+`"}]}}`)
	}))
	defer srv.Close()

	_, err := NewClient(Options{MaxBodyBytes: 64}).FetchJSON(context.Background(), Request{URL: srv.URL, Auth: "Basic abc"})
	assert.Equal(t, perr.ErrorCodeUpstreamMalformed, perr.CodeOf(err))
}

func TestFetchJSON_NoAuthNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))
	defer srv.Close()

	_, err := NewClient(Options{}).FetchJSON(context.Background(), Request{URL: srv.URL})
	assert.Equal(t, perr.ErrorCodeInvalidArgument, perr.CodeOf(err))
	assert.Zero(t, hits.Load())
}

func TestFetchJSON_TransportAndCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(Options{}).FetchJSON(context.Background(), Request{URL: url, Auth: "Basic abc"})
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(err))

	block := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = NewClient(Options{}).FetchJSON(ctx, Request{URL: slow.URL, Auth: "Basic abc"})
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMetrics_CountOutcomes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("fail") == "1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"d":{"results":[]}}`)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	a := NewClient(Options{Registry: reg})
	b := NewClient(Options{Registry: reg}) // shares collectors

	ctx := context.Background()
	_, _ = a.FetchJSON(ctx, Request{Collection: Activities, URL: srv.URL, Auth: "Basic abc"})
	_, _ = b.FetchJSON(ctx, Request{Collection: Activities, URL: srv.URL, Auth: "Basic abc"})
	_, _ = b.FetchJSON(ctx, Request{Collection: Activities, URL: srv.URL + "?fail=1", Auth: "Basic abc"})

	assert.Equal(t, 2.0, testutil.ToFloat64(a.metrics.requests.WithLabelValues(Activities, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.requests.WithLabelValues(Activities, outcomeStatus)))
	assert.Equal(t, 1, testutil.CollectAndCount(a.metrics.duration))
}

func TestQueryAndNavigate_BuildURLs(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.URL.Path+"?"+r.URL.RawQuery)
		mu.Unlock()
		_, _ = io.WriteString(w, `{"d":{"results":[]}}`)
	}))
	defer srv.Close()

	c := NewClient(Options{})
	ctx := context.Background()
	_, err := c.Query(ctx, srv.URL+"/ignored?x=1", "Basic abc", EMails, odataQuery("act'1"))
	require.NoError(t, err)
	_, err = c.Navigate(ctx, srv.URL, "Basic abc", ServiceRequests, "obj-9", ServiceRequestText)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, "/sap/c4c/odata/v1/c4codataapi/EMailCollection?%24expand=EMailNotes&%24filter=ID+eq+%27act%27%271%27&%24format=json", got[0])
	assert.Equal(t, "/sap/c4c/odata/v1/c4codataapi/ServiceRequestCollection('obj-9')/ServiceRequestTextCollection?%24format=json", got[1])
}

func TestQuery_InvalidTenantNoRequest(t *testing.T) {
	_, err := NewClient(Options{}).Query(context.Background(), "", "Basic abc", EMails, odataQuery("x"))
	assert.Equal(t, perr.ErrorCodeInvalidArgument, perr.CodeOf(err))
}
