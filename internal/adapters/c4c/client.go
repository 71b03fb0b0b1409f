// Package c4c provides the authenticated OData v2 read client for the CRM tenant
package c4c

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"time"

	"c4ctexts/internal/core/odata"
	"c4ctexts/internal/core/version"
	perr "c4ctexts/internal/platform/errors"
	"c4ctexts/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultMaxBody = 32 << 20
	errorBodyMax   = 64 << 10
)

// Error messages surfaced to callers verbatim
const (
	MsgMissingCreds  = "Basic Auth credentials are required."
	MsgMalformedJSON = "Upstream response was not valid JSON."
)

// Credentials is a Basic auth pair
type Credentials struct {
	Username string
	Password string
}

// BasicAuth renders creds as an Authorization header value
// both halves must be present, nothing is sent otherwise
func BasicAuth(creds Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", perr.InvalidArgf(MsgMissingCreds)
	}
	tok := base64.StdEncoding.EncodeToString([]byte(creds.Username + ":" + creds.Password))
	return "Basic " + tok, nil
}

// Options configures the Client
type Options struct {
	// HTTP overrides the transport; nil builds one with Timeout
	HTTP *http.Client

	// Timeout 0 leaves the transport default (no client deadline)
	Timeout time.Duration

	UserAgent string

	// MaxBodyBytes caps a successful body; larger answers are malformed
	MaxBodyBytes int64

	// Registry receives the upstream collectors, nil disables metrics
	Registry prometheus.Registerer
}

// Request is one collection read
type Request struct {
	// Collection labels metrics and logs
	Collection string
	URL        string
	Auth       string
}

// Client issues single-shot authenticated GETs; it never retries
type Client struct {
	http    *http.Client
	opts    Options
	log     logger.Logger
	metrics *metrics
	now     func() time.Time
}

// NewClient creates a new Client with defaults applied
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = version.UserAgent()
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBody
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:    hc,
		opts:    o,
		log:     *logger.Named("c4c"),
		metrics: newMetrics(o.Registry),
		now:     time.Now,
	}
}

// FetchJSON performs one GET and decodes the OData envelope
//
// Non-2xx answers become a *StatusError (Upstream) carrying the raw body,
// 2xx answers that are not JSON become UpstreamMalformed
func (c *Client) FetchJSON(ctx context.Context, r Request) (odata.Collection, error) {
	if strings.TrimSpace(r.Auth) == "" {
		return odata.Collection{}, perr.InvalidArgf(MsgMissingCreds)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return odata.Collection{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "c4c new request failed")
	}
	req.Header.Set("Authorization", r.Auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.observe(r.Collection, outcomeTransport, lat)
		logger.C(ctx).Warn().Err(err).Str("collection", r.Collection).Dur("latency", lat).Msg("c4c transport error")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return odata.Collection{}, perr.Wrapf(ctxErr, perr.ErrorCodeUnavailable, "Upstream request cancelled")
		}
		return odata.Collection{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "Upstream request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("collection", r.Collection).Msg("c4c close body failed")
		}
	}()

	logger.C(ctx).Debug().
		Str("collection", r.Collection).
		Str("url", r.URL).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("c4c http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(r.Collection, outcomeStatus, lat)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyMax))
		return odata.Collection{}, newStatusError(resp.StatusCode, string(body))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes+1))
	if err != nil {
		c.observe(r.Collection, outcomeTransport, lat)
		return odata.Collection{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "Upstream response read failed")
	}
	if int64(len(b)) > c.opts.MaxBodyBytes {
		c.observe(r.Collection, outcomeMalformed, lat)
		return odata.Collection{}, perr.UpstreamMalformedf("Upstream response exceeded %d bytes.", c.opts.MaxBodyBytes)
	}
	out, err := odata.Decode(bytes.NewReader(b))
	if err != nil {
		c.observe(r.Collection, outcomeMalformed, lat)
		return odata.Collection{}, perr.Wrap(err, perr.ErrorCodeUpstreamMalformed, MsgMalformedJSON)
	}
	c.observe(r.Collection, outcomeOK, lat)
	return out, nil
}

func (c *Client) observe(collection, outcome string, lat time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.requests.WithLabelValues(collection, outcome).Inc()
	c.metrics.duration.WithLabelValues(collection).Observe(lat.Seconds())
}
