// Package odata builds OData v2 query urls and filter expressions
//
// Only the subset the CRM integration needs is covered: equality filters joined with
// "and", single quoted string literals, and the $filter, $format and $expand options.
// Field names are never escaped, callers must only pass constants there.
package odata

import (
	"net"
	"net/url"
	"strings"

	perr "c4ctexts/internal/platform/errors"
)

// Query option names
const (
	ParamFilter = "$filter"
	ParamFormat = "$format"
	ParamExpand = "$expand"
)

// FormatJSON is the $format value every request carries
const FormatJSON = "json"

// Error messages surfaced to callers verbatim
const (
	MsgTenantRequired = "tenantUrl is required."
	MsgTenantInvalid  = "tenantUrl must be a valid URL."
)

// Origin normalizes tenantBase to scheme://host[:port]
// path, query, fragment and userinfo are dropped; scheme and host are lower-cased and
// default ports elided so every caller sees the same authoritative root
func Origin(tenantBase string) (string, error) {
	raw := strings.TrimSpace(tenantBase)
	if raw == "" {
		return "", perr.InvalidArgf(MsgTenantRequired)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" || u.Hostname() == "" {
		return "", perr.InvalidArgf(MsgTenantInvalid)
	}
	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	switch {
	case port != "":
		host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}
	return scheme + "://" + host, nil
}

// BuildURL resolves path against the origin of tenantBase and sets each params entry
// as a query parameter. params is a map so a key carries exactly one value
func BuildURL(tenantBase, path string, params map[string]string) (string, error) {
	origin, err := Origin(tenantBase)
	if err != nil {
		return "", err
	}
	base, err := url.Parse(origin)
	if err != nil {
		return "", perr.InvalidArgf(MsgTenantInvalid)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid OData path %q", path)
	}
	u := base.ResolveReference(ref)
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// EscapeLiteral doubles every single quote so v can sit inside an OData string literal
func EscapeLiteral(v string) string { return strings.ReplaceAll(v, "'", "''") }

// UnescapeLiteral reverses one EscapeLiteral step
func UnescapeLiteral(v string) string { return strings.ReplaceAll(v, "''", "'") }

// Literal renders v as a quoted, escaped OData string literal
func Literal(v string) string { return "'" + EscapeLiteral(v) + "'" }

// Key addresses a single entity, e.g. ServiceRequestCollection('obj-9')
func Key(collection, id string) string { return collection + "(" + Literal(id) + ")" }

// Filter is a rendered $filter expression
type Filter string

// Eq renders `field eq 'value'`
func Eq(field, value string) Filter { return Filter(field + " eq " + Literal(value)) }

// And joins non-empty filters with " and "; no parentheses are added
func And(filters ...Filter) Filter {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if f != "" {
			parts = append(parts, string(f))
		}
	}
	return Filter(strings.Join(parts, " and "))
}

func (f Filter) String() string { return string(f) }

// Query is the option set for one collection read
type Query struct {
	Filter Filter
	Expand string
}

// Params renders q into BuildURL params, always asking for JSON
func (q Query) Params() map[string]string {
	p := map[string]string{ParamFormat: FormatJSON}
	if q.Filter != "" {
		p[ParamFilter] = q.Filter.String()
	}
	if q.Expand != "" {
		p[ParamExpand] = q.Expand
	}
	return p
}
