package htmltext

import (
	"regexp"
	"strconv"
	"time"
)

// ISOMillis is the instant layout dates are rendered in, always UTC
const ISOMillis = "2006-01-02T15:04:05.000Z"

// maxEpochMillis bounds the instants rendered with a four digit year
const maxEpochMillis = 253402300799999

var odataDate = regexp.MustCompile(`/Date\((\d+)(?:[+-]\d+)?\)/`)

// Date decodes an OData v2 /Date(ms[+-offset])/ value to an ISO-8601 UTC instant.
// The offset is informational only, ms is already UTC.
// Strings without the pattern pass through; non-strings become ""
func Date(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	m := odataDate.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	ms, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || ms > maxEpochMillis {
		return s
	}
	return time.UnixMilli(ms).UTC().Format(ISOMillis)
}
