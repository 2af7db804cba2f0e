package handler

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// valueError reports a JSON value that could not be parsed into its field
// type. The message is shown to the client as-is.
type valueError struct {
	msg string
}

func (e *valueError) Error() string { return e.msg }

const (
	msgInvalidInteger  = "a valid integer is required"
	msgInvalidNumber   = "a valid number is required"
	msgInvalidDateTime = "datetime has wrong format, use an ISO 8601 timestamp such as 2025-04-20T18:30:00Z"
)

// isoLayouts are tried in order. Layouts without a zone yield UTC. Go
// accepts a fractional second after "05" even when the layout omits it.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseISOTime parses an ISO 8601 date-time.
func parseISOTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isoTime is a time.Time decoded from any ISO 8601 date-time string.
type isoTime time.Time

func (t *isoTime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return &valueError{msg: msgInvalidDateTime}
	}
	parsed, ok := parseISOTime(s)
	if !ok {
		return &valueError{msg: msgInvalidDateTime}
	}
	*t = isoTime(parsed)
	return nil
}

// timePtr converts to the *time.Time the services expect.
func (t *isoTime) timePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := time.Time(*t)
	return &v
}

// flexInt is an integer that also accepts a numeric string such as "20".
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &valueError{msg: msgInvalidInteger}
	}
	*n = flexInt(v)
	return nil
}

func (n *flexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
