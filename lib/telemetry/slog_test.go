package telemetry

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedactingHandler(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    string
		redacted bool
	}{
		{name: "password", key: "password", value: "hunter2", redacted: true},
		{name: "token", key: "token", value: "abc123", redacted: true},
		{name: "uppercase cookie", key: "Cookie", value: "EduSiteCookie=1", redacted: true},
		{name: "session cookies", key: "session_cookies", value: "sess-xyz", redacted: true},
		{name: "username", key: "username", value: "alice", redacted: false},
		{name: "page", key: "page", value: "page-three", redacted: false},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, false)
			logger.Info("message", test.key, test.value)

			out := buf.String()
			if test.redacted {
				require.NotContains(t, out, test.value)
				require.Contains(t, out, RedactedValue)
			} else {
				require.Contains(t, out, test.value)
				require.NotContains(t, out, RedactedValue)
			}
		})
	}
}

func TestRedactingHandlerGroupsAndWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true).With("token", "abc123")
	logger.Debug("login", slog.Group("user", "name", "alice", "password", "hunter2"))

	out := buf.String()
	require.False(t, strings.Contains(out, "abc123"))
	require.False(t, strings.Contains(out, "hunter2"))
	require.Contains(t, out, "alice")
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	require.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown")
	require.Contains(t, buf.String(), "shown")
}
