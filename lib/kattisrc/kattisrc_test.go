package kattisrc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		expected Config
	}{
		{
			name: "token with derived urls",
			contents: `[user]
username: alice
token: abc123

[kattis]
hostname: open.kattis.com
`,
			expected: Config{
				Credentials: Credentials{Username: "alice", Token: "abc123"},
				Hostname:    "open.kattis.com",
				LoginUrl:    "https://open.kattis.com/login",
				ProblemsUrl: "https://open.kattis.com/problems",
			},
		},
		{
			name: "password with explicit urls",
			contents: `[user]
username = bob
password = hunter2

[kattis]
hostname = example.kattis.com
loginurl = https://example.kattis.com/custom/login
problem_page = https://example.kattis.com/custom/problems
`,
			expected: Config{
				Credentials: Credentials{Username: "bob", Password: "hunter2"},
				Hostname:    "example.kattis.com",
				LoginUrl:    "https://example.kattis.com/custom/login",
				ProblemsUrl: "https://example.kattis.com/custom/problems",
			},
		},
		{
			name: "explicit urls without hostname",
			contents: `[user]
username: carol
token: t
password: p

[kattis]
loginurl: http://127.0.0.1:8080/login
problem_page: http://127.0.0.1:8080/problems
`,
			expected: Config{
				Credentials: Credentials{Username: "carol", Password: "p", Token: "t"},
				LoginUrl:    "http://127.0.0.1:8080/login",
				ProblemsUrl: "http://127.0.0.1:8080/problems",
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := Parse([]byte(test.contents))
			require.NoError(t, err)
			require.Equal(t, test.expected, cfg)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		expected error
	}{
		{
			name: "no password or token",
			contents: `[user]
username: alice
[kattis]
hostname: open.kattis.com
`,
			expected: ErrMissingCredential,
		},
		{
			name: "empty token",
			contents: `[user]
username: alice
token:
[kattis]
hostname: open.kattis.com
`,
			expected: ErrMissingCredential,
		},
		{
			name: "no username",
			contents: `[user]
token: abc
[kattis]
hostname: open.kattis.com
`,
			expected: ErrMissingUsername,
		},
		{
			name: "no hostname",
			contents: `[user]
username: alice
token: abc
`,
			expected: ErrMissingHostname,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.contents))
			require.ErrorIs(t, err, test.expected)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".kattisrc")
	err := os.WriteFile(path, []byte("[user]\nusername: alice\ntoken: abc\n[kattis]\nhostname: open.kattis.com\n"), 0600)
	require.NoError(t, err)

	cfg, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, "alice", cfg.Credentials.Username)
	require.Equal(t, "https://open.kattis.com/problems", cfg.ProblemsUrl)

	_, err = Read(filepath.Join(dir, "missing"))
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, filepath.Join(dir, "missing"), cfgErr.Path)
	require.ErrorIs(t, err, ErrUnreadable)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestUnreadableOnlyForLoadFailures(t *testing.T) {
	_, err := Parse([]byte("[user\nusername: alice\n"))
	require.ErrorIs(t, err, ErrUnreadable)

	_, err = Parse([]byte("[user]\nusername: alice\n[kattis]\nhostname: open.kattis.com\n"))
	require.ErrorIs(t, err, ErrMissingCredential)
	require.False(t, errors.Is(err, ErrUnreadable))

	_, err = Parse([]byte("[user]\ntoken: abc\n"))
	require.ErrorIs(t, err, ErrMissingUsername)
	require.False(t, errors.Is(err, ErrUnreadable))
}
