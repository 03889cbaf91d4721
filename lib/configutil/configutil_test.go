package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `json:"name"`
	Delay   int    `json:"delay"`
	Verbose bool   `json:"verbose"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	err := os.WriteFile(path, []byte(contents), 0600)
	require.NoError(t, err)
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.json5"), `{
		// comments are allowed
		name: "default",
		delay: 500,
	}`)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "settings.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "default", Delay: 500}, config)

	writeFile(t, filepath.Join(dir, "settings.local.json5"), `{verbose: true, delay: 100}`)

	config, err = ReadConfig[testConfig](filepath.Join(dir, "settings.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{Name: "default", Delay: 100, Verbose: true}, config)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "settings.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "settings.json5"), `{name: `)

	_, err := ReadConfig[testConfig](filepath.Join(dir, "settings.json5"))
	require.Error(t, err)
	require.False(t, os.IsNotExist(err))
}

func TestReadUserConfigOnto(t *testing.T) {
	defaults := testConfig{Name: "default", Delay: 500, Verbose: true}

	testCases := []struct {
		name     string
		files    map[string]string
		expected testConfig
	}{
		{
			name:     "unset keys keep defaults",
			files:    map[string]string{"settings.json5": `{name: "mine"}`},
			expected: testConfig{Name: "mine", Delay: 500, Verbose: true},
		},
		{
			name:     "explicit zero values win",
			files:    map[string]string{"settings.json5": `{delay: 0, verbose: false}`},
			expected: testConfig{Name: "default"},
		},
		{
			name: "local file overrides with zero",
			files: map[string]string{
				"settings.json5":       `{delay: 200}`,
				"settings.local.json5": `{delay: 0}`,
			},
			expected: testConfig{Name: "default", Verbose: true},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, contents := range test.files {
				writeFile(t, filepath.Join(dir, name), contents)
			}

			config, err := ReadUserConfigOnto("kattis-solved-test", filepath.Join(dir, "settings.json5"), defaults)
			require.NoError(t, err)
			require.Equal(t, test.expected, config)
		})
	}
}

func TestReadUserConfigOntoMissing(t *testing.T) {
	defaults := testConfig{Name: "default", Delay: 500}
	config, err := ReadUserConfigOnto("kattis-solved-test", filepath.Join(t.TempDir(), "settings.json5"), defaults)
	require.True(t, os.IsNotExist(err))
	require.Equal(t, defaults, config)
}
