package commands

import (
	"kattis-solved/lib/configutil"
	"kattis-solved/lib/scrapers/kattis/core"
	"kattis-solved/lib/scrapers/kattis/solved"
	"os"
	"time"
)

const (
	appName      = "kattis-solved"
	settingsFile = "kattis-solved.json5"
)

// Settings tune the tool itself, credentials always come from the .kattisrc.
type Settings struct {
	// 0 disables the pause between pages
	DelayMs int `json:"delay_ms"`
	// non-empty pages to collect at most, 0 means unlimited
	MaxPages int `json:"max_pages"`
	// 0 disables the request timeout
	TimeoutSec       int    `json:"timeout_sec"`
	UserAgent        string `json:"user_agent"`
	OutputDir        string `json:"output_dir"`
	Verbose          bool   `json:"verbose"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
	HttpDumpDir      string `json:"http_dump_dir"`
}

func defaultSettings() Settings {
	return Settings{
		DelayMs:    int(solved.DefaultDelay / time.Millisecond),
		TimeoutSec: 30,
		UserAgent:  core.DefaultUserAgent,
		OutputDir:  ".",
	}
}

func (s Settings) Delay() time.Duration {
	return time.Duration(s.DelayMs) * time.Millisecond
}

func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// loadSettings reads kattis-solved.json5 from the working directory or the
// user's config dir on top of the defaults, a missing file just means
// defaults.
func loadSettings() (Settings, error) {
	settings, err := configutil.ReadUserConfigOnto(appName, settingsFile, defaultSettings())
	if err != nil && !os.IsNotExist(err) {
		return Settings{}, err
	}
	return settings, nil
}
