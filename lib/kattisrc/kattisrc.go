// Package kattisrc reads the .kattisrc file handed out by Kattis judges.
package kattisrc

import (
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

var (
	// ErrUnreadable covers a missing file as well as one that is not valid INI.
	ErrUnreadable        = errors.New("unable to load .kattisrc")
	ErrMissingCredential = errors.New("your .kattisrc file appears corrupted, it must provide a token (or a KATTIS password)")
	ErrMissingUsername   = errors.New("your .kattisrc file does not provide [user] username")
	ErrMissingHostname   = errors.New("your .kattisrc file does not provide [kattis] hostname")
)

// Help is shown to the user when the config file cannot be read at all.
const Help = `To download a .kattisrc file please visit
https://open.kattis.com/download/kattisrc
The file should look something like this:
[user]
username: yourusername
token: *********
[kattis]
hostname: <kattis>
loginurl: https://<kattis>/login
submissionurl: https://<kattis>/submit
submissionsurl: https://<kattis>/submissions`

type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("failed to read config from %s: %s", e.Path, e.Err.Error())
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Credentials identify the user to the judge. An empty Password or Token
// means the option was not configured.
type Credentials struct {
	Username string
	Password string
	Token    string
}

func (c Credentials) Validate() error {
	if c.Username == "" {
		return ErrMissingUsername
	}
	if c.Password == "" && c.Token == "" {
		return ErrMissingCredential
	}
	return nil
}

type Config struct {
	Credentials Credentials
	Hostname    string
	LoginUrl    string
	ProblemsUrl string
}

// Read loads and validates the file at path. Every failure is a *ConfigError.
func Read(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: fmt.Errorf("%w: %w", ErrUnreadable, err)}
	}
	cfg, err := fromFile(file)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Parse is Read for in-memory contents.
func Parse(contents []byte) (Config, error) {
	file, err := ini.Load(contents)
	if err != nil {
		return Config{}, &ConfigError{Err: fmt.Errorf("%w: %w", ErrUnreadable, err)}
	}
	cfg, err := fromFile(file)
	if err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	return cfg, nil
}

func fromFile(file *ini.File) (Config, error) {
	user := file.Section("user")
	kattis := file.Section("kattis")

	cfg := Config{
		Credentials: Credentials{
			Username: user.Key("username").String(),
			Password: user.Key("password").String(),
			Token:    user.Key("token").String(),
		},
		Hostname: kattis.Key("hostname").String(),
	}
	err := cfg.Credentials.Validate()
	if err != nil {
		return Config{}, err
	}

	cfg.LoginUrl, err = urlOption(kattis, cfg.Hostname, "loginurl", "login")
	if err != nil {
		return Config{}, err
	}
	cfg.ProblemsUrl, err = urlOption(kattis, cfg.Hostname, "problem_page", "problems")
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// urlOption returns the explicit override if present, otherwise
// https://<hostname>/<fallback>.
func urlOption(section *ini.Section, hostname, option, fallback string) (string, error) {
	if section.HasKey(option) {
		return section.Key(option).String(), nil
	}
	if hostname == "" {
		return "", ErrMissingHostname
	}
	return fmt.Sprintf("https://%s/%s", hostname, fallback), nil
}
