package core

import (
	"context"
	"fmt"
	"kattis-solved/lib/kattisrc"
	"kattis-solved/lib/restyutil"
	"kattis-solved/lib/telemetry"
	"net/http"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultUserAgent = "kattis-cli-downloader"

// Session is the cookie set handed out by a successful login. It is only
// valid for the lifetime of the run.
type Session struct {
	Cookies []*http.Cookie
}

type Client struct {
	LoginUrl    *url.URL
	ProblemsUrl *url.URL
	Http        *resty.Client
}

type ClientOptions struct {
	LoginUrl    string
	ProblemsUrl string
	// defaults to DefaultUserAgent
	UserAgent string
	// zero means no timeout
	Timeout          time.Duration
	CloudflareBypass bool
	// optional, receives a dump of every http exchange
	DumpOutput restyutil.InstrumentOutput
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	loginUrl, err := url.Parse(opts.LoginUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid login url: %w", err)
	}
	problemsUrl, err := url.Parse(opts.ProblemsUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid problem page url: %w", err)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New()
	// cookies only travel through an explicit Session
	client.SetCookieJar(nil)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("User-Agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(
		loginUrl.Hostname(),
		problemsUrl.Hostname(),
	))
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	telemetry.InstrumentResty(client, "kattis-solved/scrapers/kattis/http")
	restyutil.InstrumentClient(client, opts.DumpOutput)

	return &Client{
		LoginUrl:    loginUrl,
		ProblemsUrl: problemsUrl,
		Http:        client,
	}, nil
}

// Login performs the single form POST that exchanges credentials for a
// session. Nothing is retried.
func (c *Client) Login(ctx context.Context, creds kattisrc.Credentials) (Session, error) {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	form := map[string]string{
		"user":   creds.Username,
		"script": "true",
	}
	if creds.Password != "" {
		form["password"] = creds.Password
	}
	if creds.Token != "" {
		form["token"] = creds.Token
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(c.LoginUrl.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return Session{}, &AuthError{Err: err}
	}

	span.SetAttributes(attribute.Int("status_code", res.StatusCode()))
	if res.StatusCode() != http.StatusOK {
		authErr := newStatusError(res.StatusCode())
		span.SetStatus(codes.Error, authErr.Error())
		return Session{}, authErr
	}

	session := Session{Cookies: res.Cookies()}
	span.SetAttributes(attribute.Int("cookies", len(session.Cookies)))
	return session, nil
}
