package solved

import (
	"bytes"
	"context"
	"fmt"
	"kattis-solved/lib/scrapers/kattis/core"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultDelay = 500 * time.Millisecond

// Collector walks the solved-problems listing one page at a time until the
// first page without any problems.
//
// The loop has no upper bound of its own unless MaxPages is set: it relies on
// the remote listing being finite, which Kattis guarantees by returning an
// empty table past the last page.
type Collector struct {
	Client *core.Client
	// pause after every non-empty page
	Delay time.Duration
	// non-empty pages to collect at most, the closing empty page is not
	// counted. zero means unlimited
	MaxPages int
}

// PageUrl returns the listing url for page, filtered down to solved problems.
func PageUrl(base *url.URL, page int) string {
	link := *base
	query := link.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("show_solved", "on")
	query.Set("show_tried", "off")
	query.Set("show_untried", "off")
	link.RawQuery = query.Encode()
	return link.String()
}

// CollectAll fetches pages 0, 1, 2, ... in order and returns every problem id
// found before the first empty page, sorted. Duplicates across pages are kept.
func (c Collector) CollectAll(ctx context.Context, session core.Session) ([]string, error) {
	ctx, span := tracer.Start(ctx, "collector:CollectAll")
	defer span.End()

	problems := []string{}
	for page := 0; ; page++ {
		slog.InfoContext(ctx, "fetching page", "page", page)
		found, err := c.FetchPage(ctx, session, page)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch page")
			return nil, err
		}
		if len(found) == 0 {
			span.SetAttributes(attribute.Int("pages", page))
			break
		}
		if c.MaxPages > 0 && page >= c.MaxPages {
			err := fmt.Errorf("%w (%d pages)", ErrPageLimit, c.MaxPages)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		problems = append(problems, found...)
		problemsCollected.Add(ctx, int64(len(found)))

		err = wait(ctx, c.Delay)
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(problems)
	span.SetAttributes(attribute.Int("problems", len(problems)))
	return problems, nil
}

// FetchPage fetches and parses a single listing page.
func (c Collector) FetchPage(ctx context.Context, session core.Session, page int) ([]string, error) {
	ctx, span := tracer.Start(ctx, "collector:FetchPage", trace.WithAttributes(
		attribute.Int("page", page),
	))
	defer span.End()

	link := PageUrl(c.Client.ProblemsUrl, page)
	res, err := c.Client.Http.R().
		SetContext(ctx).
		SetCookies(session.Cookies).
		Get(link)
	if err != nil {
		span.SetStatus(codes.Error, "request failed")
		return nil, &FetchError{Url: link, Err: err}
	}
	pagesFetched.Add(ctx, 1)
	if res.StatusCode() != http.StatusOK {
		span.SetStatus(codes.Error, res.Status())
		return nil, &FetchError{Url: link, StatusCode: res.StatusCode()}
	}

	problems, err := ParseProblems(bytes.NewReader(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, fmt.Errorf("failed to parse %s: %w", link, err)
	}
	span.SetAttributes(attribute.Int("problems", len(problems)))
	return problems, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
