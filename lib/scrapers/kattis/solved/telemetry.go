package solved

import (
	"kattis-solved/lib/telemetry"

	"go.opentelemetry.io/otel/metric"
)

var tracer = telemetry.Tracer("kattis-solved.lib.scrapers.kattis.solved")
var meter = telemetry.Meter("kattis-solved.lib.scrapers.kattis.solved")

var pagesFetched, _ = meter.Int64Counter(
	"kattis.pages.fetched",
	metric.WithDescription("listing pages fetched, including the final empty page"),
)
var problemsCollected, _ = meter.Int64Counter(
	"kattis.problems.collected",
	metric.WithDescription("problem ids extracted across all pages"),
)
