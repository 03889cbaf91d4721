package core

import "kattis-solved/lib/telemetry"

var tracer = telemetry.Tracer("kattis-solved.lib.scrapers.kattis.core")
