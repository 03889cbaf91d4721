package main

import (
	"context"
	"kattis-solved/cmd/kattis-solved/commands"
	"kattis-solved/lib/telemetry"
	"kattis-solved/lib/util/serviceutil"
	"log/slog"
	"time"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()

	telemetry.InitSlog(false)
	tel, err := telemetry.SetupFromEnv(ctx, "kattis-solved")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	err = commands.ExecuteContext(ctx)

	if tel.Enabled() {
		telemetry.RecordPerfStats(ctx)
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer shutdownCancel()
	if shutdownErr := tel.Shutdown(shutdownCtx); shutdownErr != nil {
		slog.Warn("failed to flush telemetry", "err", shutdownErr)
	}

	if err != nil {
		commands.Fatal(err)
	}
}
