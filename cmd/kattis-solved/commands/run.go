package commands

import (
	"context"
	"fmt"
	"io"
	"kattis-solved/lib/kattisrc"
	"kattis-solved/lib/restyutil"
	"kattis-solved/lib/scrapers/kattis/core"
	"kattis-solved/lib/scrapers/kattis/solved"
	"kattis-solved/lib/solvedlist"
	"log/slog"
	"path/filepath"
)

// run logs in with the credentials at rcPath, collects every solved problem
// and writes them out. Nothing is written unless every step succeeds.
func run(ctx context.Context, rcPath string, settings Settings, stdout io.Writer) error {
	rc, err := kattisrc.Read(rcPath)
	if err != nil {
		return err
	}

	var dump restyutil.InstrumentOutput
	if settings.HttpDumpDir != "" {
		out, err := restyutil.NewFilesystemOutput(settings.HttpDumpDir)
		if err != nil {
			return fmt.Errorf("failed to prepare http dump directory: %w", err)
		}
		dump = out
	}

	client, err := core.NewClient(ctx, core.ClientOptions{
		LoginUrl:         rc.LoginUrl,
		ProblemsUrl:      rc.ProblemsUrl,
		UserAgent:        settings.UserAgent,
		Timeout:          settings.Timeout(),
		CloudflareBypass: settings.CloudflareBypass,
		DumpOutput:       dump,
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "logging in", "username", rc.Credentials.Username, "url", rc.LoginUrl)
	session, err := client.Login(ctx, rc.Credentials)
	if err != nil {
		return err
	}

	collector := solved.Collector{
		Client:   client,
		Delay:    settings.Delay(),
		MaxPages: settings.MaxPages,
	}
	problems, err := collector.CollectAll(ctx, session)
	if err != nil {
		return err
	}

	path := filepath.Join(settings.OutputDir, solvedlist.FileName(rc.Credentials.Username))
	err = solvedlist.Write(path, problems)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "Wrote %d problems to %q\n", len(problems), path)
	return nil
}
