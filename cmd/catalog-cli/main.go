package main

import (
	"context"
	"log/slog"

	"coursecatalog-backend/cmd/catalog-cli/commands"
	"coursecatalog-backend/lib/serviceutil"
	"coursecatalog-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)

	tel, err := telemetry.SetupFromEnv(ctx, "catalog-cli")
	if err != nil {
		slog.Debug("telemetry disabled", "err", err)
	} else {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
