package telemetry

import (
	"context"
	"testing"
)

func TestInstrumentPerfStats(t *testing.T) {
	cleanup := SetupForTesting("test:telemetry")
	defer cleanup()

	// the collector must start and shut down cleanly with its context
	ctx, cancel := context.WithCancel(context.Background())
	InstrumentPerfStats(ctx)
	cancel()
}
