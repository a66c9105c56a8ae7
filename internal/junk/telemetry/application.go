package telemetry

import (
	"context"
	"os/signal"
	"time"

	"github.com/meschbach/go-junk-bucket/pkg/observability"
	"go.opentelemetry.io/otel"
	"golang.org/x/sys/unix"
)

var tracer = otel.Tracer("github.com/meschbach/fakegen/internal/junk/telemetry")

type ApplicationDoneFunc func() error

// TraceApplication roots a span covering the whole process.  The returned context is cancelled on SIGINT or SIGTERM.
// When exporting is enabled the exporter is flushed by the done function.
func TraceApplication(parent context.Context, cfg Config) (context.Context, ApplicationDoneFunc, error) {
	procCtx, procDone := signal.NotifyContext(parent, unix.SIGTERM, unix.SIGINT)

	var shutdown func(ctx context.Context) error
	if cfg.Enabled() {
		component, err := observability.DefaultConfig(cfg.ServiceName).Start(procCtx)
		if err != nil {
			procDone()
			return nil, nil, err
		}
		shutdown = component.ShutdownGracefully
	}

	ctx, span := tracer.Start(procCtx, cfg.ServiceName)
	return ctx, func() error {
		span.End()
		defer procDone()
		if shutdown == nil {
			return nil
		}
		shutdownCtx, shutdownDone := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownDone()
		return shutdown(shutdownCtx)
	}, nil
}
