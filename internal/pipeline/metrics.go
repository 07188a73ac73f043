package pipeline

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/tracestream/internal/pipeline"

type instruments struct {
	tracer trace.Tracer

	notifications   metric.Int64Counter
	failures        metric.Int64Counter
	published       metric.Int64Counter
	publishFailures metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	notifications, _ := meter.Int64Counter("pipeline.notifications",
		metric.WithDescription("Notifications handled, by kind"),
	)
	failures, _ := meter.Int64Counter("pipeline.notifications.failed",
		metric.WithDescription("Notifications that ended with an error or a recovered panic"),
	)
	published, _ := meter.Int64Counter("pipeline.records.published",
		metric.WithDescription("Records accepted by the broker, by kind"),
	)
	publishFailures, _ := meter.Int64Counter("pipeline.records.publish_failures",
		metric.WithDescription("Records the broker rejected, by kind"),
	)

	return instruments{
		tracer:          otel.Tracer(instrumentationName),
		notifications:   notifications,
		failures:        failures,
		published:       published,
		publishFailures: publishFailures,
	}
}
