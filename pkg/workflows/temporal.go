package workflows

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/fridgepal/pkg/logger"
)

// TemporalClient wraps the Temporal SDK client with project-level configuration.
type TemporalClient struct {
	Client    client.Client
	Namespace string
	log       logger.Logger
}

// NewTemporalClient initializes a Temporal client with OTel tracing integration.
// Call Close() when the application shuts down.
func NewTemporalClient(ctx context.Context, hostPort, namespace string, log logger.Logger) (*TemporalClient, error) {
	otelInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	c, err := client.Dial(client.Options{
		HostPort:     hostPort,
		Namespace:    namespace,
		Logger:       newTemporalLogger(log),
		Interceptors: []interceptor.ClientInterceptor{otelInterceptor},
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", hostPort, err)
	}

	log.Info("temporal client connected", "host_port", hostPort, "namespace", namespace)

	return &TemporalClient{
		Client:    c,
		Namespace: namespace,
		log:       log,
	}, nil
}

// Close gracefully shuts down the Temporal client connection.
func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}

// NewWorker returns a worker polling taskQueue. The client's tracing
// interceptor also applies to workflows and activities run by the worker.
func (tc *TemporalClient) NewWorker(taskQueue string) worker.Worker {
	return worker.New(tc.Client, taskQueue, worker.Options{})
}

// RunWorker starts w and stops it when ctx is cancelled.
func (tc *TemporalClient) RunWorker(ctx context.Context, w worker.Worker) error {
	if err := w.Start(); err != nil {
		return fmt.Errorf("start temporal worker: %w", err)
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

// StartCron starts wf under a fixed workflow id with the given cron schedule.
// If a run with that id is already open the existing run is kept.
func (tc *TemporalClient) StartCron(ctx context.Context, id, taskQueue, schedule string, wf interface{}, args ...interface{}) error {
	run, err := tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           id,
		TaskQueue:    taskQueue,
		CronSchedule: schedule,
	}, wf, args...)
	if err != nil {
		return fmt.Errorf("start cron workflow %s: %w", id, err)
	}
	tc.log.InfoContext(ctx, "cron workflow scheduled",
		"workflow_id", run.GetID(), "run_id", run.GetRunID(), "schedule", schedule)
	return nil
}

// temporalLogger adapts logger.Logger to Temporal's log.Logger interface.
type temporalLogger struct {
	log logger.Logger
}

func newTemporalLogger(log logger.Logger) temporallog.Logger {
	return &temporalLogger{log: log}
}

func (l *temporalLogger) Debug(msg string, keyvals ...interface{}) {
	l.log.Debug(msg, keyvals...)
}

func (l *temporalLogger) Info(msg string, keyvals ...interface{}) {
	l.log.Info(msg, keyvals...)
}

func (l *temporalLogger) Warn(msg string, keyvals ...interface{}) {
	l.log.Warn(msg, keyvals...)
}

func (l *temporalLogger) Error(msg string, keyvals ...interface{}) {
	l.log.Error(msg, keyvals...)
}
