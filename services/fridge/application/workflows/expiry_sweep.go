// Package workflows holds the Temporal workflows and activities of the fridge
// service.
package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// ExpirySweepWorkflowID is the fixed id of the cron run, so that starting it
// from several workers attaches to one schedule.
const ExpirySweepWorkflowID = "fridge-expiry-sweep"

// Sweeper runs one expiry sweep. *services.InventoryService satisfies it.
type Sweeper interface {
	SweepExpiry(ctx context.Context) (appsvcs.SweepResult, error)
}

// Activities are the fridge activities registered on the worker.
type Activities struct {
	Inventory Sweeper
}

// SweepExpiry classifies active items and publishes expiring events.
func (a *Activities) SweepExpiry(ctx context.Context) (appsvcs.SweepResult, error) {
	return a.Inventory.SweepExpiry(ctx)
}

var sweepActivityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 2 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    5 * time.Second,
		BackoffCoefficient: 2,
		MaximumAttempts:    3,
	},
}

// ExpirySweepWorkflow runs the SweepExpiry activity and returns its summary.
// It is started on a cron schedule by the worker.
func ExpirySweepWorkflow(ctx workflow.Context) (appsvcs.SweepResult, error) {
	ctx = workflow.WithActivityOptions(ctx, sweepActivityOptions)

	var a *Activities
	var res appsvcs.SweepResult
	if err := workflow.ExecuteActivity(ctx, a.SweepExpiry).Get(ctx, &res); err != nil {
		workflow.GetLogger(ctx).Error("expiry sweep activity failed", "error", err)
		return appsvcs.SweepResult{}, err
	}
	return res, nil
}

// Registry is the part of worker.Worker that Register needs. The Temporal test
// environment satisfies it too.
type Registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivity(a interface{})
}

// Register adds the fridge workflows and activities to a worker.
func Register(r Registry, acts *Activities) {
	r.RegisterWorkflow(ExpirySweepWorkflow)
	r.RegisterActivity(acts)
}
