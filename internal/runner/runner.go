package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bakkerme/internwatch/internal/core"
)

type Runner struct {
	logger *slog.Logger
	// strictSources turns a source fetch error into a failed run instead of
	// recording it and continuing with the other sources.
	strictSources bool
}

func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

func NewStrict(logger *slog.Logger) *Runner {
	r := New(logger)
	r.strictSources = true
	return r
}

func (r *Runner) Start(ctx context.Context, flow *core.Flow) error {
	if flow == nil {
		return fmt.Errorf("flow is required")
	}
	for _, trigger := range flow.Triggers {
		if trigger == nil {
			continue
		}
		events, err := trigger.Start(ctx, flow.ID)
		if err != nil {
			return err
		}
		go r.listen(ctx, flow, events)
	}
	return nil
}

// RunOnce executes the pipeline once. A failing source is recorded on the run
// and the remaining sources still fetch; a failing output is recorded without
// failing the run, since the seen set has already been persisted by the
// dedupe filter. Filter and digest failures fail the run.
func (r *Runner) RunOnce(ctx context.Context, flow *core.Flow) (*core.Run, error) {
	if flow == nil {
		return nil, fmt.Errorf("flow is required")
	}
	run := &core.Run{
		ID:        fmt.Sprintf("run-%d", time.Now().UnixNano()),
		FlowID:    flow.ID,
		StartedAt: time.Now().UTC(),
		Status:    core.RunStatusRunning,
	}
	ctx = core.WithRunID(core.WithFlowID(ctx, flow.ID), run.ID)

	blocks := []*core.ListingBlock{}
	for _, source := range flow.Sources {
		if source == nil {
			continue
		}
		fetched, err := source.Fetch(ctx)
		if err != nil {
			if r.strictSources {
				run.Status = core.RunStatusFailed
				return run, err
			}
			r.logger.Error("source fetch failed", "source", source.Name(), "error", err)
			run.Errors = append(run.Errors, core.ProcessError{
				ProcessorName: source.Name(),
				Stage:         "source",
				Error:         err.Error(),
				OccurredAt:    time.Now().UTC(),
			})
			continue
		}
		for _, block := range fetched {
			block.FlowID = flow.ID
		}
		r.logger.Info("source fetched", "source", source.Name(), "listings", len(fetched))
		blocks = append(blocks, fetched...)
	}

	for _, processor := range flow.Filters {
		if processor == nil {
			continue
		}
		next, err := processor.Filter(ctx, blocks)
		if err != nil {
			run.Status = core.RunStatusFailed
			return run, err
		}
		blocks = next
	}
	r.logger.Info("filters applied", "new_listings", len(blocks))

	var digest *core.RunDigest
	for _, processor := range flow.Digests {
		if processor == nil {
			continue
		}
		next, err := processor.Digest(ctx, blocks, digest)
		if err != nil {
			run.Status = core.RunStatusFailed
			return run, err
		}
		digest = next
	}

	if len(blocks) > 0 {
		for _, output := range flow.Outputs {
			if output == nil {
				continue
			}
			if err := output.Deliver(ctx, blocks, digest); err != nil {
				r.logger.Error("delivery failed", "output", output.Name(), "error", err)
				run.Errors = append(run.Errors, core.ProcessError{
					ProcessorName: output.Name(),
					Stage:         "output",
					Error:         err.Error(),
					OccurredAt:    time.Now().UTC(),
				})
			}
		}
	} else {
		r.logger.Info("no new listings, skipping delivery")
	}

	completedAt := time.Now().UTC()
	run.CompletedAt = &completedAt
	run.Status = core.RunStatusCompleted
	run.Blocks = blocks
	run.Digest = digest
	return run, nil
}

func (r *Runner) listen(ctx context.Context, flow *core.Flow, events <-chan core.TriggerEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			r.logger.Info("trigger event", "flow_id", event.FlowID, "time", event.Timestamp)
			if _, err := r.RunOnce(ctx, flow); err != nil {
				r.logger.Error("flow run failed", "error", err)
			}
		}
	}
}
