package provisioning

import (
	"fmt"
	"time"
)

// StageResult records the outcome of a single stage.
type StageResult struct {
	Stage    string
	Success  bool
	Detail   string
	Err      error
	Duration time.Duration
}

// Report accumulates stage results as the workflow runs. Stages that were
// never attempted because an earlier stage failed do not appear in Results.
type Report struct {
	Service string
	Results []StageResult
}

// Failed returns the result of the failing stage, or nil when every
// attempted stage succeeded.
func (r *Report) Failed() *StageResult {
	for i := range r.Results {
		if !r.Results[i].Success {
			return &r.Results[i]
		}
	}
	return nil
}

// RunStages executes all provisioning stages sequentially, halting at the
// first failure. Completed stages are never rolled back. The returned
// report always covers every attempted stage, including the failing one.
func RunStages(ctx *Context, stages []Stage) (*Report, error) {
	start := time.Now()
	report := &Report{Service: ctx.State.Service}
	ctx.Observer.Printf("Starting provisioning with %d stages...", len(stages))

	for i, stage := range stages {
		stageStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", stage.Name(), i+1, len(stages))

		ctx.Observer.Printf("[%s] starting", name)

		detail, err := stage.Run(ctx)
		result := StageResult{
			Stage:    stage.Name(),
			Success:  err == nil,
			Detail:   detail,
			Err:      err,
			Duration: time.Since(stageStart),
		}
		report.Results = append(report.Results, result)
		report.Service = ctx.State.Service

		if err != nil {
			ctx.Observer.Printf("[%s] failed: %v", name, err)
			return report, fmt.Errorf("%s stage failed: %w", stage.Name(), err)
		}

		ctx.Observer.Printf("[%s] completed in %v", name, time.Since(stageStart).Round(time.Millisecond))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return report, nil
}
