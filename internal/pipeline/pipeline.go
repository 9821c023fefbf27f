// Package pipeline runs the named stages of a single CLI invocation in order
// over a shared state value.
package pipeline

import (
	"context"
	"fmt"
	"log"
)

// Stage is one step of a run. It reads and updates the shared state and
// returns an error to halt the run.
type Stage[S any] interface {
	Name() string
	Run(ctx context.Context, state S) error
}

// FuncStage adapts a plain function to a Stage.
type FuncStage[S any] struct {
	name string
	fn   func(context.Context, S) error
}

// Name returns the stage's identifier, used in error messages.
func (s FuncStage[S]) Name() string { return s.name }

// Run calls the wrapped function.
func (s FuncStage[S]) Run(ctx context.Context, state S) error { return s.fn(ctx, state) }

// Func builds a stage from fn.
func Func[S any](name string, fn func(context.Context, S) error) FuncStage[S] {
	return FuncStage[S]{name: name, fn: fn}
}

// Pipeline is an ordered list of stages.
type Pipeline[S any] struct {
	stages []Stage[S]
	logger *log.Logger
}

// New returns a pipeline running stages in the order given.
func New[S any](stages ...Stage[S]) *Pipeline[S] {
	return &Pipeline[S]{stages: stages}
}

// WithLogger returns a copy of p that logs each stage to logger.
// A nil logger disables logging.
func (p *Pipeline[S]) WithLogger(logger *log.Logger) *Pipeline[S] {
	return &Pipeline[S]{stages: p.stages, logger: logger}
}

// Add appends a stage.
func (p *Pipeline[S]) Add(stage Stage[S]) {
	p.stages = append(p.stages, stage)
}

// Execute runs every stage in order. The first error stops the run and is
// returned prefixed with the stage name; a cancelled context stops it
// between stages.
func (p *Pipeline[S]) Execute(ctx context.Context, state S) error {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}
		if p.logger != nil {
			p.logger.Printf("stage %s", stage.Name())
		}
		if err := stage.Run(ctx, state); err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}
	}
	return nil
}
