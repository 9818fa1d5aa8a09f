package internal

import (
	"context"

	"github.com/spf13/afero"
)

// Demonstration defines the interface for every registered demo.
type Demonstration interface {
	// Run executes the demo and returns its result record.
	Run(ctx context.Context, env Env) (any, error)

	// Module returns the module the demo belongs to.
	Module() string

	// Demo returns the demo's name within its module.
	Demo() string

	// Name returns the qualified "module/demo" name.
	Name() string
}

type demoFunc func(ctx context.Context, env Env) (any, error)

type demo struct {
	module string
	name   string
	run    demoFunc
}

func register(module, name string, run demoFunc) Demonstration {
	return &demo{module: module, name: name, run: run}
}

func (d *demo) Run(ctx context.Context, env Env) (any, error) {
	return d.run(ctx, env)
}

func (d *demo) Module() string { return d.module }
func (d *demo) Demo() string   { return d.name }
func (d *demo) Name() string   { return d.module + "/" + d.name }

// adapters from the demo packages' signatures

func pure[T any](fn func() T) demoFunc {
	return func(context.Context, Env) (any, error) {
		return fn(), nil
	}
}

func fallible[T any](fn func() (T, error)) demoFunc {
	return func(context.Context, Env) (any, error) {
		v, err := fn()
		return v, err
	}
}

func withFs[T any](fn func(afero.Fs) (T, error)) demoFunc {
	return func(_ context.Context, env Env) (any, error) {
		v, err := fn(env.Fs)
		return v, err
	}
}

func withContext[T any](fn func(context.Context) (T, error)) demoFunc {
	return func(ctx context.Context, _ Env) (any, error) {
		v, err := fn(ctx)
		return v, err
	}
}
