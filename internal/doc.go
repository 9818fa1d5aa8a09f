// Package internal provides the engine that runs the tour's demonstrations.
//
// Key components:
//
// Engine: holds the registry of demonstrations, the per-demo state read
// from the project file, and the ignore list. It runs the demos of a module
// concurrently and collects one types.Result per demo.
//
// Demonstration: the interface every registered demo satisfies. Demos are
// thin adapters over the functions in the basics, controlflow, collections,
// fileio, funcs, oop, stdlib and idioms packages.
//
// Env: what a demo may touch beyond its fixed inputs (filesystem, seed,
// memo store, logger, clock).
//
// Watcher: re-runs demos when the project file changes.
//
// Usage:
//
//	engine, err := internal.NewEngine(internal.Env{Fs: afero.NewMemMapFs()}, cfg)
//	if err != nil {
//	    // handle error
//	}
//
//	engine.IgnoreDemo("stdlib/subprocess")
//
//	results, err := engine.Run(ctx, "stdlib")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, r := range results {
//	    fmt.Printf("%s: %v\n", r.Name(), r.Value)
//	}
package internal
