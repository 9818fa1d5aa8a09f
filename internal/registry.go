package internal

import (
	"context"
	"time"

	"github.com/gnoswap-labs/tour/internal/basics"
	"github.com/gnoswap-labs/tour/internal/collections"
	"github.com/gnoswap-labs/tour/internal/controlflow"
	"github.com/gnoswap-labs/tour/internal/fileio"
	"github.com/gnoswap-labs/tour/internal/funcs"
	"github.com/gnoswap-labs/tour/internal/idioms"
	"github.com/gnoswap-labs/tour/internal/oop"
	"github.com/gnoswap-labs/tour/internal/stdlib"
)

const functoolsDelay = 100 * time.Millisecond

// allDemos lists every demonstration in registration order. Modules appear
// in the order a reader would walk through them.
var allDemos = []Demonstration{
	register("basics", "variables", pure(basics.Variables)),
	register("basics", "type_checking", fallible(basics.TypeChecking)),
	register("basics", "arithmetic", pure(func() basics.ArithmeticResult { return basics.Arithmetic(10, 3) })),
	register("basics", "comparison", pure(func() basics.ComparisonResult { return basics.Comparison(10, 3) })),
	register("basics", "logical", pure(func() basics.LogicalResult { return basics.Logical(true, false) })),
	register("basics", "bitwise", pure(func() basics.BitwiseResult { return basics.Bitwise(5, 3) })),
	register("basics", "string_operations", pure(basics.StringOperations)),
	register("basics", "string_formatting", fallible(basics.StringFormatting)),
	register("basics", "assignment_operators", pure(basics.AssignmentOperators)),
	register("basics", "membership", pure(basics.Membership)),
	register("basics", "identity", pure(basics.Identity)),

	register("controlflow", "if_else", pure(func() controlflow.IfElseResult { return controlflow.IfElse(18) })),
	register("controlflow", "nested_conditions", pure(func() controlflow.GradeResult { return controlflow.NestedConditions(85) })),
	register("controlflow", "for_loop", pure(controlflow.ForLoop)),
	register("controlflow", "while_loop", pure(controlflow.WhileLoop)),
	register("controlflow", "loop_control", pure(controlflow.LoopControl)),
	register("controlflow", "list_comprehension", pure(controlflow.ListComprehension)),
	register("controlflow", "dict_set_comprehension", pure(controlflow.DictSetComprehension)),
	register("controlflow", "exception_handling", pure(func() controlflow.ExceptionHandlingResult {
		return controlflow.ExceptionHandling(10, 0)
	})),
	register("controlflow", "raising_errors", pure(controlflow.RaisingErrors)),
	register("controlflow", "recover_panic", pure(controlflow.RecoverPanic)),
	register("controlflow", "context_managers", pure(controlflow.ContextManagers)),
	register("controlflow", "match_statement", pure(controlflow.MatchStatement)),

	register("collections", "list_operations", pure(collections.ListOperations)),
	register("collections", "list_slicing", pure(collections.ListSlicing)),
	register("collections", "slice_assignment", pure(collections.SliceAssignment)),
	register("collections", "list_comprehensions", pure(collections.ListComprehensions)),
	register("collections", "dict_operations", pure(collections.DictOperations)),
	register("collections", "nested_dicts", pure(collections.NestedDicts)),
	register("collections", "set_operations", pure(collections.SetOperations)),
	register("collections", "tuple_operations", pure(collections.TupleOperations)),
	register("collections", "collections", fallible(collections.Collections)),
	register("collections", "heap_operations", fallible(collections.HeapOperations)),
	register("collections", "bisect_operations", pure(collections.BisectOperations)),
	register("collections", "stack_queue", fallible(collections.StackQueue)),

	register("fileio", "text_file", withFs(fileio.TextFile)),
	register("fileio", "file_modes", withFs(fileio.FileModes)),
	register("fileio", "binary", withFs(fileio.Binary)),
	register("fileio", "json", withFs(fileio.JSON)),
	register("fileio", "csv", withFs(fileio.CSV)),
	register("fileio", "paths", withFs(fileio.Paths)),
	register("fileio", "utilities", withFs(fileio.Utilities)),
	register("fileio", "context_managers", withFs(fileio.ContextManagers)),
	register("fileio", "in_memory", fallible(fileio.InMemory)),
	register("fileio", "encoding", withFs(fileio.Encoding)),

	register("funcs", "functions", pure(funcs.DemonstrateFunctions)),
	register("funcs", "decorators", func(ctx context.Context, env Env) (any, error) {
		return funcs.DemonstrateDecorators(ctx, env.Memo, env.Seed)
	}),
	register("funcs", "closures", pure(funcs.DemonstrateClosures)),
	register("funcs", "generators", pure(funcs.DemonstrateGenerators)),

	register("oop", "classes", withContext(oop.DemonstrateClasses)),

	register("stdlib", "os", fallible(stdlib.OS)),
	register("stdlib", "datetime", func(_ context.Context, env Env) (any, error) {
		return stdlib.DateTime(env.Now())
	}),
	register("stdlib", "math", pure(stdlib.Math)),
	register("stdlib", "random", func(_ context.Context, env Env) (any, error) {
		return stdlib.Random(env.Seed)
	}),
	register("stdlib", "regex", pure(stdlib.Regex)),
	register("stdlib", "itertools", pure(stdlib.Itertools)),
	register("stdlib", "functools", func(ctx context.Context, _ Env) (any, error) {
		return stdlib.Functools(ctx, functoolsDelay)
	}),
	register("stdlib", "statistics", fallible(stdlib.Statistics)),
	register("stdlib", "decimal", fallible(stdlib.Decimal)),
	register("stdlib", "hashing", fallible(stdlib.Hashing)),
	register("stdlib", "subprocess", withContext(stdlib.Subprocess)),
	register("stdlib", "fractions", fallible(stdlib.Fractions)),

	register("idioms", "demo", func(ctx context.Context, env Env) (any, error) {
		return idioms.Demo(ctx, env.Fs, env.Root, env.Memo)
	}),
}
