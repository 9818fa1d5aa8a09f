package idioms

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/tour/internal/memo"
)

func TestWordFrequencies(t *testing.T) {
	t.Parallel()
	got := WordFrequencies("Hello hello World! world of code")
	assert.Equal(t, map[string]int{"hello": 2, "world": 2, "of": 1, "code": 1}, got)
	assert.Empty(t, WordFrequencies("123 !!!"))
}

func TestListFiles(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.go", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/pkg/b.go", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/src/README.md", nil, 0o644))

	files, err := ListFiles(fs, "/src", ".go")
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/a.go", "/src/pkg/b.go"}, files)
}

func TestAsyncSum(t *testing.T) {
	t.Parallel()
	sum, err := AsyncSum(context.Background(), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 45, sum)
}

func TestTaskGroup(t *testing.T) {
	t.Parallel()
	got, err := TaskGroup(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = TaskGroup(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVectorAndDispatch(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Vector{4, 6}, Vector{1, 2}.Add(Vector{3, 4}))
	assert.Equal(t, "Vector(x=4, y=6)", Vector{4, 6}.String())

	assert.Equal(t, 3, Size("abc"))
	assert.Equal(t, 3, Size([]int{1, 2, 3}))
	assert.Equal(t, 3, Size(123))

	tests := []struct {
		in   any
		want string
	}{
		{map[string]any{"type": "point", "x": 1, "y": 2}, "Point(1,2)"},
		{map[string]any{"type": "line"}, "Unknown"},
		{[]any{3, 4}, "Pair(3,4)"},
		{[]int{5, 6}, "Pair(5,6)"},
		{[]any{1}, "Unknown"},
		{"123", "Digits:123"},
		{"12a", "Unknown"},
		{"", "Unknown"},
		{nil, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.in))
	}
}

func TestDemo(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/main.go", nil, 0o644))
	store, err := memo.NewMemoryStore(0)
	require.NoError(t, err)

	r, err := Demo(context.Background(), fs, "/repo", store)
	require.NoError(t, err)

	assert.Len(t, r.People, 2)
	assert.Nil(t, r.People[0].Email)
	assert.Equal(t, 25, r.Squares[5])
	assert.Equal(t, []int{0, 2, 4, 6, 8}, r.Nested["evens"])
	assert.Equal(t, []string{"/repo/main.go"}, r.GoFiles)
	assert.Equal(t, 55, r.Fibonacci10)
	assert.Contains(t, r.JSON, `"email": "alan@example.com"`)
	assert.Equal(t, 45, r.AsyncSum)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, r.TaskGroup)
	assert.Equal(t, "Vector(x=4, y=6)", r.VectorSum)
	assert.Equal(t, []int{3, 3}, r.Sizes)
	assert.Equal(t, []string{"Point(1,2)", "Pair(3,4)", "Digits:123", "Unknown"}, r.Descriptions)
}
