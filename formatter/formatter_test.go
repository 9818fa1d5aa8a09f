package formatter

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	tt "github.com/gnoswap-labs/tour/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

var sampleResults = []tt.Result{
	{
		Module:  "basics",
		Demo:    "arithmetic",
		Value:   map[string]int{"add": 13, "sub": 7},
		Elapsed: 1500 * time.Microsecond,
	},
	{
		Module:  "stdlib",
		Demo:    "subprocess",
		Err:     "exec: \"go\": executable file not found in $PATH",
		Elapsed: 2 * time.Millisecond,
	},
	{
		Module: "basics",
		Demo:   "point",
		Value:  point{X: 1, Y: 2},
	},
}

func TestGenerateFormattedResult(t *testing.T) {
	t.Parallel()

	expected := `ok: basics/arithmetic (1.5ms)
  |
  | add: 13
  | sub: 7
  |

error: stdlib/subprocess (2ms)
  = exec: "go": executable file not found in $PATH

ok: basics/point (0s)
  |
  | x: 1
  | y: 2
  |

`
	assert.Equal(t, expected, GenerateFormattedResult(sampleResults))
}

func TestGetResultFormatter(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &GeneralResultFormatter{}, getResultFormatter(tt.Result{}))
	assert.IsType(t, &FailedResultFormatter{}, getResultFormatter(tt.Result{Err: "boom"}))
}

func TestValueLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, valueLines(nil))
	assert.Equal(t, []string{"- 1", "- 2"}, valueLines([]int{1, 2}))
	// channels have no YAML form
	ch := make(chan int)
	assert.Len(t, valueLines(ch), 1)
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResults, FormatJSON))

	expected := `{
  "basics": [
    {"module": "basics", "demo": "arithmetic", "value": {"add": 13, "sub": 7}, "elapsed": 1500000},
    {"module": "basics", "demo": "point", "value": {"x": 1, "y": 2}, "elapsed": 0}
  ],
  "stdlib": [
    {"module": "stdlib", "demo": "subprocess", "error": "exec: \"go\": executable file not found in $PATH", "elapsed": 2000000}
  ]
}`
	assert.JSONEq(t, expected, buf.String())
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"basics"`)), bytes.Index(buf.Bytes(), []byte(`"stdlib"`)))
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResults, FormatYAML))

	var decoded map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded["basics"], 2)
	assert.Equal(t, "point", decoded["basics"][1]["demo"])
	assert.Contains(t, decoded["stdlib"][0]["error"], "executable file not found")
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Render(&bytes.Buffer{}, sampleResults, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
