package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/tour/internal/config"
	"github.com/gnoswap-labs/tour/tour"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	tour.ProgressWriter = io.Discard
	os.Exit(m.Run())
}

// execute runs the root command against a fresh in-memory filesystem.
// Commands share package state, so these tests are not parallel.
func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	appFs = fs
	cfgFile = config.DefaultPath
	timeout = 0
	ignoreDemos, runFormat, outPath = "", "text", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created/updated: .tour.yaml")

	cfg, err := config.Load(fs, config.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestList(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, config.DefaultPath,
		[]byte("demos:\n  stdlib/subprocess:\n    state: off\n"), 0o644))

	out, err := execute(t, fs, "list", "stdlib")
	require.NoError(t, err)

	assert.Contains(t, out, "stdlib/math")
	assert.Regexp(t, `stdlib/subprocess\s+off`, out)
	assert.NotContains(t, out, "basics/")
}

func TestRunJSON(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "run", "--format", "json", "basics/bitwise", "idioms")
	require.NoError(t, err)

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded["basics"], 1)
	assert.Equal(t, "bitwise", decoded["basics"][0]["demo"])
	require.Len(t, decoded["idioms"], 1)
}

func TestRunToFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "run", "-o", "/out.txt", "--ignore", "basics/identity, basics/membership", "basics")
	require.NoError(t, err)
	assert.Empty(t, out)

	raw, err := afero.ReadFile(fs, "/out.txt")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ok: basics/variables")
	assert.NotContains(t, string(raw), "basics/identity")
	assert.NotContains(t, string(raw), "basics/membership")
}

func TestRootFallsThroughToRun(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "controlflow/match_statement")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: controlflow/match_statement")
}

func TestRunErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := execute(t, fs, "run", "nope")
	assert.Error(t, err)

	_, err = execute(t, fs, "run", "--format", "xml", "basics/variables")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, config.DefaultPath, []byte("memo:\n  backend: etcd\n"), 0o644))
	_, err = execute(t, fs, "list")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b/c"}, splitList(" a, ,b/c,"))
	assert.Nil(t, splitList(""))
}
