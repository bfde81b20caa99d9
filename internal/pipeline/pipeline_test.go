package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compareengine/internal/exporter"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseDefinition(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		def, err := ParseDefinition([]byte(`
name: monthly
inputs:
  - name: sales
    path: sales.csv
steps:
  - op: contribution
    input: sales
    output: shares
    params:
      value_keys: [amount]
`))
		require.NoError(t, err)
		assert.Equal(t, "monthly", def.Name)
		require.Len(t, def.Steps, 1)
		assert.Equal(t, []string{"amount"}, params(def.Steps[0].Params).strs("value_keys"))
		// Outputs default to the step outputs.
		assert.Equal(t, []string{"shares"}, def.Outputs)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := ParseDefinition([]byte("name: x\n"))
		require.Error(t, err)
	})

	t.Run("bad yaml rejected", func(t *testing.T) {
		_, err := ParseDefinition([]byte("\t"))
		require.Error(t, err)
	})
}

func TestRunnerRun(t *testing.T) {
	t.Run("runs steps against the registry", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "sales.csv", "month,amount\nJan,25\nFeb,75\n")

		def, err := ParseDefinition([]byte(`
name: shares
inputs:
  - name: sales
    path: ` + filepath.Join(dir, "sales.csv") + `
steps:
  - op: contribution
    input: sales
    output: shares
    params:
      value_keys: [amount]
  - op: rank
    input: shares
    output: ranked
    params:
      value_key: amount
`))
		require.NoError(t, err)

		results, err := NewRunner(testLogger()).Run(context.Background(), def)
		require.NoError(t, err)

		shares := results["shares"]
		require.Len(t, shares, 2)
		assert.Equal(t, 25.0, shares[0].Value("amount_contribution"))

		ranked := results["ranked"]
		require.Len(t, ranked, 2)
		assert.Equal(t, "Feb", ranked[0].Value("month"))
		assert.Equal(t, 1, ranked[0].Value("amount_rank"))
	})

	t.Run("two dataset join step", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "current.csv", "d,v\n2024-01,150\n")
		writeFile(t, dir, "previous.csv", "d,v\n2024-01,100\n")

		def, err := ParseDefinition([]byte(`
name: pop
inputs:
  - name: current
    path: ` + filepath.Join(dir, "current.csv") + `
  - name: previous
    path: ` + filepath.Join(dir, "previous.csv") + `
steps:
  - op: period_over_period
    inputs: [current, previous]
    output: deltas
    params:
      date_key: d
      value_keys: [v]
`))
		require.NoError(t, err)

		results, err := NewRunner(testLogger()).Run(context.Background(), def)
		require.NoError(t, err)
		require.Len(t, results["deltas"], 1)
		assert.Equal(t, 50.0, results["deltas"][0].Value("v_change"))
	})

	t.Run("unknown operation fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "d.csv", "v\n1\n")

		def, err := ParseDefinition([]byte(`
name: bad
inputs:
  - name: d
    path: ` + filepath.Join(dir, "d.csv") + `
steps:
  - op: transmogrify
    input: d
    output: out
`))
		require.NoError(t, err)

		_, err = NewRunner(testLogger()).Run(context.Background(), def)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown operation")
	})

	t.Run("unknown input dataset fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "d.csv", "v\n1\n")

		def, err := ParseDefinition([]byte(`
name: bad
inputs:
  - name: d
    path: ` + filepath.Join(dir, "d.csv") + `
steps:
  - op: rank
    input: missing
    output: out
    params:
      value_key: v
`))
		require.NoError(t, err)

		_, err = NewRunner(testLogger()).Run(context.Background(), def)
		require.Error(t, err)
	})

	t.Run("missing input file fails", func(t *testing.T) {
		def, err := ParseDefinition([]byte(`
name: bad
inputs:
  - name: d
    path: /nonexistent/file.csv
steps:
  - op: rank
    input: d
    output: out
    params:
      value_key: v
`))
		require.NoError(t, err)

		_, err = NewRunner(testLogger()).Run(context.Background(), def)
		require.Error(t, err)
	})
}

func TestRunnerExport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sales.csv", "month,amount\nJan,25\nFeb,75\n")
	outDir := filepath.Join(dir, "out")

	def, err := ParseDefinition([]byte(`
name: shares
inputs:
  - name: sales
    path: ` + filepath.Join(dir, "sales.csv") + `
steps:
  - op: contribution
    input: sales
    output: shares
    params:
      value_keys: [amount]
`))
	require.NoError(t, err)

	runner := NewRunner(testLogger())
	results, err := runner.Run(context.Background(), def)
	require.NoError(t, err)

	w := exporter.NewWriter(outDir, false)
	require.NoError(t, runner.Export(context.Background(), def, results, w, []string{"csv", "json"}))

	assert.FileExists(t, filepath.Join(outDir, "shares.csv"))
	assert.FileExists(t, filepath.Join(outDir, "shares.json"))

	t.Run("unknown output", func(t *testing.T) {
		bad := *def
		bad.Outputs = []string{"missing"}
		err := runner.Export(context.Background(), &bad, results, w, []string{"csv"})
		require.Error(t, err)
	})
}

func TestParamAccessors(t *testing.T) {
	p := params{
		"s":     "text",
		"list":  []interface{}{"a", "b"},
		"b":     true,
		"i":     3,
		"f":     2.5,
		"mixed": []interface{}{"a", 1},
	}

	assert.Equal(t, "text", p.str("s"))
	assert.Equal(t, "", p.str("missing"))
	assert.Equal(t, []string{"a", "b"}, p.strs("list"))
	assert.Nil(t, p.strs("missing"))
	assert.Equal(t, []string{"a"}, p.strs("mixed"))
	assert.True(t, p.flag("b"))
	assert.False(t, p.flag("missing"))
	assert.Equal(t, 3, p.integer("i", 9))
	assert.Equal(t, 9, p.integer("missing", 9))
	assert.Equal(t, 2.5, p.number("f", 0))
	assert.Equal(t, 100.0, p.number("missing", 100))
}
