package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/quadra/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout, stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestIntegrate_Simpson(t *testing.T) {
	out, _, err := execute(t, "integrate", "--func", "exp_sin4x", "--rule", "simpson", "--a", "1", "--b", "2", "--n", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "PROBLEM")
	assert.Contains(t, out, "exp_sin4x/simpson")
	assert.Contains(t, out, "0.3856635960")
	assert.Contains(t, out, "0.3859357293")
}

func TestIntegrate_ExactAndPrecision(t *testing.T) {
	out, _, err := execute(t, "integrate", "--func", "x", "--rule", "mid", "--a", "0", "--b", "1", "--n", "3", "--exact", "0.5", "--precision", "3")
	require.NoError(t, err)
	assert.Regexp(t, `0\.500\s+0\.500\s`, out)
}

func TestIntegrate_Errors(t *testing.T) {
	_, _, err := execute(t, "integrate", "--rule", "gaussian", "--n", "5")
	assert.ErrorIs(t, err, quadrature.ErrUnsupportedOrder)

	_, _, err = execute(t, "integrate", "--rule", "romberg")
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)
}

func TestRootFlags_Invalid(t *testing.T) {
	_, _, err := execute(t, "list", "--log-level", "loud")
	assert.ErrorContains(t, err, "--log-level")

	_, _, err = execute(t, "list", "--precision", "0")
	assert.ErrorContains(t, err, "--precision")
}

func TestHomework_Table(t *testing.T) {
	out, _, err := execute(t, "homework")
	require.NoError(t, err)
	for _, name := range []string{
		"q1a-trapezoidal", "q1b-simpson", "q1c-midpoint",
		"q2-gauss-3", "q2-gauss-4",
		"q3a-simpson-2d", "q3b-gauss-2d",
		"q4a-algebraic", "q4b-logarithmic",
	} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "simpson/x=e^t")
	assert.Contains(t, out, "gaussian 3x3")
}

func TestHomework_ExportThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hw.yaml")
	_, _, err := execute(t, "homework", "--export", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "integrand: exp_sin4x")

	fromFile, _, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	builtIn, _, err := execute(t, "homework")
	require.NoError(t, err)
	assert.Equal(t, builtIn, fromFile)
}

func TestRun_PartialFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	doc := `problems:
  - name: good
    integrand: sin
    rule: simpson
    a: 0
    b: 3.141592653589793
    n: 10
  - name: bad-order
    integrand: sin
    rule: gaussian
    a: 0
    b: 1
    n: 5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, logs, err := execute(t, "run", "--config", path)
	assert.ErrorContains(t, err, "1 of 2 problems failed")
	assert.Contains(t, out, "good")
	assert.NotContains(t, out, "bad-order")
	assert.Contains(t, logs, "bad-order")
}

func TestRun_RequiresConfig(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1D: ")
	assert.Contains(t, out, "x_ln_x")
	assert.Contains(t, out, "2D: ")
	assert.Contains(t, out, "2y_sinx_cosx")
}
