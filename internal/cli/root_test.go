package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/bigbench"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, want ExitCode) {
	t.Helper()

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %v", err)
	assert.Equal(t, want, cliErr.Code)
}

func TestGrowthCommand(t *testing.T) {
	out, err := execute(t, "growth", "3", "10")
	require.NoError(t, err)
	assert.Equal(t, "alg3 O(n^2) growth(10) = 100\n", out)
}

func TestGrowthCommand_JSON(t *testing.T) {
	out, err := execute(t, "--json", "growth", "5", "2")
	require.NoError(t, err)

	var got struct {
		Algorithm int     `json:"algorithm"`
		Class     string  `json:"class"`
		Growth    float64 `json:"growth"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5, got.Algorithm)
	assert.Equal(t, "O(n^5)", got.Class)
	assert.Equal(t, 32.0, got.Growth)
}

func TestGrowthCommand_Invalid(t *testing.T) {
	_, err := execute(t, "growth", "99", "50")
	requireExitCode(t, err, ExitInvalidInput)
	assert.ErrorIs(t, err, bigbench.ErrInvalidAlgorithm)

	_, err = execute(t, "growth", "--", "3", "-5")
	requireExitCode(t, err, ExitInvalidInput)
	assert.ErrorIs(t, err, bigbench.ErrInvalidSize)

	_, err = execute(t, "growth", "three", "5")
	requireExitCode(t, err, ExitInvalidInput)
}

func TestEstimateCommand_JSON(t *testing.T) {
	out, err := execute(t, "--json", "estimate", "3", "10", "2.0", "20")
	require.NoError(t, err)

	var got struct {
		Predicted float64 `json:"predicted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 8.0, got.Predicted)
}

func TestEstimateCommand_Text(t *testing.T) {
	out, err := execute(t, "estimate", "1", "5", "1.5", "5")
	require.NoError(t, err)
	assert.Equal(t, "alg1 n=5 t=1.5s -> n=5 t≈1.5s\n", out)
}

func TestTimeCommand(t *testing.T) {
	out, err := execute(t, "--json", "--seed", "7", "--trials", "2", "--no-gc", "time", "1", "1000")
	require.NoError(t, err)

	var got struct {
		Algorithm int       `json:"algorithm"`
		N         int       `json:"n"`
		Trials    []float64 `json:"trials"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Algorithm)
	assert.Equal(t, 1000, got.N)
	assert.Len(t, got.Trials, 2)

	_, err = execute(t, "time", "0", "10")
	requireExitCode(t, err, ExitInvalidInput)
}

func TestEvaluateCommand_Invalid(t *testing.T) {
	_, err := execute(t, "evaluate", "8", "10", "20")
	requireExitCode(t, err, ExitInvalidInput)

	_, err = execute(t, "evaluate", "1", "10")
	assert.Error(t, err, "missing argument")
}

func TestProfileCommand_Invalid(t *testing.T) {
	_, err := execute(t, "profile", "--", "2", "10", "-4")
	requireExitCode(t, err, ExitInvalidInput)
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	plan := "trials: 2\nseed: 3\nevaluations:\n  - {algorithm: 4, n1: 30, n2: 60}\n"
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o644))

	out, err := execute(t, "--json", "--trials", "1", "run", path)
	require.NoError(t, err)

	var report bigbench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Trials, "flag overrides plan")
	require.Len(t, report.Evaluations, 1)
	assert.Equal(t, bigbench.AlgorithmID(4), report.Evaluations[0].Algorithm)
}

func TestRunCommand_MissingPlan(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	requireExitCode(t, err, ExitInvalidInput)
}

func TestHarnessConfig_Layering(t *testing.T) {
	t.Setenv("BIGBENCH_TRIALS", "7")
	t.Setenv("BIGBENCH_WARMUP", "2")

	opts := &options{}
	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().IntVar(&opts.trials, "trials", 5, "")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 0, "")
	cmd.Flags().BoolVar(&opts.noGC, "no-gc", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--warmup", "5", "--no-gc"}))

	cfg, err := opts.harnessConfig(cmd, bigbench.DefaultHarnessConfig())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Trials, "env overrides default")
	assert.Equal(t, 5, cfg.Warmup, "flag overrides env")
	assert.False(t, cfg.CollectGarbage)
}
