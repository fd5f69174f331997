package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wilsonci/internal/parse"
	"wilsonci/internal/stats"
)

// execute runs the CLI with args and stdin, isolated from the caller's
// environment and any .env in the working directory.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"WILSONCI_CONF", "WILSONCI_DIGITS", "WILSONCI_UNIT", "WILSONCI_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	envFile := filepath.Join(t.TempDir(), "none.env")
	cmd.SetArgs(append([]string{"--env-file", envFile}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if err != nil {
		return 1
	}
	return 0
}

func TestRoot_DefaultPercentTable(t *testing.T) {
	out, _, err := execute(t, "", "--conf", "0.95", "Smartphone apps=28/42", "Wearables preferred = 26 / 42")
	require.NoError(t, err)

	want := "" +
		"Label                k   n   %      Wilson 95% CI [low, high]\n" +
		"-------------------  --  --  -----  -------------------------\n" +
		"Smartphone apps      28  42  66.67  [51.55%, 78.99%]\n" +
		"Wearables preferred  26  42  61.90  [46.81%, 75.00%]\n"
	assert.Equal(t, want, out)
}

func TestRoot_AsProp(t *testing.T) {
	out, _, err := execute(t, "", "--digits", "4", "--as-prop", "Rare=1/32")
	require.NoError(t, err)
	assert.Contains(t, out, "p_hat")
	assert.Contains(t, out, "Rare   1  32  0.0312  [0.0055, 0.1574]")
}

func TestRoot_ConflictingUnitFlags(t *testing.T) {
	_, _, err := execute(t, "", "--as-prop", "--as-percent", "A=1/2")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
	assert.Contains(t, err.Error(), "only one of")
}

func TestRoot_MalformedItem(t *testing.T) {
	out, _, err := execute(t, "", "A=1/2", "B=5/0")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.ErrorIs(t, err, parse.ErrFormat)
	assert.Empty(t, out)
}

func TestRoot_SkipInvalid(t *testing.T) {
	out, errOut, err := execute(t, "", "--skip-invalid", "A=1/2", "garbage")
	require.NoError(t, err)
	assert.Contains(t, out, "A  ")
	assert.Contains(t, errOut, "skipping malformed item")
}

func TestRoot_InvalidConfidence(t *testing.T) {
	_, _, err := execute(t, "", "--conf", "1.0", "A=1/10")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.ErrorIs(t, err, stats.ErrDomain)
}

func TestRoot_UsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"no items":        {},
		"unknown flag":    {"--nope", "A=1/2"},
		"bad conf flag":   {"--conf", "high", "A=1/2"},
		"bad log level":   {"--log-level", "chatty", "A=1/2"},
		"negative digits": {"--digits", "-1", "A=1/2"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, "", args...)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(err))
		})
	}
}

func TestRoot_Stdin(t *testing.T) {
	stdin := "# survey\nSatisfied=18/32\n\nDissatisfied=6/32\n"
	out, _, err := execute(t, stdin, "--digits", "1", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Satisfied     18  32  56.2")
	assert.Contains(t, out, "Dissatisfied  6   32  18.8")
}

func TestRoot_EnvironmentDefaults(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "wilsonci.env")
	require.NoError(t, os.WriteFile(envFile, []byte("WILSONCI_UNIT=prop\nWILSONCI_DIGITS=3\n"), 0o600))

	out, _, err := execute(t, "", "--env-file", envFile, "A=1/2")
	require.NoError(t, err)
	assert.Contains(t, out, "p_hat")
	assert.Contains(t, out, "0.500")

	// Flags still win over the file.
	out, _, err = execute(t, "", "--env-file", envFile, "--digits", "1", "--as-percent", "A=1/2")
	require.NoError(t, err)
	assert.Contains(t, out, "50.0")
}

func TestQuantile(t *testing.T) {
	out, _, err := execute(t, "", "quantile", "0.975", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "0.975  1.959963986\n0.5  0.000000000\n", out)

	out, _, err = execute(t, "", "quantile", "--two-sided", "-d", "3", "0.95", "0.99")
	require.NoError(t, err)
	assert.Equal(t, "0.95  1.960\n0.99  2.576\n", out)
}

func TestQuantile_Errors(t *testing.T) {
	_, _, err := execute(t, "", "quantile", "1")
	assert.ErrorIs(t, err, stats.ErrDomain)
	assert.Equal(t, 1, exitCode(err))

	_, _, err = execute(t, "", "quantile", "half")
	assert.Equal(t, 1, exitCode(err))

	_, _, err = execute(t, "", "quantile")
	assert.Equal(t, 2, exitCode(err))
}
