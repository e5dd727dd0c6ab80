package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uno.json")
	contents := `{"players":[{"name":"Alice","strategy":"naive"},{"name":"Bob","strategy":"greedy"}],"games":1000}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"-f", path, "-g", "25", "-t", "3", "--seed", "8"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "Player 0 (Alice, naive) won")
	assert.Contains(t, out.String(), "Player 1 (Bob, greedy) won")
	assert.Contains(t, out.String(), "25 games")
	assert.Contains(t, out.String(), "Elapsed time")
}

func TestRunLogLevel(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		verbose  bool
		expected string
	}{
		{"quiet run", nil, false, "warn"},
		{"verbose run", nil, true, "debug"},
		{"verbose run with an explicit level", []string{"--log-level", "error"}, true, "error"},
		{"explicit level", []string{"--log-level", "info"}, false, "info"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			flags := pflag.NewFlagSet("uno", pflag.ContinueOnError)
			flags.String("log-level", "warn", "")
			require.NoError(t, flags.Parse(c.args))

			assert.Equal(t, c.expected, runLogLevel(flags, c.verbose))
		})
	}
}
