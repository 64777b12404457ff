package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukasForst/katlib/core/errors"
	"github.com/LukasForst/katlib/core/log"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	previous := log.GetDefault()
	t.Cleanup(func() { log.SetDefault(previous) })

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPick(t *testing.T) {
	out, _, err := run(t, "", "pick", "-w", "only=1")
	require.NoError(t, err)
	assert.Equal(t, "only\n", out)

	first, _, err := run(t, "", "pick", "-w", "a=1", "-w", "b=2", "-w", "c=3", "-n", "20", "--seed", "42")
	require.NoError(t, err)
	second, _, err := run(t, "", "pick", "-w", "a=1", "-w", "b=2", "-w", "c=3", "-n", "20", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Fields(first)
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Contains(t, []string{"a", "b", "c"}, line)
	}
}

func TestPickReportsDuplicateKeys(t *testing.T) {
	out, stderr, err := run(t, "", "pick", "-w", "a=1", "-w", "a=0")
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)
	assert.Contains(t, stderr, "The map should contain 2 entries but the actual size is 1.")
	assert.Contains(t, stderr, "[a=[1, 0]]")
}

func TestPickInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing separator", []string{"pick", "-w", "a"}, errors.CodeInvalidInput},
		{"empty key", []string{"pick", "-w", "=1"}, errors.CodeInvalidInput},
		{"bad weight", []string{"pick", "-w", "a=heavy"}, errors.CodeInvalidFormat},
		{"zero count", []string{"pick", "-w", "a=1", "-n", "0"}, errors.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, tt.code), "got %v", err)
		})
	}

	_, _, err := run(t, "", "pick")
	assert.Error(t, err)
}

func TestOrder(t *testing.T) {
	out, _, err := run(t, "", "order", "-w", "a=1", "-w", "b=5", "-w", "c=2", "--seed", "3", "--normalizer", "2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, strings.Fields(out))

	out, _, err = run(t, "", "order", "-w", "a=1", "-w", "b=5", "-w", "c=2", "--normalizer", "1e9")
	require.NoError(t, err)
	assert.Equal(t, "b\nc\na\n", out)

	out, _, err = run(t, "", "order", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "larger values make the order follow the weights more closely")
}

func TestSeedFromConfig(t *testing.T) {
	cfg := writeFile(t, "katlib.toml", "[sampler]\nseed = 7\n\n[log]\nlevel = \"debug\"\nformat = \"text\"\n")

	fromConfig, stderr, err := run(t, "", "--config", cfg, "pick", "-w", "a=1", "-w", "b=1", "-n", "10")
	require.NoError(t, err)
	fromFlag, _, err := run(t, "", "pick", "-w", "a=1", "-w", "b=1", "-n", "10", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, fromFlag, fromConfig)
	assert.Contains(t, stderr, "[DBG]")

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestHash(t *testing.T) {
	out, _, err := run(t, "hello", "hash")
	require.NoError(t, err)
	assert.Equal(t, "LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ=  -\n", out)

	path := writeFile(t, "data.txt", "hello")
	out, _, err = run(t, "", "hash", "--algo", "md5", path)
	require.NoError(t, err)
	assert.Equal(t, "XUFAKrxLKna5cZ2REBfFkg==  "+path+"\n", out)

	_, _, err = run(t, "", "hash", "--algo", "crc32")
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
}

func TestJSON(t *testing.T) {
	out, _, err := run(t, `{"a":[1,2]}`, "json", "pretty")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n", out)

	_, _, err = run(t, `{"a":`, "json", "pretty")
	assert.True(t, errors.HasCode(err, errors.CodeInvalidFormat))

	schema := writeFile(t, "schema.json", `{"type":"object","required":["name"]}`)
	out, _, err = run(t, `{"name":"katlib"}`, "json", "validate", "--schema", schema)
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, _, err = run(t, `{}`, "json", "validate", "--schema", schema)
	assert.True(t, errors.HasCode(err, errors.CodeValidationFailed))
}

func TestEnvGet(t *testing.T) {
	t.Setenv("KATLIB_CLI_TEST", "value")

	out, _, err := run(t, "", "env", "get", "KATLIB_CLI_TEST")
	require.NoError(t, err)
	assert.Equal(t, "value\n", out)

	_, _, err = run(t, "", "env", "get", "KATLIB_CLI_UNSET")
	assert.True(t, errors.HasCode(err, errors.CodeEnvironmentError))

	out, _, err = run(t, "", "env", "get", "KATLIB_CLI_UNSET", "--default", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "katlib v"+Version)
}
