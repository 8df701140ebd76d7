package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	cmd := newRootCmd(viper.New())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	code = execute(context.Background(), cmd)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := run(t, "list", "--only", "take,curry")
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"take", "curry"}, strings.Fields(out))
}

func TestListFromEnv(t *testing.T) {
	t.Setenv("LODASH_ONLY", "map, reduce")
	code, out, _ := run(t, "list")
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"map", "reduce"}, strings.Fields(out))
}

func TestRun(t *testing.T) {
	code, _, stderr := run(t, "run", "--log-level", "error", "--only", "groupBy,set")
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestRunBadLogFormatIsReported(t *testing.T) {
	code, _, stderr := run(t, "run", "--log-format", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown log format "xml"`)
	assert.Equal(t, 1, strings.Count(stderr, "xml"))
}

func TestRunBadLogLevelIsReported(t *testing.T) {
	code, _, stderr := run(t, "run", "--log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "loud")
}

func TestUnknownCommandIsReported(t *testing.T) {
	code, _, stderr := run(t, "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "frobnicate")
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("nope", "json")
	assert.Error(t, err)

	logger, err := newLogger("debug", "console")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))
}
