package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/e11jah/bst/frequency"
	"github.com/e11jah/bst/internal/config"
)

type testState struct {
	*globalState
	env    map[string]string
	stdin  *bytes.Buffer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestState(t *testing.T) *testState {
	t.Helper()

	ts := &testState{
		env:    map[string]string{},
		stdin:  &bytes.Buffer{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	logger := logrus.New()
	logger.SetOutput(ts.stderr)

	ts.globalState = &globalState{
		ctx:    context.Background(),
		fs:     afero.NewMemMapFs(),
		stdin:  ts.stdin,
		stdout: ts.stdout,
		stderr: ts.stderr,
		lookupEnv: func(key string) (string, bool) {
			v, ok := ts.env[key]
			return v, ok
		},
		logger: logger,
		flags:  globalFlags{logFormat: "text"},
	}
	return ts
}

func (ts *testState) run(args ...string) error {
	root := newRootCommand(ts.globalState)
	root.SetArgs(args)
	return root.ExecuteContext(ts.ctx)
}

func TestCountFromFile(t *testing.T) {
	ts := newTestState(t)
	require.NoError(t, afero.WriteFile(ts.fs, "text.txt", []byte("a b a b a"), 0o644))

	require.NoError(t, ts.run("count", "--cutoff", "3", "text.txt"))
	assert.Equal(t, "tree -> {\n\t\"a\": 3\n}\n", ts.stdout.String())
}

func TestCountFromStdin(t *testing.T) {
	ts := newTestState(t)
	ts.stdin.WriteString("a b a b a")

	require.NoError(t, ts.run("count", "--max", "2", "--cutoffs", "3,2", "-f", "json"))

	var reports []frequency.Report
	require.NoError(t, json.Unmarshal(ts.stdout.Bytes(), &reports))
	assert.Equal(t, []frequency.Report{
		{PrefixLen: 1, Entries: []frequency.Entry{{Prefix: "a", Count: 3}}},
		{PrefixLen: 2, Entries: []frequency.Entry{{Prefix: "a b", Count: 2}, {Prefix: "b a", Count: 2}}},
	}, reports)
}

func TestCountConfigPrecedence(t *testing.T) {
	ts := newTestState(t)
	require.NoError(t, afero.WriteFile(ts.fs, "conf.toml", []byte(`
max_prefix_len = 2
cutoff = 1
format = "yaml"
`), 0o644))
	ts.env["FREQFILTER_CUTOFF"] = "2"
	ts.stdin.WriteString("x y x y z")

	// the flag beats both the file and the environment
	require.NoError(t, ts.run("count", "--config", "conf.toml", "--max", "1"))

	var reports []frequency.Report
	require.NoError(t, yaml.Unmarshal(ts.stdout.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].PrefixLen)
	assert.Equal(t, []frequency.Entry{{Prefix: "x", Count: 2}, {Prefix: "y", Count: 2}}, reports[0].Entries)
}

func TestCountCutoffFlagBeatsFileCutoffs(t *testing.T) {
	ts := newTestState(t)
	require.NoError(t, afero.WriteFile(ts.fs, "conf.toml", []byte("cutoffs = [1]\n"), 0o644))
	ts.stdin.WriteString("a b a b a")

	require.NoError(t, ts.run("count", "--config", "conf.toml", "--cutoff", "3"))
	assert.Equal(t, "tree -> {\n\t\"a\": 3\n}\n", ts.stdout.String())
}

func TestCountCutoffFlagBeatsEnvCutoffs(t *testing.T) {
	ts := newTestState(t)
	ts.env["FREQFILTER_CUTOFFS"] = "1,1"
	ts.env["FREQFILTER_MAX_PREFIX_LEN"] = "2"
	ts.stdin.WriteString("a b a b a")

	require.NoError(t, ts.run("count", "--cutoff", "3", "-f", "json"))

	var reports []frequency.Report
	require.NoError(t, json.Unmarshal(ts.stdout.Bytes(), &reports))
	assert.Equal(t, []frequency.Report{
		{PrefixLen: 1, Entries: []frequency.Entry{{Prefix: "a", Count: 3}}},
		{PrefixLen: 2, Entries: []frequency.Entry{}},
	}, reports)
}

func TestCountInvalidConfig(t *testing.T) {
	ts := newTestState(t)
	ts.stdin.WriteString("a b")

	err := ts.run("count", "--min", "3", "--max", "2")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, ts.stdout.String())
}

func TestCountMissingFile(t *testing.T) {
	ts := newTestState(t)

	err := ts.run("count", "nope.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read input")
}

func TestCountEmptyInput(t *testing.T) {
	ts := newTestState(t)

	require.NoError(t, ts.run("count"))
	assert.Empty(t, ts.stdout.String())
	assert.Contains(t, ts.stderr.String(), "input contains no words")
}

func TestCountVerbose(t *testing.T) {
	ts := newTestState(t)
	ts.stdin.WriteString("a a b")

	require.NoError(t, ts.run("count", "-v", "--log-format", "json"))
	assert.Contains(t, ts.stderr.String(), `"msg":"built frequency tree"`)
	assert.True(t, strings.HasPrefix(ts.stdout.String(), "tree -> {"))
}

func TestUnsupportedLogFormat(t *testing.T) {
	ts := newTestState(t)

	err := ts.run("count", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestVersion(t *testing.T) {
	ts := newTestState(t)

	require.NoError(t, ts.run("version"))
	assert.Equal(t, "freqfilter v"+version+"\n", ts.stdout.String())
}
