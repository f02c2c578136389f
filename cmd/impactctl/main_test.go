package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/config"
	"impactlens/internal/llm"
	"impactlens/internal/services/reports"
)

type echoLLM struct{ got llm.Request }

func (e *echoLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	e.got = req
	return "report text", nil
}
func (e *echoLLM) Model() string { return "echo" }

func TestReadMetrics(t *testing.T) {
	raw, err := readMetrics(nil, "")
	require.NoError(t, err)
	assert.Equal(t, reports.SampleMetrics, raw)

	raw, err = readMetrics(strings.NewReader(`{"a":1}`), "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, os.WriteFile(path, []byte(`{oops`), 0o600))
	_, err = readMetrics(nil, path)
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestReportCommand(t *testing.T) {
	fake := &echoLLM{}
	e := &env{newClient: func(context.Context, config.LLMConfig) (llm.Client, error) { return fake, nil }}
	cmd := newReportCmd(e)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"environmental":{"emissions":7}}`))
	cmd.SetArgs([]string{"--file", "-"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "report text\n", out.String())
	assert.Contains(t, fake.got.User, `"emissions": 7`)
}

func TestSeedCommand(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "seed.db"))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"seed", "--workspace", "demo", "--investments", "3", "--seed", "9"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `seeded workspace "demo"`)
	assert.Contains(t, out.String(), "3 investments")
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "up"})
	assert.ErrorContains(t, root.ExecuteContext(context.Background()), "DATABASE_URL")

	root.SetArgs([]string{"migrate", "sideways"})
	assert.Error(t, root.ExecuteContext(context.Background()))
}
