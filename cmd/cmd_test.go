package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/vsh/core/history"
	"github.com/josephlewis42/vsh/core/logger"
	"github.com/josephlewis42/vsh/core/value"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath = filepath.Join(t.TempDir(), "uninitialized")
	colorMode = ""
	commandLine = ""
	historyLimit = 0
	reportJSON = false
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	oldColor := value.ColorEnabled()
	t.Cleanup(func() { value.SetColor(oldColor) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func stubExit(t *testing.T) *int {
	t.Helper()
	code := -1
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = os.Exit })
	return &code
}

func TestParseCmd(t *testing.T) {
	cases := map[string]string{
		"pipe":         `ls | grep "go" > matches.txt`,
		"statements":   `cd /tmp; echo 1 2.5 true; ;`,
		"unterminated": `echo "oops`,
		"dangling":     `ls |`,
	}

	for tn, line := range cases {
		t.Run(tn, func(t *testing.T) {
			g := goldie.New(
				t,
				goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
				goldie.WithDiffEngine(goldie.ColoredDiff),
				goldie.WithTestNameForDir(true),
			)

			out, err := execute(t, "parse", line)
			if err != nil {
				t.Fatal(err)
			}
			g.Assert(t, tn, []byte(out))
		})
	}
}

func TestBuiltinsCmd(t *testing.T) {
	out, err := execute(t, "builtins")
	assert.Nil(t, err)
	assert.Equal(t, "cd\nexit\nls\npwd\n", out)
}

func TestCommandFlag(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		code := stubExit(t)
		out, err := execute(t, "--color", "never", "-c", `"hi"; 1 | cat`)
		assert.Nil(t, err)
		assert.Equal(t, "\"hi\"\n1\n", out)
		assert.Equal(t, -1, *code, "exit isn't called on success")
	})

	t.Run("failure", func(t *testing.T) {
		code := stubExit(t)
		out, err := execute(t, "--color", "never", "-c", `"hi"; ls /nonexistent-vsh-dir`)
		assert.Nil(t, err)
		assert.True(t, strings.HasPrefix(out, "\"hi\"\nError: "), out)
		assert.Contains(t, out, "Exited With status 50")
		assert.Equal(t, 1, *code)
	})

	t.Run("bad color", func(t *testing.T) {
		stubExit(t)
		_, err := execute(t, "--color", "sometimes", "-c", "1")
		assert.Error(t, err)
	})
}

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	stubExit(t)

	_, err := execute(t, "--config", dir, "init")
	assert.Nil(t, err)
	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.Nil(t, err)

	// Lines run with -c are recorded in the configured event log.
	_, err = execute(t, "--config", dir, "--color", "never", "-c", "pwd")
	assert.Nil(t, err)

	fd, err := os.Open(filepath.Join(dir, "events.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()

	var lines []string
	assert.Nil(t, logger.ReadJSONLinesLog(fd, func(le *logger.LogEntry) {
		lines = append(lines, le.Line)
	}))
	assert.Equal(t, []string{"pwd"}, lines)

	out, err := execute(t, "--config", dir, "logs", "report", "--json")
	assert.Nil(t, err)

	var report map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, float64(1), report["log_entries"])
}

func TestHistoryCmd(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", dir, "init")
	assert.Nil(t, err)

	store, err := history.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"ls", "pwd", "cd /tmp"} {
		_, err := store.AddCmd(line)
		assert.Nil(t, err)
	}
	assert.Nil(t, store.Close())

	out, err := execute(t, "--config", dir, "history")
	assert.Nil(t, err)
	assert.Equal(t, "    1  ls\n    2  pwd\n    3  cd /tmp\n", out)

	out, err = execute(t, "--config", dir, "history", "-n", "1")
	assert.Nil(t, err)
	assert.Equal(t, "    1  cd /tmp\n", out)
}

func TestHistoryCmd_uninitialized(t *testing.T) {
	_, err := execute(t, "history")
	assert.Error(t, err)
}

func TestLogsReportCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	fd, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	session := logger.NewJSONLinesRecorder(fd).NewSession()
	assert.Nil(t, session.RecordLine("ls | grep go", []value.Value{value.ProcessOutput{}}))
	assert.Nil(t, session.RecordLine("cd /missing", []value.Value{value.NewError(value.FileNotFound, "missing")}))
	assert.Nil(t, fd.Close())

	out, err := execute(t, "logs", "report", path)
	assert.Nil(t, err)
	assert.Contains(t, out, "log_entries: 2")
	assert.Contains(t, out, "grep: 1")
	assert.Contains(t, out, "cd /missing")
}
