package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textcleaner/internal/cli"
	"github.com/askiada/go-textcleaner/internal/config"
	"github.com/askiada/go-textcleaner/pkg/textcleaner"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	cmd := cli.NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func TestStepsCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "steps")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(textcleaner.Keys()))
	assert.True(t, strings.HasPrefix(lines[0], "REMOVE_HTML_TAGS "))
	assert.Contains(t, lines[0], "replace every HTML tag with a space")
	assert.True(t, strings.HasPrefix(lines[10], "REMOVE_DIGITS "))
}

func TestCleanStdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "<b>Hello</b>  World\nSecond   line\n",
		"clean", "--steps", "remove_html_tags,remove-extra-whitespaces", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, " Hello World\nSecond line\n", out)
}

func TestCleanDash(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "ABC\n", "clean", "-s", "LOWERCASE", "--log-level", "off", "-")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestCleanDefaultProfile(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "a  b\tc\n", "clean", "--log-level", "off")
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", out)
}

func TestCleanFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "in.html")
	output := filepath.Join(dir, "out.txt")

	var in, want strings.Builder
	for range 200 {
		in.WriteString("<p>Crème Brûlée: 2 for 10€!</p> see www.example.com\n")
		want.WriteString(" creme brulee for eur see \n")
	}
	require.NoError(t, os.WriteFile(input, []byte(in.String()), 0o600))

	_, _, err := execute(t, "",
		"clean", "--profile", "search", "--concurrency", "4", "--output", output, "--log-level", "off", input)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))
}

func TestCleanWhole(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "a\tb\nc", "clean", "--whole", "--steps", "replace_newlines_tabs", "--log-level", "off")
	require.NoError(t, err)
	assert.Equal(t, "a b c", out)
}

func TestCleanConfigProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "textcleaner.toml")
	doc := "log_level = \"off\"\nprofile = \"digits\"\n\n[profiles.digits]\nsteps = [\"remove_digits\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, stderr, err := execute(t, "a1b2\n", "clean", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)
	assert.Empty(t, stderr)
}

func TestCleanErrors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "x\n", "clean", "--steps", "lowercase,bogus")
	require.ErrorIs(t, err, textcleaner.ErrUnknownStep)

	_, _, err = execute(t, "x\n", "clean", "--profile", "missing")
	require.ErrorIs(t, err, config.ErrUnknownProfile)

	_, _, err = execute(t, "", "clean", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "clean", "--log-format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)

	_, _, err = execute(t, "", "clean", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	_, _, err = execute(t, "", "clean", "a", "b")
	require.Error(t, err)
}

func TestCleanMeasure(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "One\nTwo\n",
		"clean", "--steps", "lowercase", "--measure", "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)

	stages := map[string]float64{}
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "stage timing" {
			stages[entry["stage"].(string)] = entry["count"].(float64)
		}
		if entry["message"] == "text cleaned" {
			assert.EqualValues(t, 2, entry["lines"])
			assert.Equal(t, "LOWERCASE", entry["sequence"])
		}
	}
	assert.EqualValues(t, 2, stages["01_LOWERCASE"])
	assert.EqualValues(t, 2, stages["write"])
}

func TestCleanGraph(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pipeline.dot")

	_, _, err := execute(t, "A1\nB2\n",
		"clean", "--steps", "lowercase,remove_digits", "--graph", path, "--log-level", "off")
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "digraph")
	assert.Contains(t, string(got), "01_LOWERCASE")
	assert.Contains(t, string(got), "02_REMOVE_DIGITS")
	assert.Contains(t, string(got), "write")
}

func TestProfilesCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "* basic")
	assert.Contains(t, out, "  search")
	assert.Contains(t, out, "REMOVE_HTML_TAGS, DECODE_HTML_ENTITIES")
}

func TestConfigCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "config", "--log-format", "json")
	require.NoError(t, err)

	cfg, err := config.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, config.Default().Profiles, cfg.Profiles)
}
