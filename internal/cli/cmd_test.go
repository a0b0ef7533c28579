package cli

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testApp returns an App that never reports an interactive terminal.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Format:        formatter.FormatText,
		IsInteractive: func() bool { return false },
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// executeCmd runs the root command with args over scripted input and returns
// stdout and stderr with ANSI escapes removed.
func executeCmd(t *testing.T, app *App, input string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(stdout.String(), ""), ansiPattern.ReplaceAllString(stderr.String(), ""), err
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestRoot_MenuBuildsTetrad(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), lines("4", "Field", "Earth", "Heaven", "", "Aim", "n", "n"))
	require.NoError(t, err)

	assert.Contains(t, out, menuPrompt)
	assert.Contains(t, out, "--- Creating a Tetrad ---")
	assert.Contains(t, out, "Tetrad Name: Field")
	assert.Contains(t, out, "Instrumental: Default Instrumental")
	assert.Contains(t, out, "Earth <--[AB_ground_ideal]--> Heaven (A<>B)")
}

func TestRoot_ChoiceArgument(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), lines("Pair", "Being", "Becoming"), "2")
	require.NoError(t, err)

	assert.NotContains(t, out, menuPrompt)
	assert.Contains(t, out, "Essence: Being")
	assert.Contains(t, out, "Existence: Becoming")
	assert.NotContains(t, out, "CONNECTIVES")
}

func TestRoot_InvalidChoices(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "not a number", input: "seven", want: invalidInputMessage},
		{name: "unsupported number", input: "9", want: invalidNumberMessage},
		{name: "zero", input: "0", want: invalidNumberMessage},
		{name: "empty input", input: "", want: invalidInputMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := executeCmd(t, testApp(t), tt.input+"\n")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "--- Creating")
		})
	}
}

func TestRoot_PermutationsIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	for _, choice := range []string{"p", "P", "Permutations"} {
		out, _, err := executeCmd(t, testApp(t), lines(choice, "Sun", "Moon", "Earth"))
		require.NoError(t, err)
		assert.Contains(t, out, "--- Six Permutations Generator ---")
		assert.Contains(t, out, "Sun → Moon → Earth")
		assert.Contains(t, out, "Earth → Moon → Sun")
	}
}

func TestRoot_BuildErrorIsReported(t *testing.T) {
	t.Parallel()
	out, errOut, err := executeCmd(t, testApp(t), lines("Pair", "Being"), "2")
	require.NoError(t, err)

	assert.Contains(t, errOut, "Error creating dyad:")
	assert.Contains(t, errOut, "reading Existence")
	assert.NotContains(t, out, "DYAD DETAILS")
}

func TestRoot_Monad(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), lines("1", "Unity", "first", "second", ""))
	require.NoError(t, err)

	assert.Contains(t, out, "Monad Name: Unity")
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")
}

func TestBuild_YAMLExport(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t),
		lines("Field", "g", "i", "in", "d", "n", "y"),
		"build", "4", "--format", "yaml")
	require.NoError(t, err)

	idx := strings.Index(out, "\nsystem: ")
	require.GreaterOrEqual(t, idx, 0)
	var got formatter.SystemDoc
	require.NoError(t, yaml.Unmarshal([]byte(out[idx+1:]), &got))

	assert.Equal(t, "Tetrad", got.System)
	assert.Equal(t, 4, got.Arity)
	require.Len(t, got.Connectives, 6)
	for _, c := range got.Connectives {
		assert.False(t, c.Defined)
	}
}

func TestBuild_FormFallsBackWithoutTerminal(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), lines("Pair", "Being", "Becoming"), "build", "2", "--form")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter Dyad's Essence: ")
	assert.Contains(t, out, "Existence: Becoming")
}

func TestBuild_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()
	_, _, err := executeCmd(t, testApp(t), "", "build", "4", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPermute_Arguments(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), "", "permute", "A", "B", "C")
	require.NoError(t, err)

	want := []string{
		"1. Expansion: A → B → C",
		"2. Interaction: A → C → B",
		"3. Concentration: B → A → C",
		"4. Identity: B → C → A",
		"5. Order: C → A → B",
		"6. Freedom: C → B → A",
	}
	last := -1
	for _, w := range want {
		idx := strings.Index(out, w)
		require.GreaterOrEqual(t, idx, 0, "missing %q", w)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestPermute_ArgumentErrors(t *testing.T) {
	t.Parallel()
	_, _, err := executeCmd(t, testApp(t), "", "permute", "A", "B")
	assert.Error(t, err)

	_, _, err = executeCmd(t, testApp(t), "", "permute", "A", "B#", "C")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Colouring term contains invalid characters")
}

func TestArities(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), "", "arities")
	require.NoError(t, err)
	for _, name := range []string{"Monad", "Dyad", "Triad", "Tetrad", "Pentad", "Hexad", "Heptad", "Octad", "Dodecad"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Quintessence or significance")
}

func TestPositions_JSON(t *testing.T) {
	t.Parallel()
	out, _, err := executeCmd(t, testApp(t), "", "positions", "5", "--format", "json")
	require.NoError(t, err)

	var doc formatter.PositionsDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Pentad", doc.System)
	assert.Equal(t, []string{
		"Intrinsic Limit", "Inner Upper Limit", "Inner Lower Limit", "Outer Upper Limit", "Outer Lower Limit",
	}, doc.Positions)
}

func TestPositions_Unsupported(t *testing.T) {
	t.Parallel()
	_, _, err := executeCmd(t, testApp(t), "", "positions", "9")
	assert.Error(t, err)
}
