package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/delaneyj/figspec/preferences"
	"github.com/delaneyj/figspec/report"
	"github.com/delaneyj/figspec/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const fileExport = "../../figma/testdata/file.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })
	err := newApp().Run(context.Background(), append([]string{"figspec"}, args...))
	return buf.String(), err
}

func TestCSS(t *testing.T) {
	out, err := run(t, "css", "--node", "1:2", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "font-size: 16px;")
	assert.Contains(t, out, "color: #000000;")

	out, err = run(t, "--unit", "rem", "--color", "rgb", "css", "--node", "1:2", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "font-size: 1rem;")
	assert.Contains(t, out, "color: rgb(0 0 0 / 1);")

	_, err = run(t, "css", "--node", "9:9", fileExport)
	assert.ErrorIs(t, err, report.ErrNodeNotFound)

	_, err = run(t, "--unit", "em", "css", "--node", "1:2", fileExport)
	assert.ErrorIs(t, err, preferences.ErrLengthUnit)

	_, err = run(t, "css", "--node", "1:2")
	assert.ErrorIs(t, err, errMissingFile)
}

func TestPreferencesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	// a missing file means defaults
	out, err := run(t, "--preferences", path, "css", "--node", "1:2", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "font-size: 16px;")

	p := preferences.Default()
	p.LengthUnit = preferences.UnitRem
	require.NoError(t, preferences.Save(path, p))
	out, err = run(t, "--preferences", path, "css", "--node", "1:2", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "font-size: 1rem;")

	// flags win over the file
	out, err = run(t, "--preferences", path, "--unit", "px", "css", "--node", "1:2", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "font-size: 16px;")
}

func TestTables(t *testing.T) {
	out, err := run(t, "info", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "Design System")
	assert.Contains(t, out, "FINGERPRINT")

	out, err = run(t, "canvases", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1")
	assert.Contains(t, out, "Page 2")

	_, err = run(t, "canvases", "../../figma/testdata/nodes.json")
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree", fileExport)
	require.NoError(t, err)
	assert.Contains(t, out, "Card (FRAME #1:1)")
	assert.Contains(t, out, "[hidden]")
}

func TestReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	_, err := run(t, "report", "--node", "1:1", "--out", path, fileExport)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<td class="property">background-color</td>`)
}

func TestLoadImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-1.png"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2:1.svg"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	images, err := loadImages(dir)
	require.NoError(t, err)
	assert.Len(t, images, 2)
	assert.Contains(t, images["1:1"], "1-1.png")
	assert.Contains(t, images["2:1"], "file://")

	images, err = loadImages("")
	require.NoError(t, err)
	assert.Empty(t, images)

	_, err = loadImages(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestSavePreferences(t *testing.T) {
	var msgs []tea.Msg
	saveTo := func(path string) func(preferences.Preferences) {
		var save func(preferences.Preferences)
		cmd := &cli.Command{
			Name:  "save",
			Flags: []cli.Flag{&cli.StringFlag{Name: preferencesKey}},
			Action: func(_ context.Context, cmd *cli.Command) error {
				save = savePreferences(cmd, func(msg tea.Msg) { msgs = append(msgs, msg) })
				return nil
			},
		}
		require.NoError(t, cmd.Run(context.Background(), []string{"save", "--preferences", path}))
		return save
	}

	p := preferences.Default()
	p.LengthUnit = preferences.UnitRem

	path := filepath.Join(t.TempDir(), "prefs.yaml")
	saveTo(path)(p)
	assert.Empty(t, msgs)
	loaded, err := preferences.Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	// failures reach the view instead of the terminal
	saveTo(filepath.Join(t.TempDir(), "missing", "prefs.yaml"))(p)
	require.Len(t, msgs, 1)
	require.IsType(t, tui.ErrMsg{}, msgs[0])
	assert.Error(t, msgs[0].(tui.ErrMsg).Err)
}
