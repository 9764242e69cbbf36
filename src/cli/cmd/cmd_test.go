package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/5ht2/heartbeat/src/badge"
	"github.com/5ht2/heartbeat/src/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	cfgFile, verbose = "", false
	bgLabel, bgMessage, bgLabelColour, bgLogo, bgStatus = "", "", "", "", ""
	bgColour, bgOutput = badge.DefaultColour, "-"
	bgLogoWidth = 0
	bgFontFile, bgStatsFile = "", ""
	bgFailFast = false
	idCount = 1
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yml")
}

const statsJSON = `{"last_seen": "2001-01-01T00:00:00Z", "total_beats": 12345, "total_visits": 99, "longest_absence": 60}`

func writeFixture(t *testing.T) (cfgPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	outDir = filepath.Join(dir, "out")
	statsPath := filepath.Join(dir, "stats.json")
	require.NoError(t, os.WriteFile(statsPath, []byte(statsJSON), 0o644))

	cfgPath = filepath.Join(dir, "heartbeat.yml")
	content := fmt.Sprintf(`
stats_file: %q
badges:
  output_dir: %q
  items:
    - name: total-beats
      label: Total Beats
      message: "{total_beats}"
      colour: "#6495ed"
    - name: visits
      label: Visits
      message: "{total_visits}"
      colour: warning
      logo: builtin:heart
snowflake:
  node: 5
`, statsPath, outDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath, outDir
}

func TestBadgeGenerateAdHocStdout(t *testing.T) {
	out, err := execute(t, "badge", "generate", "--config", noConfig(t),
		"--label", "Total Beats", "--message", "12,345", "--colour", "#6495ed")
	require.NoError(t, err)

	want := badge.RenderBadge("Total Beats", "12,345", "#6495ed", "", "", 0)
	assert.Equal(t, want+"\n", out)
}

func TestBadgeGenerateAdHocFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "error.svg")
	out, err := execute(t, "badge", "generate", "--config", noConfig(t),
		"--message", "Error", "--status", "critical", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<title>Error</title>`)
	assert.Contains(t, string(data), `fill="#e05d44"`)
}

func TestBadgeGenerateAdHocInvalidColour(t *testing.T) {
	_, err := execute(t, "badge", "generate", "--config", noConfig(t),
		"--message", "x", "--colour", "notacolour")
	require.ErrorIs(t, err, badge.ErrInvalidColour)
}

func TestBadgeGenerateFromConfig(t *testing.T) {
	cfgPath, outDir := writeFixture(t)

	out, err := execute(t, "badge", "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "total-beats")
	assert.Contains(t, out, "2 badges")

	beats, err := os.ReadFile(filepath.Join(outDir, "total-beats.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(beats), "<title>Total Beats: 12,345</title>")

	visits, err := os.ReadFile(filepath.Join(outDir, "visits.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(visits), `fill="#dfb317"`)
	assert.Contains(t, string(visits), `xlink:href="data:image/svg+xml;base64,`)
}

func TestBadgeGenerateNamed(t *testing.T) {
	cfgPath, outDir := writeFixture(t)

	_, err := execute(t, "badge", "generate", "--config", cfgPath, "visits")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "visits.svg"))
	assert.NoFileExists(t, filepath.Join(outDir, "total-beats.svg"))

	_, err = execute(t, "badge", "generate", "--config", cfgPath, "nope")
	require.ErrorContains(t, err, "no matching badge items")
}

func TestBadgeGenerateNoItems(t *testing.T) {
	_, err := execute(t, "badge", "generate", "--config", noConfig(t))
	require.ErrorContains(t, err, "no badge items configured")
}

func TestBadgeMeasure(t *testing.T) {
	out, err := execute(t, "badge", "measure", "--config", noConfig(t), "Last Online", "——")
	require.NoError(t, err)
	assert.Contains(t, out, "61.5474")
	assert.Contains(t, out, "22.0000")
	assert.Contains(t, out, "23.0000")
	assert.Contains(t, out, "Verdana")
}

func TestIDNewAndInspect(t *testing.T) {
	cfgPath, _ := writeFixture(t)

	out, err := execute(t, "id", "new", "--config", cfgPath, "-n", "3")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 3)

	id, err := snowflake.Parse(lines[0])
	require.NoError(t, err)
	assert.Equal(t, uint16(5), id.Node())

	out, err = execute(t, "id", "inspect", "--config", cfgPath, lines[0])
	require.NoError(t, err)
	assert.Contains(t, out, "node:      5")

	_, err = execute(t, "id", "new", "--config", cfgPath, "-n", "0")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "heartbeat dev"), out)
}
