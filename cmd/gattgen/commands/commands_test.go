package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gattgen/cmd/gattgen/internal/clierr"
	"github.com/bartekus/gattgen/internal/runner"
)

const repoRoot = "../../.."

func TestVersion(t *testing.T) {
	t.Setenv("GATTGEN_VERSION", "1.2.3")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gattgen version 1.2.3\n", out)
}

func TestGenerateServices_MatchesCommittedCode(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "generate", "services",
		"--input", filepath.Join(repoRoot, "specs", "services"),
		"--type", "gatt.Service",
		"--output", dir,
		"--ext", ".xml")
	require.NoError(t, err)
	assert.Contains(t, out, "written: services")

	got, err := os.ReadFile(filepath.Join(dir, "service_gen.go"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(repoRoot, "internal", "gatt", "service_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	// Second run leaves the file alone.
	out, err = execute(t, "generate", "services",
		"--input", filepath.Join(repoRoot, "specs", "services"),
		"--type", "gatt.Service",
		"--output", dir,
		"--ext", ".xml")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged: services")
}

func TestGenerateAll_CheckRepositoryConfig(t *testing.T) {
	out, err := execute(t, "generate", "all", "--config", filepath.Join(repoRoot, "gattgen.yaml"), "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "current: services")
	assert.Contains(t, out, "current: characteristics")
}

func TestGenerateAll_JSONSummary(t *testing.T) {
	dir := t.TempDir()
	specs, err := filepath.Abs(filepath.Join(repoRoot, "specs"))
	require.NoError(t, err)

	cfg := "jobs:\n" +
		"  - id: chars\n" +
		"    kind: characteristic\n" +
		"    input: " + filepath.Join(specs, "characteristics") + "\n" +
		"    type: ble.Characteristic\n" +
		"    output: out\n"
	cfgPath := filepath.Join(dir, "gattgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := execute(t, "generate", "all", "--config", cfgPath, "--json")
	require.NoError(t, err)

	var summary runner.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "pass", summary.Status)
	require.Len(t, summary.Jobs, 1)
	assert.Equal(t, runner.StatusWritten, summary.Jobs[0].Status)
	assert.Equal(t, 4, summary.Jobs[0].Members)
	assert.FileExists(t, filepath.Join(dir, "out", "characteristic_gen.go"))
}

func TestExpand(t *testing.T) {
	out, err := execute(t, "expand", "180F", "2A19")
	require.NoError(t, err)
	assert.Equal(t, "0000180F-0000-1000-8000-00805F9B34FB\n00002A19-0000-1000-8000-00805F9B34FB\n", out)

	// Malformed codes pass through unless strict.
	out, err = execute(t, "expand", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "000000ZZ-0000-1000-8000-00805F9B34FB\n", out)
}

func TestExpand_StrictPrintsNothingOnFailure(t *testing.T) {
	out, err := execute(t, "expand", "--strict", "180F", "ZZZZ")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitInput, clierr.ExitCodeOf(err))
	assert.Empty(t, out)
}

func TestGenerateAll_ClashingConstantsWriteNothing(t *testing.T) {
	dir := t.TempDir()
	writeSpec := func(sub, content string) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, sub, "current_time.xml"), []byte(content), 0o644))
	}
	writeSpec("services", `<Service name="Current Time" uuid="1805"/>`)
	writeSpec("characteristics", `<Characteristic name="Current Time" uuid="2A2B"/>`)

	writeConfig := func(charPrefix string) string {
		cfg := "jobs:\n" +
			"  - id: services\n" +
			"    kind: service\n" +
			"    input: services\n" +
			"    type: gatt.Service\n" +
			"    output: out\n" +
			"  - id: characteristics\n" +
			"    kind: characteristic\n" +
			"    input: characteristics\n" +
			"    type: gatt.Characteristic\n" +
			"    output: out\n"
		if charPrefix != "" {
			cfg += "    prefix: " + charPrefix + "\n"
		}
		path := filepath.Join(dir, "gattgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
		return path
	}

	cfgPath := writeConfig("")
	_, err := execute(t, "generate", "all", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, clierr.ExitInput, clierr.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "CURRENT_TIME")
	assert.NoDirExists(t, filepath.Join(dir, "out"))

	cfgPath = writeConfig("CHAR_")
	_, err = execute(t, "generate", "all", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "out", "service_gen.go"))
	assert.FileExists(t, filepath.Join(dir, "out", "characteristic_gen.go"))
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "services", filepath.Join(repoRoot, "specs", "services"), "--ext", ".xml")
	require.NoError(t, err)

	assert.Contains(t, out, "## gatt.Service (3 members)")
	assert.Contains(t, out, "| Constant | Name | Short | UUID |")
	assert.Contains(t, out, "| BATTERY_SERVICE | Battery Service | 180F | 0000180F-0000-1000-8000-00805F9B34FB |")
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	services := filepath.Join(repoRoot, "specs", "services")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "unknown flag",
			args: []string{"generate", "services", "--nope"},
			want: clierr.ExitUsage,
		},
		{
			name: "bad type name",
			args: []string{"generate", "services", "--input", services, "--type", "not a type", "--output", dir},
			want: clierr.ExitUsage,
		},
		{
			name: "missing config",
			args: []string{"generate", "all", "--config", filepath.Join(dir, "absent.yaml")},
			want: clierr.ExitUsage,
		},
		{
			name: "unknown job",
			args: []string{"generate", "all", "--config", filepath.Join(repoRoot, "gattgen.yaml"), "--check", "--only", "nope"},
			want: clierr.ExitUsage,
		},
		{
			name: "missing input",
			args: []string{"generate", "services", "--input", filepath.Join(dir, "absent"), "--type", "gatt.Service", "--output", dir},
			want: clierr.ExitInput,
		},
		{
			name: "strict expand",
			args: []string{"expand", "--strict", "ZZ"},
			want: clierr.ExitInput,
		},
		{
			name: "stale output",
			args: []string{"generate", "services", "--input", services, "--type", "gatt.Service", "--output", dir, "--check"},
			want: clierr.ExitStale,
		},
		{
			name: "inspect unknown kind",
			args: []string{"inspect", "descriptors", services},
			want: clierr.ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, clierr.ExitCodeOf(err))
		})
	}
}
