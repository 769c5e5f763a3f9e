package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"shotsync/internal/config"
)

const testWorkOrder = `Xytech Workorder 1107

Producer: Joan Jett
Operator: John Doe
Job: Dirtfixing

Location:
/hpsans13/production/starwars/reel1/partA/1920x1080
/hpsans12/production/starwars/reel1/VFX/Hydraulx
/hpsans13/production/starwars/reel1/VFX/Framestore

Notes:
Please clean files noted per Colorist Tom Brady
`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DatabasePath = filepath.Join(base, "shotsync.db")

	configPath := filepath.Join(base, "config.toml")
	encoded, err := toml.Marshal(cfgVal)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{cfg: &cfgVal, configPath: configPath, baseDir: base}
}

func (env *cliTestEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(env.baseDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func TestCLIReconcileToCSV(t *testing.T) {
	env := setupCLITestEnv(t)

	orderPath := env.writeFile(t, "Xytech_20230325.txt", testWorkOrder)
	exportPath := env.writeFile(t, "Baselight_GLopez_20230325.txt",
		"/images1/starwars/reel1/partA/1920x1080 32 33 34\n"+
			"/images1/starwars/reel1/VFX/Hydraulx 1251 1252 1253 1260\n")

	out, _, err := runCLI(t, []string{
		"reconcile", "-f", exportPath, "-x", orderPath, "-o", "csv",
	}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	requireContains(t, out, "Baselight_GLopez_20230325.txt: 2 lines, 3 records")
	requireContains(t, out, "Wrote worklist to")

	csvContent, err := os.ReadFile(filepath.Join(env.cfg.Paths.OutputDir, "output.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	requireContains(t, string(csvContent), "Joan Jett/John Doe/Dirtfixing/Please clean files noted per Colorist Tom Brady")
	requireContains(t, string(csvContent), `"/hpsans13/production/starwars/reel1/partA/1920x1080"/32-34`)
	requireContains(t, string(csvContent), `"/hpsans12/production/starwars/reel1/VFX/Hydraulx"/1251-1253`)
	requireContains(t, string(csvContent), `"/hpsans12/production/starwars/reel1/VFX/Hydraulx"/1260`)
}

func TestCLIReconcileToDBAndQuery(t *testing.T) {
	env := setupCLITestEnv(t)

	orderPath := env.writeFile(t, "Xytech_20230325.txt", testWorkOrder)
	exportPath := env.writeFile(t, "Flame_DFlowers_20230323.txt",
		"/net/flame-archive Avatar/reel1/partA/1920x1080 5000 5001 5002\n")

	_, _, err := runCLI(t, []string{
		"reconcile", "-f", exportPath, "-x", orderPath, "-o", "db",
	}, env.configPath)
	if err != nil {
		t.Fatalf("reconcile to db: %v", err)
	}

	out, _, err := runCLI(t, []string{"query", "by-user", "DFlowers"}, env.configPath)
	if err != nil {
		t.Fatalf("query by-user: %v", err)
	}
	requireContains(t, out, "/hpsans13/production/starwars/reel1/partA/1920x1080")
	requireContains(t, out, "5000-5002")

	out, _, err = runCLI(t, []string{"query", "users", "flame"}, env.configPath)
	if err != nil {
		t.Fatalf("query users: %v", err)
	}
	requireContains(t, out, "DFlowers")

	out, _, err = runCLI(t, []string{"query", "before-date", "flame", "2023-03-24"}, env.configPath)
	if err != nil {
		t.Fatalf("query before-date: %v", err)
	}
	requireContains(t, out, "5000-5002")

	out, _, err = runCLI(t, []string{"query", "on-storage", "hpsans13", "2023-03-23"}, env.configPath)
	if err != nil {
		t.Fatalf("query on-storage: %v", err)
	}
	requireContains(t, out, "5000-5002")

	out, _, err = runCLI(t, []string{"db", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("db show: %v", err)
	}
	requireContains(t, out, "Flame_DFlowers_20230323.txt")

	if _, _, err := runCLI(t, []string{"db", "clear"}, env.configPath); err == nil {
		t.Fatal("db clear without --force should fail")
	}
	if _, _, err := runCLI(t, []string{"db", "clear", "--force"}, env.configPath); err != nil {
		t.Fatalf("db clear --force: %v", err)
	}
	out, _, err = runCLI(t, []string{"query", "by-user", "DFlowers"}, env.configPath)
	if err != nil {
		t.Fatalf("query after clear: %v", err)
	}
	requireContains(t, out, "No matching records")
}

func TestCLIConfigInit(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
}
