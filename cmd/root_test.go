package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// run executes the command tree with args, fresh flag state and an empty
// config home.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithConfigHome(t, t.TempDir(), args...)
}

func runWithConfigHome(t *testing.T, configHome string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestGenerate_IconBatch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")
	out, err := run(t, "--type", "icon", "--palette", "gold", "--count", "3", "--size", "16", "--seed", "1", "--out", dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "icon_gold_000.png,icon_gold_001.png,icon_gold_002.png"
	if got := strings.Join(listDir(t, dir), ","); got != want {
		t.Errorf("files = %s, want %s", got, want)
	}
	if !strings.Contains(out, "Generating 3 icon sprites (16x16, palette=gold)") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "Done. 3 sprites saved to") {
		t.Errorf("missing completion line:\n%s", out)
	}
}

func TestGenerate_Subcommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "generate", "-t", "projectile", "-n", "1", "-o", dir); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := listDir(t, dir); len(got) != 1 || got[0] != "projectile_fire_000.png" {
		t.Errorf("files = %v", got)
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	if _, err := run(t, "--size", "8", "--palette", "ice", "--seed", "7", "--count", "2", "--out", a); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--size", "8", "--palette", "ice", "--seed", "7", "--count", "2", "--out", b); err != nil {
		t.Fatal(err)
	}
	for _, name := range listDir(t, a) {
		da, _ := os.ReadFile(filepath.Join(a, name))
		db, _ := os.ReadFile(filepath.Join(b, name))
		if !bytes.Equal(da, db) {
			t.Errorf("%s differs between seeded runs", name)
		}
	}
}

func TestGenerate_InvalidChoicesFailFast(t *testing.T) {
	tests := [][]string{
		{"--type", "boss"},
		{"--palette", "plasma"},
		{"--scale", "0"},
	}
	for _, args := range tests {
		dir := filepath.Join(t.TempDir(), "out")
		_, err := run(t, append(args, "--out", dir)...)
		if err == nil {
			t.Errorf("%v: expected error", args)
			continue
		}
		if _, ok := err.(usageError); !ok {
			t.Errorf("%v: err = %T, want usageError", args, err)
		}
		if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
			t.Errorf("%v: output dir should not exist", args)
		}
	}
}

func TestGenerate_ConfigDefaultsAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "config.yml")
	data := "generate:\n  palette: poison\n  type: icon\n  count: 2\n  size: 12\n  out: " + dir + "\n"
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "--config", cfg, "--palette", "dark"); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "icon_dark_000.png,icon_dark_001.png"
	if got := strings.Join(listDir(t, dir), ","); got != want {
		t.Errorf("files = %s, want %s", got, want)
	}
}

func TestGenerate_DefaultConfigLocation(t *testing.T) {
	dir := t.TempDir()
	xdg := t.TempDir()
	if err := os.MkdirAll(filepath.Join(xdg, "spritegen"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := "generate:\n  palette: neutral\n  count: 1\n  out: " + dir + "\n"
	if err := os.WriteFile(filepath.Join(xdg, "spritegen", "config.yml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runWithConfigHome(t, xdg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := listDir(t, dir); len(got) != 1 || got[0] != "enemy_neutral_000.png" {
		t.Errorf("files = %v, want [enemy_neutral_000.png]", got)
	}
}

func TestGenerate_BadConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(cfg, []byte("generate:\n  palette: plasma\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "--config", cfg, "--out", t.TempDir()); err == nil {
		t.Fatal("invalid config should fail")
	}
}

func TestPalettes_ListsAll(t *testing.T) {
	out, err := run(t, "palettes")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"fire", "ice", "poison", "dark", "neutral", "gold", "#ff5014"} {
		if !strings.Contains(out, name) {
			t.Errorf("palettes output missing %q:\n%s", name, out)
		}
	}
}
