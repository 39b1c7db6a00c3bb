package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallcolle/internal/testsupport"
)

func runCLI(t *testing.T, configPath string, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeBuiltinToolsConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[tools]\nresizer = \"builtin\"\noptimizer = \"builtin\"\n\n[logging]\nformat = \"json\"\nlevel = \"error\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCLIBuildCommand(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteContributor(t, root, "jdoe", testsupport.Contributor{
		Name:     "Jane Doe",
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Wallpapers: []testsupport.Wallpaper{
			{Index: 0, Format: "png", Title: "Blue Hour", License: "CC0", Tags: []string{"16-9"}},
		},
	})
	packPath := testsupport.WriteManifest(t, root, "demo-pack", "jdoe:0\n")
	dest := filepath.Join(t.TempDir(), "out")
	configPath := writeBuiltinToolsConfig(t)

	out, _, err := runCLI(t, configPath, []string{"build", "--pack", packPath, "--dest", dest})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "Demo.pack--jdoe--BlueHour") {
		t.Fatalf("summary table missing entry name: %q", out)
	}
	if !strings.Contains(out, "Wrote 1 entries for pack demo-pack") {
		t.Fatalf("unexpected completion line: %q", out)
	}

	album := filepath.Join(dest, "usr/share/background-properties", "Demo.pack.xml")
	if _, err := os.Stat(album); err != nil {
		t.Fatalf("expected album descriptor: %v", err)
	}
}

func TestCLIBuildRejectsUnknownVariant(t *testing.T) {
	configPath := writeBuiltinToolsConfig(t)
	_, _, err := runCLI(t, configPath, []string{"build", "--pack", "x", "--dest", "y", "--variant", "sepia"})
	if err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Fatalf("expected unknown variant error, got %v", err)
	}
}

func TestCLIDepsWithBuiltinTransforms(t *testing.T) {
	configPath := writeBuiltinToolsConfig(t)
	out, _, err := runCLI(t, configPath, []string{"deps"})
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	if !strings.Contains(out, "no external tools required") {
		t.Fatalf("unexpected deps output: %q", out)
	}
}

func TestCLIConfigShow(t *testing.T) {
	configPath := writeBuiltinToolsConfig(t)
	out, _, err := runCLI(t, configPath, []string{"config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "resizer = 'builtin'") && !strings.Contains(out, "resizer = \"builtin\"") {
		t.Fatalf("expected effective resizer in output: %q", out)
	}
	if !strings.Contains(out, configPath) {
		t.Fatalf("expected config path in output: %q", out)
	}
}

func TestCLIConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, "", []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite refuses to clobber the file.
	if _, _, err := runCLI(t, "", []string{"config", "init", "--path", target}); err == nil {
		t.Fatal("expected init to refuse overwriting an existing file")
	}
}
