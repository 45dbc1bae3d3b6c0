package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, n int) {
	t.Helper()
	for i := range n {
		if err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("f%02d", i)), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	// Keep ~/.config/dircount out of the picture.
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_OK(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 5)

	code, out, _ := run(t, "-w", "10", "-c", "20", dir)
	if code != 0 {
		t.Errorf("exit = %d, want 0 (output %q)", code, out)
	}
	want := fmt.Sprintf("DIRCOUNT OK - %s=5 | %s=5;10;20\n", dir, dir)
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecute_Critical(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 25)

	code, out, _ := run(t, "--warning", "10", "--critical", "20", "--dirs", dir)
	if code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
	if !strings.HasPrefix(out, "DIRCOUNT CRITICAL - ") {
		t.Errorf("output = %q", out)
	}
}

func TestExecute_WarningWithRepeatedDirs(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeFiles(t, a, 1)
	writeFiles(t, b, 7)

	code, out, _ := run(t, "-w", "5", "-c", "10", "-d", a, "-d", b)
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if !strings.Contains(out, a+"=1, "+b+"=7") {
		t.Errorf("output = %q, want both directories in order", out)
	}
}

func TestExecute_Recursive(t *testing.T) {
	top := t.TempDir()
	sub := filepath.Join(top, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, sub, 50)

	code, out, _ := run(t, "-w", "10", "-c", "40", "-r", top)
	if code != 2 {
		t.Errorf("exit = %d, want 2 (output %q)", code, out)
	}
	if !strings.Contains(out, sub+"=50") {
		t.Errorf("output = %q, missing subdirectory", out)
	}
}

func TestExecute_MissingThresholds(t *testing.T) {
	code, out, _ := run(t, t.TempDir())
	if code != 3 {
		t.Errorf("exit = %d, want 3", code)
	}
	if !strings.HasPrefix(out, "DIRCOUNT UNKNOWN - invalid config") {
		t.Errorf("output = %q", out)
	}
}

func TestExecute_NoDirectories(t *testing.T) {
	code, out, _ := run(t, "-w", "1", "-c", "2")
	if code != 3 {
		t.Errorf("exit = %d, want 3", code)
	}
	if !strings.Contains(out, "dirs is required") {
		t.Errorf("output = %q", out)
	}
}

func TestExecute_InvalidWarningRange(t *testing.T) {
	code, out, _ := run(t, "-w", "20:10", "-c", "30", t.TempDir())
	if code != 3 {
		t.Errorf("exit = %d, want 3", code)
	}
	if !strings.Contains(out, `invalid warning range "20:10"`) {
		t.Errorf("output = %q", out)
	}
}

func TestExecute_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	code, out, _ := run(t, "-w", "1", "-c", "2", missing)
	if code != 3 {
		t.Errorf("exit = %d, want 3", code)
	}
	if !strings.HasPrefix(out, "DIRCOUNT UNKNOWN - ") || strings.Contains(out, "|") {
		t.Errorf("output = %q, want UNKNOWN without perfdata", out)
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	code, out, _ := run(t, "--bogus")
	if code != 3 {
		t.Errorf("exit = %d, want 3", code)
	}
	if !strings.HasPrefix(out, "DIRCOUNT UNKNOWN - ") {
		t.Errorf("output = %q", out)
	}
}

func TestExecute_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 8)
	cfgPath := filepath.Join(t.TempDir(), "dircount.yaml")
	yml := fmt.Sprintf("dirs: [%q]\nwarning: \"5\"\ncritical: \"10\"\nlabel: SPOOL\n", dir)
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, _ := run(t, "--config", cfgPath)
	if code != 1 || !strings.HasPrefix(out, "SPOOL WARNING - ") {
		t.Errorf("exit = %d, output = %q, want 1 / SPOOL WARNING", code, out)
	}

	code, out, _ = run(t, "--config", cfgPath, "--warning", "20")
	if code != 0 || !strings.HasPrefix(out, "SPOOL OK - ") {
		t.Errorf("exit = %d, output = %q, want 0 / SPOOL OK", code, out)
	}
}

func TestExecute_Template(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 2)

	code, out, _ := run(t, "-w", "5", "-c", "10", "--template", "{{.Status | lower}} {{len .Measurements}}", dir)
	if code != 0 {
		t.Errorf("exit = %d, want 0", code)
	}
	if want := fmt.Sprintf("ok 1 | %s=2;5;10\n", dir); out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecute_BadTemplate(t *testing.T) {
	code, out, _ := run(t, "-w", "5", "-c", "10", "--template", "{{.Nope", t.TempDir())
	if code != 3 || !strings.Contains(out, "parsing template") {
		t.Errorf("exit = %d, output = %q", code, out)
	}
}

func TestExecute_Verbose(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, 3)

	code, _, errOut := run(t, "-w", "5", "-c", "10", "-v", dir)
	if code != 0 {
		t.Errorf("exit = %d, want 0", code)
	}
	if !strings.Contains(errOut, dir) || !strings.Contains(errOut, "OK") {
		t.Errorf("stderr = %q, want breakdown", errOut)
	}
}

func TestValidate(t *testing.T) {
	code, out, _ := run(t, "validate", "-w", "~:10", "-c", "@5:6", "/nonexistent-is-fine-here")
	if code != 0 {
		t.Errorf("exit = %d, want 0 (output %q)", code, out)
	}
	if want := "config ok: warning=~:10 critical=@5:6 dirs=1\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestValidate_Invalid(t *testing.T) {
	code, out, _ := run(t, "validate", "-w", "x", "-c", "1", "/tmp")
	if code != 3 || !strings.Contains(out, "invalid warning range") {
		t.Errorf("exit = %d, output = %q", code, out)
	}
}
