package commands

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func TestCLIContract(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	// Assert top-level commands that are part of the core contract
	requiredCommands := []string{
		"completion",
		"expand",
		"generate",
		"help",
		"inspect",
		"version",
	}

	for _, c := range requiredCommands {
		if !strings.Contains(out, c) {
			t.Errorf("expected top-level command %q in root help", c)
		}
	}
}

func TestCLICommandGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--help")
	if err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	for _, c := range []string{"services", "characteristics", "all"} {
		if !strings.Contains(out, c) {
			t.Errorf("expected subcommand %q in generate help", c)
		}
	}
}

func TestCLICommandGenerateFlags(t *testing.T) {
	out, err := execute(t, "generate", "services", "--help")
	if err != nil {
		t.Fatalf("generate services command failed: %v", err)
	}

	for _, f := range []string{"--input", "--type", "--output", "--prefix", "--strict", "--ext", "--check", "--json"} {
		if !strings.Contains(out, f) {
			t.Errorf("expected flag %q in generate services help", f)
		}
	}
}
