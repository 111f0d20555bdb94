package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		name      string
		flag      string
		shorthand string
		defValue  string
	}{
		{"max-depth", "max-depth", "d", "0"},
		{"human-readable", "human-readable", "H", "false"},
		{"sort", "sort", "s", "false"},
		{"min-size", "min-size", "", "0B"},
		{"debug", "debug", "", "false"},
	}

	cmd := NewCommand("test")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("--%s flag should be registered", tt.flag)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.flag, flag.Shorthand, tt.shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.flag, flag.DefValue, tt.defValue)
			}
		})
	}
}

func TestCommandRejectsExtraArgs(t *testing.T) {
	cmd := NewCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"one", "two"})

	if err := cmd.Execute(); err == nil {
		t.Error("two positional arguments should be rejected")
	}
}

func TestCommandRejectsNegativeDepth(t *testing.T) {
	cmd := NewCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--max-depth", "-1", t.TempDir()})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "max-depth") {
		t.Errorf("negative depth error = %v, want max-depth complaint", err)
	}
}

func TestCommandRejectsBadMinSize(t *testing.T) {
	cmd := NewCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--min-size", "lots", t.TempDir()})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "min-size") {
		t.Errorf("bad min-size error = %v, want min-size complaint", err)
	}
}

func TestCommandVersion(t *testing.T) {
	var out bytes.Buffer

	cmd := NewCommand("1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out.String(), "1.2.3") {
		t.Errorf("version output = %q, want it to contain 1.2.3", out.String())
	}
}
