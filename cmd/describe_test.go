package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func executeCmd(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func TestDescribeCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "hex as json",
			args: []string{"#ff7f00", "-o", "json"},
			want: []string{`"name": "Orange"`, `"hue": 30`},
		},
		{
			name: "channels clamped",
			args: []string{"--output", "json", "--", "-5", "300", "12.9"},
			want: []string{`"r": 0`, `"g": 255`, `"b": 12`, `"hex": "#00ff0c"`},
		},
		{
			name: "mid gray as table",
			args: []string{"128", "128", "128"},
			want: []string{"Rose", "#808080"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, newDescribeCmd(), tt.args...)
			if err != nil {
				t.Fatalf("describe failed: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output should contain %q. Got: %q", w, out)
				}
			}
		})
	}
}

func TestDescribeCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "two arguments", args: []string{"1", "2"}},
		{name: "non-numeric channel", args: []string{"abc", "0", "0"}},
		{name: "bad hex", args: []string{"#zzzzzz"}},
		{name: "bad output format", args: []string{"#fff", "-o", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCmd(t, newDescribeCmd(), tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestClassifyCommand(t *testing.T) {
	out, err := executeCmd(t, newClassifyCmd(), "0", "191", "255", "-o", "json")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if !strings.Contains(out, `"name": "Azure"`) {
		t.Errorf("a tie between Azure and Cyan goes to Azure. Got: %q", out)
	}
	if !strings.Contains(out, `"distance": 64`) {
		t.Errorf("expected distance 64. Got: %q", out)
	}
}

func TestPaletteCommand(t *testing.T) {
	out, err := executeCmd(t, newPaletteCmd(), "-o", "yaml")
	if err != nil {
		t.Fatalf("palette failed: %v", err)
	}
	black := strings.Index(out, "Black")
	orange := strings.Index(out, "Orange")
	if black < 0 || orange < 0 || black > orange {
		t.Errorf("palette should list Black before Orange. Got: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "1.2.3"

	out, err := executeCmd(t, newVersionCmd())
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "swatchctl version 1.2.3\n" {
		t.Errorf("unexpected version output %q", out)
	}
}
