package cliutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newOutputCommand(format string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("format", format, "")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestHandleOutput(t *testing.T) {
	result := HighlightOutput{X: 2, Y: 30, Axis: "left"}
	tests := []struct {
		format string
		want   []string
	}{
		{"json", []string{`"x": 2`, `"axis": "left"`}},
		{"", []string{`"y": 30`}},
		{"yaml", []string{"x: 2", "axis: left"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd, buf := newOutputCommand(tt.format)
			if err := HandleOutput(cmd, result); err != nil {
				t.Fatalf("HandleOutput: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}

	cmd, _ := newOutputCommand("xml")
	if err := HandleOutput(cmd, result); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestParsePair(t *testing.T) {
	a, b, err := ParsePair("1.5,-2")
	if err != nil || a != 1.5 || b != -2 {
		t.Errorf("ParsePair = %v, %v, %v", a, b, err)
	}
	if _, _, err := ParsePair("nope"); err == nil {
		t.Error("expected an error")
	}
}
