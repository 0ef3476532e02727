package chartcore

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDebugLogsClampedViewport(t *testing.T) {
	c := newTestLineChart(rampSet())
	var buf bytes.Buffer
	c.SetLogger(log.New(&buf))
	c.SetDebug(true)

	// Panning right at scale 1 is clamped back to the origin.
	if c.PerformPanChange(Vec2{X: 50}) {
		t.Fatal("pan at scale 1 should be refused")
	}
	if !strings.Contains(buf.String(), "viewport clamped") {
		t.Errorf("expected clamp log, got %q", buf.String())
	}

	buf.Reset()
	c.SetDebug(false)
	c.PerformPanChange(Vec2{X: 50})
	if buf.Len() != 0 {
		t.Errorf("debug disabled but logged %q", buf.String())
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	c := NewChart()
	c.SetLogger(nil)
	if c.Logger() == nil {
		t.Fatal("nil logger")
	}
	if c.Logger().GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", c.Logger().GetLevel())
	}
	if c.Logger().GetPrefix() != "chartcore" {
		t.Errorf("prefix = %q", c.Logger().GetPrefix())
	}
}
