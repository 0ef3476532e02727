package chartcore

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the default chart logger: stderr, prefixed, warnings and
// above.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "chartcore",
		Level:  log.WarnLevel,
	})
}

// SetDebug toggles debug logging of gesture transitions, viewport clamps and
// highlight resolution.
func (c *chartBase) SetDebug(enabled bool) {
	if enabled {
		c.log.SetLevel(log.DebugLevel)
	} else {
		c.log.SetLevel(log.WarnLevel)
	}
}

// SetLogger replaces the chart logger. A nil logger restores the default.
func (c *chartBase) SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger()
	}
	c.log = l
}

// Logger returns the chart logger.
func (c *chartBase) Logger() *log.Logger { return c.log }

// debugMatrix logs a refresh whose result differs from the request.
func (c *chartBase) debugMatrix(op string, want, got Matrix) {
	if want == got {
		return
	}
	c.log.Debug("viewport clamped", "op", op,
		"scaleX", got.ScaleX(), "scaleY", got.ScaleY(),
		"transX", got.TransX(), "transY", got.TransY(),
		"wantTransX", want.TransX(), "wantTransY", want.TransY())
}
