package debug

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	ModeSensor = iota
	ModeLocomotion
	ModeMovement
	ModeOrientation
	ModeTrail
	modeCount
)

// ModeList contains the names of all debug modes, indexed by mode.
var ModeList = []string{"sensor", "locomotion", "movement", "orientation", "trail"}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (int, error) {
	for i, n := range ModeList {
		if strings.EqualFold(n, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown debug mode: %s", name)
}

// Debugger decides which debug messages of a character are logged.
type Debugger struct {
	enabled [modeCount]bool
	log     *logrus.Entry
}

// New returns a Debugger with all modes disabled writing to log.
func New(log *logrus.Entry) *Debugger {
	return &Debugger{log: log}
}

// Toggle flips the given mode.
func (d *Debugger) Toggle(mode int) {
	d.enabled[mode] = !d.enabled[mode]
}

// Enable turns on every mode named in modes.
func (d *Debugger) Enable(modes ...string) error {
	for _, name := range modes {
		mode, err := ParseMode(name)
		if err != nil {
			return err
		}
		d.enabled[mode] = true
	}
	return nil
}

// Enabled ...
func (d *Debugger) Enabled(mode int) bool {
	return d != nil && d.enabled[mode]
}

// Notify logs the message at debug level if the mode is enabled and cond holds.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) || d.log == nil {
		return
	}
	d.log.WithField("debug", ModeList[mode]).Debugf(format, args...)
}
