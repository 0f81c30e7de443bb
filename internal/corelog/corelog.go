// Package corelog provides module-tagged logging on top of logrus. Each
// subsystem logs through its own Module constant so verbosity can be tuned
// per subsystem rather than globally.
package corelog

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type Module uint

const (
	ModCore Module = iota + 1 // driver / CLI wiring
	ModCPU                    // fetch/decode/execute
	ModMem                    // memory bus

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask uint64

var modNames = []string{"<error>", "core", "cpu", "mem"}

// NewModule registers an additional module beyond the three predefined
// ones, returning its identifier.
func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

// ModuleByName looks up a module by the name it logs under ("core", "cpu",
// "mem", ...), for CLI flags that name modules by string.
func ModuleByName(name string) (Module, bool) {
	for i, n := range modNames {
		if n == name {
			return Module(i), true
		}
	}
	return 0, false
}

// ModuleNames lists every registered module's log name, in registration
// order, for building --log flag help text.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:]...)
}

func (mod Module) mask() uint64 { return 1 << uint64(mod) }

// EnableDebug turns on debug-level logging for mod.
func EnableDebug(mod Module) {
	modDebugMask |= mod.mask()
	logrus.SetLevel(logrus.DebugLevel)
}

// DisableDebug turns off debug-level logging for mod.
func DisableDebug(mod Module) { modDebugMask &^= mod.mask() }

func (mod Module) debugEnabled() bool { return modDebugMask&mod.mask() != 0 }

func (mod Module) entry() *logrus.Entry {
	return logrus.StandardLogger().WithField("mod", modNames[mod])
}

func (mod Module) Debugf(format string, args ...any) {
	if mod.debugEnabled() {
		mod.entry().Debugf(format, args...)
	}
}

func (mod Module) Infof(format string, args ...any)  { mod.entry().Infof(format, args...) }
func (mod Module) Warnf(format string, args ...any)  { mod.entry().Warnf(format, args...) }
func (mod Module) Errorf(format string, args ...any) { mod.entry().Errorf(format, args...) }
func (mod Module) Fatalf(format string, args ...any) { mod.entry().Fatalf(format, args...) }

// SetLevel sets the global logrus logging level by name ("debug", "info",
// "warn", "error", "fatal", "panic").
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
