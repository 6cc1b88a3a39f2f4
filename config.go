package adt

import (
	"sync/atomic"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by Configure.
const (
	// KeyWarnDeprecated switches deprecation notices on or off (default: on).
	KeyWarnDeprecated = "adt.deprecation.warn"
	// KeyTraceDerive will dump every union to the tracer after a call to Derive.
	KeyTraceDerive = "adt.trace.derive"
)

var settings struct {
	warnDeprecated atomic.Bool
	traceDerive    atomic.Bool
}

func init() {
	settings.warnDeprecated.Store(true)
}

// Configure reads the settings of this package from an application
// configuration. Keys not set in conf leave the current setting untouched.
// A nil configuration is ignored.
//
// Tracing itself is configured by the application, usually with
// the facilities of package schuko/tracing.
func Configure(conf schuko.Configuration) {
	if conf == nil {
		return
	}
	if conf.IsSet(KeyWarnDeprecated) {
		settings.warnDeprecated.Store(conf.GetBool(KeyWarnDeprecated))
	}
	if conf.IsSet(KeyTraceDerive) {
		settings.traceDerive.Store(conf.GetBool(KeyTraceDerive))
	}
	tracer().Debugf("configured: deprecation warnings=%v, trace derive=%v",
		settings.warnDeprecated.Load(), settings.traceDerive.Load())
}

// warnDeprecation emits a deprecation notice, if not switched off by configuration.
func warnDeprecation(msg string, args ...interface{}) {
	if settings.warnDeprecated.Load() {
		tracer().Infof("deprecated: "+msg, args...)
	}
}
