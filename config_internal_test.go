package adt

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConfigureSettings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt")
	defer teardown()
	//
	warn, trace := settings.warnDeprecated.Load(), settings.traceDerive.Load()
	defer func() {
		settings.warnDeprecated.Store(warn)
		settings.traceDerive.Store(trace)
	}()
	Configure(testconfig.Conf{
		KeyWarnDeprecated: false,
		KeyTraceDerive:    true,
	})
	if settings.warnDeprecated.Load() {
		t.Error("expected deprecation warnings to be switched off, aren't")
	}
	if !settings.traceDerive.Load() {
		t.Error("expected tracing of derivations to be switched on, isn't")
	}
	Configure(testconfig.Conf{KeyTraceDerive: false})
	if settings.warnDeprecated.Load() {
		t.Error("expected unset key to leave deprecation warnings switched off")
	}
	if settings.traceDerive.Load() {
		t.Error("expected tracing of derivations to be switched off, isn't")
	}
	Configure(testconfig.Conf{KeyWarnDeprecated: "true"})
	if !settings.warnDeprecated.Load() {
		t.Error("expected deprecation warnings to be switched on by string value")
	}
}
