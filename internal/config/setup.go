package config

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Setup installs c as the global configuration and configures tracing from it.
// Trace levels are read from keys "tracelevel.<tracer>", the root tracer's level
// from "tracelevel.root". Tracing adapter "go" (the Go standard logger) is
// always available.
func Setup(c *Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(c)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// Teardown detaches tracing from the configuration set up by Setup.
func Teardown() {
	trace2go.Teardown()
}
