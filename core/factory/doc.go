// Package factory builds pluggable sinks from the `sinks` section of the
// configuration. Each entry names a sink kind and carries free-form settings
// that the registered builder decodes into its own struct.
//
//	reg := factory.NewRegistry[metrics.MetricsSink]()
//	_ = reg.Register("prometheus", factory.Configured(func(c promSettings) (metrics.MetricsSink, error) {
//	    return newSink(c.Textfile)
//	}))
//	sinks, err := reg.BuildAll([]factory.Spec{{Type: "prometheus"}})
package factory
