package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go/config"
)

// InitGlobal installs a jaeger tracer as the opentracing global tracer.
// The sampler and reporter endpoints come from the standard JAEGER_*
// environment variables; everything is sampled by default.
func InitGlobal(serviceName string) (io.Closer, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "reading jaeger config")
	}
	if cfg.Sampler.Type == "" {
		cfg.Sampler.Type = "const"
		cfg.Sampler.Param = 1
	}

	closer, err := cfg.InitGlobalTracer(serviceName)
	return closer, errors.Wrap(err, "init global tracer")
}
