package jaeger

import (
	"context"
	"io"

	"github.com/opentracing/opentracing-go"
	jaegerclient "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitTracer installs a jaeger tracer as the global opentracing tracer.
// With an empty agent address the no-op tracer stays in place.
func InitTracer(serviceName, agentHostPort string) (io.Closer, error) {
	if agentHostPort == "" {
		return nopCloser{}, nil
	}

	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaegerclient.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: agentHostPort,
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, err
	}

	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

func StartSpanFromContext(ctx context.Context, spanName string, req any) (opentracing.Span, context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, spanName)

	span.SetTag("request", req)
	span.LogKV("event", "request", "value", req)
	return span, ctx
}
