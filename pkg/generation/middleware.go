package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/germanamz/integra/pkg/modeladapter"
)

// Middleware wraps a Generator, returning a new Generator with added behaviour.
type Middleware func(next Generator) Generator

// Chain wraps g with mws. The first middleware is the outermost one.
func Chain(g Generator, mws ...Middleware) Generator {
	for i := len(mws) - 1; i >= 0; i-- {
		g = mws[i](g)
	}

	return g
}

// --- DefaultEndpoint middleware ---

// DefaultEndpoint returns a Middleware that fills an empty Request.Endpoint
// with endpoint.
func DefaultEndpoint(endpoint string) Middleware {
	return func(next Generator) Generator {
		return GeneratorFunc(func(ctx context.Context, req Request) (Result, error) {
			if req.Endpoint == "" {
				req.Endpoint = endpoint
			}

			return next.Generate(ctx, req)
		})
	}
}

// --- Recovery middleware ---

// Recovery returns a Middleware that catches panics and converts them to errors.
func Recovery() Middleware {
	return func(next Generator) Generator {
		return GeneratorFunc(func(ctx context.Context, req Request) (res Result, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("generator panicked: %v", r)
				}
			}()

			return next.Generate(ctx, req)
		})
	}
}

// --- Logger middleware ---

// Logger returns a Middleware that logs the model and prompt before each
// call. Failures are logged as "api error" when the server answered with an
// error status and as "network error" otherwise. Successful calls log
// nothing further.
func Logger(log *slog.Logger) Middleware {
	return func(next Generator) Generator {
		return GeneratorFunc(func(ctx context.Context, req Request) (Result, error) {
			log.InfoContext(ctx, "generating text", "model", req.Endpoint)
			log.InfoContext(ctx, "prompt", "text", req.Prompt)

			res, err := next.Generate(ctx, req)
			if err == nil {
				return res, nil
			}

			var statusErr *modeladapter.StatusError
			if errors.As(err, &statusErr) {
				log.ErrorContext(ctx, "api error",
					"model", req.Endpoint,
					"status", statusErr.StatusCode,
					"body", statusErr.Body,
				)
			} else {
				log.ErrorContext(ctx, "network error",
					"model", req.Endpoint,
					"error", err,
				)
			}

			return res, err
		})
	}
}
