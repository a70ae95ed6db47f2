package personread

import "go.uber.org/zap"

// PipelineOption configures a Pipeline at construction time.
type PipelineOption func(*Pipeline)

// WithLoader sets the Loader used for the loading stage. Defaults to FileLoader.
func WithLoader(l Loader) PipelineOption {
	return func(p *Pipeline) { p.loader = l }
}

// WithLogger sets the logger used for stage diagnostics. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = l }
}
