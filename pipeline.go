package personread

import (
	"context"
	"errors"

	"github.com/zoobzio/pipz"
	"go.uber.org/zap"
)

// Stage names as they appear in logs and pipz error paths.
const (
	stageLoad   = "load"
	stageDecode = "decode"
	stageParse  = "parse"

	pipelineName = "read-person"
)

// Pipeline reads a Person by running load, decode and parse in order,
// stopping at the first failure.
type Pipeline struct {
	loader Loader
	logger *zap.Logger
	seq    *pipz.Sequence[state]
}

// NewPipeline creates a Pipeline. Without options it reads files from disk and logs nothing.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		loader: FileLoader{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.seq = pipz.NewSequence[state](
		pipelineName,
		pipz.Apply(stageLoad, p.load),
		pipz.Apply(stageDecode, p.decode),
		pipz.Apply(stageParse, p.parse),
	)
	return p
}

// Read runs the pipeline against the named resource.
// Any failure is returned as an *Error.
func (p *Pipeline) Read(ctx context.Context, name string) (Person, error) {
	out, err := p.seq.Process(ctx, state{Resource: name})
	if err != nil {
		perr := asPipelineError(ctx, err)
		p.logger.Debug("pipeline failed",
			zap.String("resource", name),
			zap.Stringer("kind", perr.Kind),
			zap.Error(perr),
		)
		return Person{}, perr
	}
	p.logger.Debug("pipeline done", zap.String("resource", name))
	return out.Person, nil
}

func (p *Pipeline) load(ctx context.Context, s state) (state, error) {
	p.logger.Debug("loading", zap.String("stage", stageLoad), zap.String("resource", s.Resource))
	raw, err := p.loader.Load(ctx, s.Resource)
	if err != nil {
		return s, ReadFailure(err)
	}
	s.Raw = raw
	return s, nil
}

func (p *Pipeline) decode(_ context.Context, s state) (state, error) {
	p.logger.Debug("decoding", zap.String("stage", stageDecode), zap.Int("bytes", len(s.Raw)))
	text, err := DecodeUTF8(s.Raw)
	if err != nil {
		return s, err
	}
	s.Text = text
	return s, nil
}

func (p *Pipeline) parse(_ context.Context, s state) (state, error) {
	p.logger.Debug("parsing", zap.String("stage", stageParse))
	person, err := ParsePerson(s.Text)
	if err != nil {
		return s, err
	}
	s.Person = person
	return s, nil
}

// asPipelineError strips the pipz envelope. Errors that did not come from a
// stage (cancellation between stages) are attributed to loading, the only
// stage that waits on the outside world.
func asPipelineError(ctx context.Context, err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ReadFailure(ctxErr)
	}
	return ReadFailure(err)
}

var defaultPipeline = NewPipeline()

// ReadPerson reads a Person from the file at path using the default pipeline.
func ReadPerson(ctx context.Context, path string) (Person, error) {
	return defaultPipeline.Read(ctx, path)
}
