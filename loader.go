package personread

import (
	"context"
	"os"
)

// FileLoader reads a resource from the local filesystem.
type FileLoader struct{}

type readResult struct {
	data []byte
	err  error
}

// Load reads the whole file at name. The read runs in the background so a
// canceled context returns immediately; the platform error is returned unchanged.
func (FileLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan readResult, 1)
	go func() {
		data, err := os.ReadFile(name)
		done <- readResult{data: data, err: err}
	}()

	select {
	case res := <-done:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
