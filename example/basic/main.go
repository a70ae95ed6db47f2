package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hatsunemiku3939/personread"
	"go.uber.org/zap"
)

// --- Records ---
// In-memory resources stand in for files so the example runs anywhere.

var records = map[string][]byte{
	"ada.txt":     []byte("Ada,Lovelace"),
	"grace.txt":   []byte("Grace,Hopper"),
	"single.txt":  []byte("OnlyOneField"),
	"binary.txt":  {0xFF, 0xFE},
	"tooMany.txt": []byte("a,b,c"),
}

// memoryLoader serves resources from the records map.
func memoryLoader(_ context.Context, name string) ([]byte, error) {
	data, ok := records[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
	}
	return data, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	pipeline := personread.NewPipeline(
		personread.WithLoader(personread.LoaderFunc(memoryLoader)),
		personread.WithLogger(logger),
	)
	reporter := personread.NewReporter(os.Stdout, os.Stderr)

	for _, name := range []string{"ada.txt", "grace.txt", "single.txt", "binary.txt", "tooMany.txt", "missing.txt"} {
		person, err := pipeline.Read(ctx, name)
		reporter.Report(person, err)

		switch {
		case err == nil:
		case errors.Is(err, personread.ErrRead):
			logger.Info("resource unavailable", zap.String("resource", name))
		case errors.Is(err, personread.ErrDecode):
			logger.Info("resource is not text", zap.String("resource", name))
		case errors.Is(err, personread.ErrFormat):
			logger.Info("resource is not a name,surname pair", zap.String("resource", name))
		}
	}
}
