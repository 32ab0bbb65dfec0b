package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/umlfold/umlfold"
	"github.com/umlfold/umlfold/internal/ctxlog"
	"github.com/umlfold/umlfold/internal/fsutil"
	"github.com/umlfold/umlfold/uml"
)

// result pairs one input with its encoded document or failure. Results are
// collected by input index so output order never depends on scheduling.
type result struct {
	input   string
	encoded []byte
	err     error
}

// convertAll discovers the inputs and converts them on a fixed pool of
// workers, so goroutine count stays bounded no matter how many inputs a
// directory holds. Each conversion is an independent parse with its own
// cache, so the only shared state between workers is the results slice,
// written at disjoint indexes.
func (a *App) convertAll(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	inputs, err := fsutil.FindInputs(a.config.InputPath, ".xmi", ".xml")
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		logger.Warn("no model files found", "path", a.config.InputPath)
		return nil
	}
	if err := a.ensureOutputDir(); err != nil {
		return err
	}
	logger.Debug("inputs discovered", "count", len(inputs), "workers", a.config.Workers)

	results := make([]result, len(inputs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < a.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = a.convertOne(ctx, inputs[i])
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var errs []error
	for _, res := range results {
		if res.err != nil {
			logger.Error("conversion failed", "input", res.input, "error", res.err)
			errs = append(errs, fmt.Errorf("%s: %w", res.input, res.err))
			continue
		}
		if err := a.write(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) convertOne(ctx context.Context, input string) result {
	ctxlog.From(ctx).Debug("converting", "input", input)
	doc, err := umlfold.ParseFile(input)
	if err != nil {
		return result{input: input, err: err}
	}
	encoded, err := a.encode(doc)
	return result{input: input, encoded: encoded, err: err}
}

func (a *App) encode(doc *uml.Document) ([]byte, error) {
	switch a.config.Format {
	case "yaml":
		return yaml.Marshal(doc)
	default:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
}

// write delivers one encoded document: to a file named after the input
// when an output directory is configured, to standard output otherwise.
func (a *App) write(res result) error {
	if a.config.OutputDir == "" {
		_, err := a.outW.Write(res.encoded)
		return err
	}
	base := strings.TrimSuffix(filepath.Base(res.input), filepath.Ext(res.input))
	path := filepath.Join(a.config.OutputDir, base+"."+a.config.Format)
	if err := os.WriteFile(path, res.encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
