package emit

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/meschbach/fakegen/pkg/gen"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Job writes one fixture file.  Build is called on the job's own goroutine and must return a pipeline nothing else
// holds; pipelines are not safe to share.
type Job struct {
	Name  string
	Build func() (gen.Generator[string], error)
}

// Batch writes every job to <dir>/<name>.txt concurrently.  The first failure cancels the remaining jobs.
func Batch(ctx context.Context, dir string, count int, jobs []Job, logger Logger) error {
	ctx, span := tracer.Start(ctx, "fakegen.batch", trace.WithAttributes(
		attribute.Int("fakegen.jobs", len(jobs)),
		attribute.String("fakegen.dir", dir),
	))
	defer span.End()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	group, groupContext := errgroup.WithContext(ctx)
	for _, job := range jobs {
		group.Go(func() (problem error) {
			rows, err := job.Build()
			if err != nil {
				return err
			}
			file, err := os.Create(filepath.Join(dir, job.Name+".txt"))
			if err != nil {
				return err
			}
			defer func() {
				problem = errors.Join(problem, file.Close())
			}()
			_, err = Rows(groupContext, file, rows, Options{Name: job.Name, Count: count, Logger: logger})
			return err
		})
	}
	return group.Wait()
}
