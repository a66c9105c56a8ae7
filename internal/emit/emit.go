package emit

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/meschbach/fakegen/internal/emit"

var tracer = otel.Tracer(tracerName)

// Logger is the status output of a run.
type Logger interface {
	Printf(format string, v ...interface{})
	Verbose() bool
}

type Options struct {
	//Name labels the run in spans and status lines.
	Name string
	//Count of rows to write.
	Count int
	//Progress, when set, receives a progress bar.
	Progress io.Writer
	Logger   Logger
}

// Rows pulls opts.Count values from rows and writes one per line.  Generator failures end the run; rows written
// up to that point stay written.
func Rows(ctx context.Context, out io.Writer, rows gen.Generator[string], opts Options) (written int, problem error) {
	ctx, span := tracer.Start(ctx, "fakegen.emit", trace.WithAttributes(
		attribute.String("fakegen.name", opts.Name),
		attribute.Int("fakegen.count", opts.Count),
	))
	defer func() {
		span.SetAttributes(attribute.Int("fakegen.written", written))
		if problem != nil {
			span.RecordError(problem)
			span.SetStatus(codes.Error, problem.Error())
		}
		span.End()
	}()

	seq, err := gen.Take(rows, opts.Count)
	if err != nil {
		return 0, err
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(opts.Count,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(opts.Name),
			progressbar.OptionThrottle(0),
		)
	}

	buffered := bufio.NewWriter(out)
	for row, err := range seq {
		if err != nil {
			problem = err
			break
		}
		if err := ctx.Err(); err != nil {
			problem = err
			break
		}
		if _, err := buffered.WriteString(row + "\n"); err != nil {
			problem = err
			break
		}
		written++
		if bar != nil {
			if err := bar.Add(1); err != nil {
				problem = err
				break
			}
		}
	}
	if err := buffered.Flush(); err != nil && problem == nil {
		problem = err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if opts.Logger != nil && opts.Logger.Verbose() {
		opts.Logger.Printf("%s: wrote %s of %s rows\n", opts.Name, humanize.Comma(int64(written)), humanize.Comma(int64(opts.Count)))
	}
	if problem != nil {
		return written, fmt.Errorf("%s after %d rows: %w", opts.Name, written, problem)
	}
	return written, nil
}
