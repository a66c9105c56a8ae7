package emit

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/meschbach/fakegen/pkg/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, v ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Verbose() bool {
	return true
}

func counting() gen.Generator[string] {
	return gen.Select(gen.Incrementer(1), func(i int) string { return fmt.Sprintf("row-%d", i) })
}

func TestRows(t *testing.T) {
	t.Run("Given a healthy pipeline", func(t *testing.T) {
		var out bytes.Buffer
		var progress bytes.Buffer
		logger := &recordingLogger{}
		written, err := Rows(context.Background(), &out, counting(), Options{Name: "rows", Count: 1200, Progress: &progress, Logger: logger})
		require.NoError(t, err)
		assert.Equal(t, 1200, written)

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		assert.Len(t, lines, 1200)
		assert.Equal(t, "row-1", lines[0])
		assert.Equal(t, "row-1200", lines[1199])
		assert.NotZero(t, progress.Len())
		require.Len(t, logger.lines, 1)
		assert.Contains(t, logger.lines[0], "1,200")
	})

	t.Run("Given zero rows", func(t *testing.T) {
		var out bytes.Buffer
		written, err := Rows(context.Background(), &out, counting(), Options{Name: "none"})
		require.NoError(t, err)
		assert.Zero(t, written)
		assert.Empty(t, out.String())
	})

	t.Run("Given a failing pipeline", func(t *testing.T) {
		problem := fmt.Errorf("%s", faker.Sentence())
		calls := 0
		rows := gen.Do(counting(), func(string) error {
			calls++
			if calls > 3 {
				return problem
			}
			return nil
		})
		var out bytes.Buffer
		written, err := Rows(context.Background(), &out, rows, Options{Name: "failing", Count: 10})
		assert.ErrorIs(t, err, problem)
		assert.Equal(t, 3, written)
		assert.Equal(t, "row-1\nrow-2\nrow-3\n", out.String(), "rows before the failure are kept")
	})

	t.Run("Given a cancelled context", func(t *testing.T) {
		ctx, done := context.WithCancel(context.Background())
		done()
		var out bytes.Buffer
		_, err := Rows(ctx, &out, counting(), Options{Name: "cancelled", Count: 5})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Given a negative count", func(t *testing.T) {
		_, err := Rows(context.Background(), &bytes.Buffer{}, counting(), Options{Count: -1})
		assert.ErrorIs(t, err, gen.ErrInvalidCount)
	})
}

func TestBatch(t *testing.T) {
	t.Run("Writes one file per job", func(t *testing.T) {
		dir := t.TempDir()
		jobs := []Job{
			{Name: "a", Build: func() (gen.Generator[string], error) { return counting(), nil }},
			{Name: "b", Build: func() (gen.Generator[string], error) { return gen.Constant("b"), nil }},
		}
		require.NoError(t, Batch(context.Background(), dir, 4, jobs, nil))

		a, err := os.ReadFile(filepath.Join(dir, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "row-1\nrow-2\nrow-3\nrow-4\n", string(a))

		b, err := os.ReadFile(filepath.Join(dir, "b.txt"))
		require.NoError(t, err)
		assert.Equal(t, "b\nb\nb\nb\n", string(b))
	})

	t.Run("Reports the failing job", func(t *testing.T) {
		_, err := gen.Circular([]string{})
		jobs := []Job{
			{Name: "broken", Build: func() (gen.Generator[string], error) { return nil, err }},
		}
		assert.ErrorIs(t, Batch(context.Background(), t.TempDir(), 1, jobs, nil), gen.ErrEmptySequence)
	})
}
