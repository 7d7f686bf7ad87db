// Package driver runs the formatter over files.
//
// Process handles one file end to end: read, parse, format, serialize,
// then either compare (check mode) or write back. Run fans Process out
// over a batch with a bounded worker count; per-file results stream to a
// callback in completion order while the files themselves are processed
// concurrently.
package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/toml-maid/go-maid/encode"
	"github.com/toml-maid/go-maid/format"
	"github.com/toml-maid/go-maid/parse"
)

// ErrIO reports a filesystem failure reading or writing a target file.
var ErrIO = errors.New("io error")

// Outcome is the per-file result category.
type Outcome int

const (
	// Unchanged means the file was already formatted; nothing was written.
	Unchanged Outcome = iota
	// Overwritten means the file was rewritten with formatted content.
	Overwritten
	// CheckPassed means check mode found the file already formatted.
	CheckPassed
	// CheckFailed means check mode found the file needs formatting.
	CheckFailed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Overwritten:
		return "overwritten"
	case CheckPassed:
		return "check passed"
	case CheckFailed:
		return "check failed"
	}
	return "unknown"
}

// Result reports what happened to one file. Before and After carry the
// original and formatted text so callers can render a diff; they are
// equal exactly when the outcome is Unchanged or CheckPassed. A non-nil
// Err means the file could not be processed and Outcome is meaningless.
type Result struct {
	Path    string
	Outcome Outcome
	Before  string
	After   string
	Err     error
}

// Processor applies one formatter configuration to files.
type Processor struct {
	formatter *format.Formatter
}

func New(f *format.Formatter) *Processor {
	return &Processor{formatter: f}
}

// Process formats a single file. In check mode the file is never written.
// Output text is the serialized document trimmed of surrounding blank
// space with exactly one trailing newline, so a formatted file always
// ends in a newline and never begins with one.
func (p *Processor) Process(path string, check bool) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	d, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	formatted := p.formatter.Document(d)
	out := strings.TrimSpace(encode.MustString(formatted)) + "\n"

	res := &Result{Path: path, Before: string(data), After: out}
	switch {
	case out == string(data):
		if check {
			res.Outcome = CheckPassed
		} else {
			res.Outcome = Unchanged
		}
	case check:
		res.Outcome = CheckFailed
	default:
		if err := writeBack(path, out); err != nil {
			return nil, err
		}
		res.Outcome = Overwritten
	}
	return res, nil
}

func writeBack(path string, out string) error {
	fi, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(out), mode); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Run processes files concurrently with at most jobs workers. Each
// completed file is handed to report, failures included as a Result with
// Err set; report calls are serialized. A per-file failure never aborts
// the batch, only context cancellation does.
func (p *Processor) Run(ctx context.Context, files []string, check bool, jobs int, report func(*Result)) error {
	if jobs < 1 {
		jobs = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	var mu sync.Mutex
	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Process(path, check)
			if err != nil {
				res = &Result{Path: path, Err: err}
			}
			mu.Lock()
			report(res)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}
