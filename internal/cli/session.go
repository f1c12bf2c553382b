package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"todo/internal/action"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/storage"
	"todo/internal/tasklist"
)

var (
	// errReadInput marks failures reading the command stream.
	errReadInput = errors.New("read input")

	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Session reads commands line by line and applies them to one task list.
type Session struct {
	registry *action.Registry
	store    storage.Store
	logger   *zap.Logger
	color    string
}

// NewSession creates a session persisting to store.
func NewSession(store storage.Store, logger *zap.Logger, color string) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		registry: action.DefaultRegistry,
		store:    store,
		logger:   logger,
		color:    color,
	}
}

// Run loads the task list and processes lines from in until end of input,
// a fatal error, or ctx is done. Listings go to out, diagnostics to errOut.
// Returns the exit code.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	printer := output.NewPrinter(errOut, s.color)

	list, err := tasklist.Load(ctx, s.store, s.logger)
	if err != nil {
		return s.fail(printer, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	// readLines stays blocked in Read if ctx is cancelled mid-read. The
	// process exits right after Run returns, so the goroutine is not reclaimed.
	go readLines(ctx, in, lines, errc)

	for {
		select {
		case <-ctx.Done():
			return s.fail(printer, ctx.Err())
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return s.fail(printer, fmt.Errorf("%w: %w", errReadInput, err))
				default:
					s.logger.Debug("end of input")
					return exitcode.Success
				}
			}
			if err := s.handle(ctx, printer, list, line, out); err != nil {
				return s.fail(printer, err)
			}
		}
	}
}

// handle parses and executes one line. Parse failures are reported and
// replaced by a no-op; only execution and input errors are returned.
func (s *Session) handle(ctx context.Context, printer *output.Printer, list *tasklist.TaskList, line string, out io.Writer) error {
	if !utf8.ValidString(line) {
		return fmt.Errorf("%w: %w", errReadInput, errInvalidUTF8)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	a, err := s.registry.Build(action.Tokenize(line))
	if err != nil {
		printer.InvalidArg(err)
		a = action.NoOp{}
	}

	s.logger.Debug("executing action", zap.String("action", fmt.Sprintf("%T", a)), zap.Any("args", a))
	return action.Execute(ctx, a, list, out)
}

func (s *Session) fail(printer *output.Printer, err error) int {
	code := classify(err)
	if code != exitcode.Interrupted {
		printer.Error(err)
	}
	s.logger.Debug("session stopped", zap.Int("code", code), zap.Error(err))
	return code
}

// readLines sends each line of in, newline included, until EOF or a read
// error. A read error other than EOF is sent on errc before lines is closed.
func readLines(ctx context.Context, in io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)

	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				errc <- err
			}
			return
		}
	}
}
