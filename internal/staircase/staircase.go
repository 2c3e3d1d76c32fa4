// Package staircase implements the staircase command.
//
// The command reads newline separated records,
// and writes back only those which keep the staircase monotonic.
package staircase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/staircase/pkg/monotonic"
	"go.llib.dev/staircase/pkg/pullkit"
)

// Config is the process level configuration, loaded from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

func (c Config) Logger(out io.Writer) *logging.Logger {
	return &logging.Logger{Out: out, Level: logging.Level(c.LogLevel)}
}

type Command struct {
	Strict  bool   `flag:"strict" env:"STAIRCASE_STRICT" desc:"drop ties, keep only strictly monotonic records"`
	Desc    bool   `flag:"desc" env:"STAIRCASE_DESC" desc:"build a descending staircase"`
	Column  int    `flag:"column" env:"STAIRCASE_COLUMN" desc:"1-based whitespace separated field used as the key, 0 means the whole record"`
	Compare string `flag:"compare" env:"STAIRCASE_COMPARE" env-default:"numeric" enum:"numeric,lexical," desc:"how keys are compared: numeric (default) or lexical"`
	Verbose bool   `flag:"verbose" env:"STAIRCASE_VERBOSE" desc:"log every discarded record"`

	Path string `arg:"0" desc:"input file, standard input is used when omitted"`

	Logger *logging.Logger
}

func (cmd Command) Summary() string {
	return "keep only the records which follow the order of the previously kept record"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "staircase"))
	if err := cmd.Run(ctx, w, r.Body); err != nil {
		cmd.logger().Error(ctx, "staircase failed", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeError)
		var out io.Writer = w
		if ew, ok := w.(cli.ErrorWriter); ok {
			out = ew.Stderr()
		}
		fmt.Fprintln(out, err.Error())
	}
}

// Run filters the records of the input into the output.
// When the command has a Path, the input is read from that file instead of the body.
func (cmd Command) Run(ctx context.Context, out io.Writer, body io.Reader) (rErr error) {
	if cmd.Column < 0 {
		return ErrInvalidColumn.F("column must not be negative: %d", cmd.Column)
	}

	src, err := cmd.open(body)
	if err != nil {
		return err
	}

	var (
		logger    = cmd.logger()
		discarded int
		parser    = &recordParser{Column: cmd.Column, Numeric: cmd.Compare != CompareLexical}
		records   = iterkit.MapErr(src, parser.Parse)
	)
	records = iterkit.Filter(records, func(r Record) bool { return !r.Blank })

	staircase := monotonic.NewFunc(pullkit.FromErrSeq(records), keepFor(cmd.Compare, cmd.Strict, cmd.Desc),
		monotonic.OnDiscard(func(kept, dropped Record) {
			discarded++
			if cmd.Verbose {
				logger.Info(ctx, "record discarded",
					logging.Field("line_no", dropped.LineNo),
					logging.Field("record", dropped.Line),
					logging.Field("kept_line_no", kept.LineNo))
			}
		}))
	defer errorkit.Finish(&rErr, staircase.Close)

	var kept int
	for staircase.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, staircase.Value().Line); err != nil {
			return err
		}
		kept++
	}
	if err := staircase.Err(); err != nil {
		return err
	}

	logger.Debug(ctx, "staircase done",
		logging.Field("kept", kept),
		logging.Field("discarded", discarded))
	return nil
}

func (cmd Command) open(body io.Reader) (iter.Seq2[string, error], error) {
	if cmd.Path != "" {
		f, err := os.Open(cmd.Path)
		if err != nil {
			return nil, ErrInputOpen.Wrap(err)
		}
		return iterkit.BufioScanner[string](bufio.NewScanner(f), f), nil
	}
	if body == nil {
		return func(yield func(string, error) bool) {}, nil
	}
	var closer io.Closer
	if c, ok := body.(io.Closer); ok && body != os.Stdin {
		closer = c
	}
	return iterkit.BufioScanner[string](bufio.NewScanner(body), closer), nil
}

func (cmd Command) logger() *logging.Logger {
	if cmd.Logger != nil {
		return cmd.Logger
	}
	return Config{}.Logger(os.Stderr)
}
