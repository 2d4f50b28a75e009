// Command xgxfmt renders object-shaped errors read from JSON or msgpack.
//
//	xgxfmt [--input json|msgpack] [--output text|json] [--indent N] [--crlf] [file...]
//
// Every document must be an object in the error shape ({"error": ..., "inners":
// [...], ...}). With no file arguments, documents are read from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	xgxresult "github.com/xgx-io/xgx-result"
	"github.com/xgx-io/xgx-result/errlog"
)

type options struct {
	input   string
	output  string
	indent  int
	crlf    bool
	verbose bool
	files   []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("xgxfmt", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.input, "input", "json", "the input encoding: json or msgpack")
	fs.StringVar(&o.output, "output", "text", "the output format: text or json")
	fs.IntVar(&o.indent, "indent", 0, "the base indentation level of text output")
	fs.BoolVar(&o.crlf, "crlf", false, "separate text output lines with \\r\\n")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every rendered error")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.files = fs.Args()

	switch o.input {
	case "json", "msgpack":
	default:
		return o, errors.Errorf("unknown --input %q", o.input)
	}
	switch o.output {
	case "text", "json":
	default:
		return o, errors.Errorf("unknown --output %q", o.output)
	}
	if o.indent < 0 {
		return o, errors.Errorf("--indent must not be negative, got %d", o.indent)
	}
	return o, nil
}

type renderer struct {
	opts   options
	out    *bufio.Writer
	logger logrus.FieldLogger
	failed int
}

func (r *renderer) newline() string {
	if r.opts.crlf {
		return "\r\n"
	}
	return "\n"
}

// render handles one decoded document. Documents that are not objects are
// logged and counted, not fatal.
func (r *renderer) render(source string, index int, v xgxresult.Value) error {
	object, ok := v.(xgxresult.Map)
	if !ok {
		r.failed++
		errlog.Log(r.logger, xgxresult.New("document is not an error object",
			xgxresult.MapOf("source", source, "index", index, "kind", v.Kind().String())).Freeze())
		return nil
	}

	b := xgxresult.FromObject(object)
	frozen := b.Freeze()
	if r.opts.verbose {
		errlog.Log(r.logger, frozen, errlog.WithLevel(logrus.DebugLevel), errlog.WithFieldPrefix("data."))
	}

	switch r.opts.output {
	case "json":
		raw, err := b.ToObject().MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := r.out.Write(raw); err != nil {
			return err
		}
		_, err = r.out.WriteString(r.newline())
		return err
	default:
		nl := r.newline()
		_, err := r.out.WriteString(strings.Join(frozen.Lines(r.opts.indent), nl) + nl)
		return err
	}
}

func (r *renderer) decode(source string, in io.Reader) error {
	index := 0
	fn := func(v xgxresult.Value) error {
		err := r.render(source, index, v)
		index++
		return err
	}
	var err error
	if r.opts.input == "msgpack" {
		err = xgxresult.DecodeMsgpackStream(in, fn)
	} else {
		err = xgxresult.DecodeJSONStream(in, fn)
	}
	return errors.Wrapf(err, "%s", source)
}

func (r *renderer) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "unable to open input")
	}
	defer f.Close()
	return r.decode(path, bufio.NewReader(f))
}

func newLogger(stderr io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err == pflag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	logger := newLogger(stderr, opts.verbose)
	r := &renderer{opts: opts, out: bufio.NewWriter(stdout), logger: logger}
	defer r.out.Flush()

	if len(opts.files) == 0 {
		err = r.decode("stdin", stdin)
	}
	for _, path := range opts.files {
		if err = r.decodeFile(path); err != nil {
			break
		}
	}
	if err != nil {
		logger.Error(err)
		return 1
	}
	if r.failed > 0 {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
