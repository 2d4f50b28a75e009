// Package errlog emits frozen xgxresult errors as structured logrus entries.
//
// The error message becomes the log message. Data entries become fields
// (optionally prefixed), the direct children's messages become the "causes"
// field, and the full text rendering can be attached as "detail".
package errlog

import (
	"github.com/sirupsen/logrus"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Field names written besides the data entries.
const (
	CausesField = "causes"
	DetailField = "detail"
)

// Option configures how an error is mapped onto a log entry.
type Option func(*config)

type config struct {
	level  logrus.Level
	prefix string
	detail bool
}

func newConfig(opts []Option) config {
	c := config{level: logrus.ErrorLevel}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}

// WithLevel sets the level used by Log. Defaults to logrus.ErrorLevel.
func WithLevel(level logrus.Level) Option { return func(c *config) { c.level = level } }

// WithFieldPrefix prefixes every data field name, e.g. "err." gives "err.tenant".
// The causes and detail fields are not prefixed.
func WithFieldPrefix(prefix string) Option { return func(c *config) { c.prefix = prefix } }

// WithDetail attaches the multi-line rendering of the whole tree as the detail
// field.
func WithDetail(on bool) Option { return func(c *config) { c.detail = on } }

// Fields maps e onto logrus fields. A nil e yields empty fields.
func Fields(e xgxresult.Error, opts ...Option) logrus.Fields {
	return fields(e, newConfig(opts))
}

func fields(e xgxresult.Error, c config) logrus.Fields {
	out := logrus.Fields{}
	if e == nil {
		return out
	}
	for _, f := range e.Data() {
		out[c.prefix+f.Key] = xgxresult.Native(f.Val)
	}
	if kids := e.Children(); len(kids) > 0 {
		causes := make([]string, len(kids))
		for i, k := range kids {
			causes[i] = k.Message()
		}
		out[CausesField] = causes
	}
	if c.detail {
		out[DetailField] = e.ToString("\n")
	}
	return out
}

// Entry returns logger enriched with the fields of e.
func Entry(logger logrus.FieldLogger, e xgxresult.Error, opts ...Option) *logrus.Entry {
	return logger.WithFields(Fields(e, opts...))
}

// Log writes e to logger at the configured level, with the error message as
// the log message. A nil e is ignored.
func Log(logger logrus.FieldLogger, e xgxresult.Error, opts ...Option) {
	if e == nil {
		return
	}
	c := newConfig(opts)
	logger.WithFields(fields(e, c)).Log(c.level, e.Message())
}
