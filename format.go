// format.go: text rendering of frozen errors.
//
// Layout (indent unit = two spaces, I = unit repeated indent times):
//
//	I! <message>
//	I+ "<escaped key>": <first line of pretty-printed value>
//	<remaining lines of the value, as printed>
//	  <each child rendered at the same indent, every line prefixed by one unit>
//
// Data entries follow insertion order; children follow list order. The value
// printer indents nested JSON by itself, so its continuation lines are not
// prefixed with I.
//
// fmt verbs:
//
//	%s, %v  → message (Error())
//	%+v     → full rendering, newline separated
//	%q      → quoted message
package xgxresult

import (
	"fmt"
	"io"
	"strings"
)

// IndentUnit is the indentation added per nesting level.
const IndentUnit = "  "

// keyEscaper escapes every occurrence of the special characters of a key.
var keyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\t", `\t`,
	"\r", `\r`,
	"\n", `\n`,
	"\b", `\b`,
	"\f", `\f`,
)

func escapeKey(key string) string {
	return keyEscaper.Replace(key)
}

func (e *frozenErr) Lines(indent int) []string {
	if indent < 0 {
		indent = 0
	}
	prefix := strings.Repeat(IndentUnit, indent)

	lines := []string{prefix + "! " + e.msg}
	for _, f := range e.data {
		valueLines := strings.Split(prettyText(f.Val), "\n")
		lines = append(lines, prefix+`+ "`+escapeKey(f.Key)+`": `+valueLines[0])
		lines = append(lines, valueLines[1:]...)
	}
	for _, c := range e.children {
		for _, l := range c.Lines(indent) {
			lines = append(lines, IndentUnit+l)
		}
	}
	return lines
}

// ToString joins Lines(0) with newline. An empty newline stands for the
// default "\n"; a Go string argument cannot be absent, so "" is the sentinel
// and joining with no separator at all is not supported.
func (e *frozenErr) ToString(newline string) string {
	if newline == "" {
		newline = "\n"
	}
	return strings.Join(e.Lines(0), newline)
}

func (e *frozenErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.ToString("\n"))
			return
		}
		_, _ = io.WriteString(s, e.msg)
	case 's':
		_, _ = io.WriteString(s, e.msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.msg)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%T)", verb, e)
	}
}
