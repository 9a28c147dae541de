package observability

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Traced returns a Logger that writes to the schuko tracer selected by key.
// Fields are appended to the message as key=value pairs.
func Traced(key string) Logger {
	return tracedLogger{key: key}
}

type tracedLogger struct {
	key    string
	fields []Field
}

func (l tracedLogger) tracer() tracing.Trace {
	return tracing.Select(l.key)
}

func (l tracedLogger) Debug(msg string, fields ...Field) {
	l.tracer().Debugf("%s", l.format(msg, fields))
}

func (l tracedLogger) Info(msg string, fields ...Field) {
	l.tracer().Infof("%s", l.format(msg, fields))
}

// schuko has no warning level; warnings go to Info with a marker.
func (l tracedLogger) Warn(msg string, fields ...Field) {
	l.tracer().Infof("WARN %s", l.format(msg, fields))
}

func (l tracedLogger) Error(msg string, fields ...Field) {
	l.tracer().Errorf("%s", l.format(msg, fields))
}

func (l tracedLogger) With(fields ...Field) Logger {
	all := make([]Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)
	return tracedLogger{key: l.key, fields: all}
}

func (l tracedLogger) format(msg string, fields []Field) string {
	if len(l.fields) == 0 && len(fields) == 0 {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for _, f := range l.fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key(), f.Value())
	}
	return sb.String()
}
