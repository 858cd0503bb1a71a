package color

import (
	"time"

	"github.com/tliron/commonlog"
)

// Sink receives a timestamped message for every failure a Reporter sees.
type Sink func(at time.Time, message string)

// CommonlogSink adapts a commonlog logger to a Sink, logging at error level.
func CommonlogSink(log commonlog.Logger) Sink {
	return func(at time.Time, message string) {
		log.Errorf("%s: %s", at.Format(time.RFC3339Nano), message)
	}
}

// Reporter wraps the parse and convert entry points and reports failures to
// Sink before returning them. The zero Reporter reports nothing.
type Reporter struct {
	Sink Sink
	Now  func() time.Time
}

// ParseString behaves like the package-level ParseString.
func (r Reporter) ParseString(s string) (Value, error) {
	v, err := ParseString(s)
	if err != nil {
		r.report(err)
	}
	return v, err
}

// Parse behaves like the package-level Parse.
func (r Reporter) Parse(u Unit, s string) (Value, error) {
	v, err := Parse(u, s)
	if err != nil {
		r.report(err)
	}
	return v, err
}

// ConvertString behaves like the package-level ConvertString.
func (r Reporter) ConvertString(s string, to Unit) (string, error) {
	out, err := ConvertString(s, to)
	if err != nil {
		r.report(err)
	}
	return out, err
}

// report hands err to the sink. A panicking sink is swallowed so the caller
// still receives the original error.
func (r Reporter) report(err error) {
	if r.Sink == nil {
		return
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	defer func() { _ = recover() }()
	r.Sink(now(), err.Error())
}
