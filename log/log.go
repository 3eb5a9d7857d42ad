package log

import (
	log "github.com/sirupsen/logrus"
)

// Logger is a levelled key/value logger. Fields are passed as
// alternating key/value arguments.
type Logger interface {
	Trace(message string, opts ...interface{})
	Debug(message string, opts ...interface{})
	Info(message string, opts ...interface{})
	Warning(message string, opts ...interface{})
	Error(message string, opts ...interface{})
	Fatal(message string, opts ...interface{})
	Child(opts ...interface{}) Logger
}

type ChildLogger struct {
	l      Logger
	fields []interface{}
}

func (c *ChildLogger) Trace(message string, opts ...interface{}) {
	c.l.Trace(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Debug(message string, opts ...interface{}) {
	c.l.Debug(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Info(message string, opts ...interface{}) {
	c.l.Info(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Warning(message string, opts ...interface{}) {
	c.l.Warning(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Error(message string, opts ...interface{}) {
	c.l.Error(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Fatal(message string, opts ...interface{}) {
	c.l.Fatal(message, append(opts, c.fields...)...)
}

func (c *ChildLogger) Child(opts ...interface{}) Logger {
	return &ChildLogger{
		l:      c,
		fields: opts,
	}
}

type rootLogger struct {
}

func (r *rootLogger) Trace(message string, opts ...interface{}) {
	r.entry(opts).Trace(message)
}

func (r *rootLogger) Debug(message string, opts ...interface{}) {
	r.entry(opts).Debug(message)
}

func (r *rootLogger) Info(message string, opts ...interface{}) {
	r.entry(opts).Info(message)
}

func (r *rootLogger) Warning(message string, opts ...interface{}) {
	r.entry(opts).Warning(message)
}

func (r *rootLogger) Error(message string, opts ...interface{}) {
	r.entry(opts).Error(message)
}

func (r *rootLogger) Fatal(message string, opts ...interface{}) {
	r.entry(opts).Fatal(message)
}

func (r *rootLogger) Child(opts ...interface{}) Logger {
	return &ChildLogger{
		l:      r,
		fields: opts,
	}
}

func (r *rootLogger) entry(opts []interface{}) *log.Entry {
	if len(opts)%2 != 0 {
		panic("mismatched log key/value pairs")
	}

	fields := make(log.Fields, len(opts)/2)
	for i := 0; i < len(opts); i += 2 {
		fields[opts[i].(string)] = opts[i+1]
	}
	return log.WithFields(fields)
}

var root = new(rootLogger)

func ModuleLogger(name string) Logger {
	return root.Child("module", name)
}

func SetLevelFromName(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}
