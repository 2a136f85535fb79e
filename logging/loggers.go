package logging

import (
	"bytes"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// const
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)
const (
	//PANIC log level
	PANIC uint32 = iota
	//FATAL has list msg
	FATAL
	//ERROR has list msg
	ERROR
	//WARN only log
	WARN
	//INFO only log
	INFO
	//DEBUG only log
	DEBUG
	//TRACE only log
	TRACE
)
const (
	//MsgFormatSingle use info
	MsgFormatSingle uint32 = iota
	//MsgFormatMulti use show all func call relation
	MsgFormatMulti
)

// LogFormat is to log format
type LogFormat = map[string]interface{}

// Options controls where and how much the loggers write.
type Options struct {
	// Dir is the log folder; empty disables file output.
	Dir      string
	Filename string
	Level    string
	// MaxAge in years for rotated files, 0 keeps them forever.
	MaxAge uint32
	// DisableCPrint sends CPrint to the file only.
	DisableCPrint bool
}

type Logger struct {
	*logrus.Logger
	//CallRelation to show stack list
	CallRelation uint32
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

// SetCallRelation chooses between single caller and call list fields.
func (logger *Logger) SetCallRelation(button uint32) {
	atomic.StoreUint32(&logger.CallRelation, button)
}

var (
	mu   sync.RWMutex
	clog *Logger
	vlog *Logger
)

var levels = map[string]logrus.Level{
	PanicLevel: logrus.PanicLevel,
	FatalLevel: logrus.FatalLevel,
	ErrorLevel: logrus.ErrorLevel,
	WarnLevel:  logrus.WarnLevel,
	InfoLevel:  logrus.InfoLevel,
	DebugLevel: logrus.DebugLevel,
	TraceLevel: logrus.TraceLevel,
}

func convertLevel(level string) logrus.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return logrus.InfoLevel
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(level)]
	return ok
}

func newLogger(opts Options, fileHooker logrus.Hook) *Logger {
	l := NewLogger()
	LoadFunctionHooker(l)
	if fileHooker != nil {
		l.Hooks.Add(fileHooker)
	}
	l.Out = ioutil.Discard
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = convertLevel(opts.Level)
	return l
}

// Init loggers
func Init(opts Options) {
	if opts.Filename == "" {
		opts.Filename = "sha256sum"
	}
	var fileHooker logrus.Hook
	if opts.Dir != "" {
		fileHooker = NewFileRotateHooker(opts.Dir, opts.Filename, opts.MaxAge, nil)
	}

	v := newLogger(opts, fileHooker)
	c := v
	if !opts.DisableCPrint {
		c = newLogger(opts, fileHooker)
		c.Out = os.Stderr
	}

	mu.Lock()
	vlog, clog = v, c
	mu.Unlock()

	v.WithFields(logrus.Fields{
		"path":  opts.Dir,
		"level": opts.Level,
	}).Info("Logger Configuration.")
}

// loggers returns the configured loggers, falling back to a console
// logger for CPrint and a silent one for VPrint.
func loggers() (c, v *Logger) {
	mu.RLock()
	c, v = clog, vlog
	mu.RUnlock()
	if c != nil && v != nil {
		return c, v
	}

	mu.Lock()
	defer mu.Unlock()
	if clog == nil || vlog == nil {
		vlog = newLogger(Options{Level: InfoLevel}, nil)
		clog = newLogger(Options{Level: InfoLevel}, nil)
		clog.Out = os.Stderr
	}
	return clog, vlog
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stderr + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := loggers()
	output(c, level, msg, formats...)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := loggers()
	output(v, level, msg, formats...)
}

func output(l *Logger, level uint32, msg string, formats ...LogFormat) {
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		l.SetCallRelation(MsgFormatMulti)
		entry.Panic(msg)
	case FATAL:
		l.SetCallRelation(MsgFormatMulti)
		entry.Fatal(msg)
	case ERROR:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	case WARN:
		l.SetCallRelation(MsgFormatSingle)
		entry.Warn(msg)
	case INFO:
		l.SetCallRelation(MsgFormatSingle)
		entry.Info(msg)
	case DEBUG:
		l.SetCallRelation(MsgFormatSingle)
		entry.Debug(msg)
	case TRACE:
		l.SetCallRelation(MsgFormatSingle)
		entry.Trace(msg)
	default:
		l.SetCallRelation(MsgFormatMulti)
		entry.Error(msg)
	}
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}
