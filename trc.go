package x509name

/*
trc.go contains the package debug logger. Output is produced through
logrus at the Debug level, and only for [EventType] categories that
were enabled.
*/

import (
	"os"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

/*
EnvDebugVar defines the environment variable name which can be used
to enable debug logging at runtime. Its value is a comma-separated
list of [EventType] names (e.g. "merge,verify") or decimal masks.
*/
const EnvDebugVar = "X509NAME_DEBUG"

var (
	tmu    sync.RWMutex
	events EventType
	logger = newDefaultLogger()
)

func newDefaultLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return l.WithField("subsys", "x509name")
}

/*
SetLogger replaces the package logger. A nil entry restores the default
logger, which writes to [os.Stderr].
*/
func SetLogger(entry *logrus.Entry) {
	tmu.Lock()
	defer tmu.Unlock()
	if entry == nil {
		entry = newDefaultLogger()
	}
	logger = entry
}

/*
EnableDebug adds the [EventType] bits within ev to the set of categories
to be logged, and raises the level of the package logger to Debug.
*/
func EnableDebug(ev EventType) {
	tmu.Lock()
	defer tmu.Unlock()
	events |= ev
	if logger.Logger.GetLevel() < logrus.DebugLevel {
		logger.Logger.SetLevel(logrus.DebugLevel)
	}
}

/*
DisableDebug removes the [EventType] bits within ev from the set of
categories to be logged.
*/
func DisableDebug(ev EventType) {
	tmu.Lock()
	defer tmu.Unlock()
	events &^= ev
}

func debugEnabled(ev EventType) bool {
	tmu.RLock()
	defer tmu.RUnlock()
	return events&ev != 0
}

func debugEvent(ev EventType, msg string, kv ...any) {
	if !debugEnabled(ev) {
		return
	}

	tmu.RLock()
	l := logger
	tmu.RUnlock()

	fields := logrus.Fields{"event": ev.String()}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			fields[k] = fmtArg(kv[i+1])
		}
	}
	l.WithFields(fields).Debug(msg)
}

/*
debugPath logs function entry and returns a closure which logs the
corresponding exit.
*/
func debugPath(kv ...any) func(rets ...any) {
	if !debugEnabled(EventEnter | EventExit) {
		return func(_ ...any) {}
	}

	fn := callerName()
	debugEvent(EventEnter, "enter "+fn, kv...)
	return func(rets ...any) {
		debugEvent(EventExit, "exit "+fn, rets...)
	}
}

func callerName() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc).Name()
	if i := lidxb(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

func debugInfo(msg string, kv ...any)       { debugEvent(EventInfo, msg, kv...) }
func debugParse(msg string, kv ...any)      { debugEvent(EventParse, msg, kv...) }
func debugCodec(msg string, kv ...any)      { debugEvent(EventCodec, msg, kv...) }
func debugConstrains(msg string, kv ...any) { debugEvent(EventConstrains, msg, kv...) }
func debugSubtree(msg string, kv ...any)    { debugEvent(EventSubtree, msg, kv...) }
func debugMerge(msg string, kv ...any)      { debugEvent(EventMerge, msg, kv...) }
func debugVerify(msg string, kv ...any)     { debugEvent(EventVerify, msg, kv...) }

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case int:
		s = itoa(v)
	case bool:
		s = bool2str(v)
	case []byte:
		s = hexstr(v)
	case error:
		s = v.Error()
	case interface{ String() string }:
		s = v.String()
	default:
		s = "<unidentified>"
	}

	return
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		if ev := parseEventTypes(evar); ev != EventNone {
			EnableDebug(ev)
			debugInfo("debug logging enabled", "events", evar)
		}
	}
}
