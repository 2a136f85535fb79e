package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// callerSkip is the stack depth from Fire back to the CPrint/VPrint caller.
const callerSkip = 8

// callDepth is how many frames MsgFormatMulti records.
const callDepth = 3

type functionHooker struct {
	innerLogger *Logger
}

func shortFuncName(fname string) string {
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	pc, _, _, ok := runtime.Caller(callerSkip)
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	file, line := f.FileLine(pc)
	entry.Data["func"] = shortFuncName(f.Name())
	entry.Data["line"] = line
	entry.Data["file"] = filepath.Base(file)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i := callerSkip; i < callerSkip+callDepth; i++ {
		pc, _, _, ok := runtime.Caller(i)
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(file), shortFuncName(f.Name()), line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	switch atomic.LoadUint32(&h.innerLogger.CallRelation) {
	case MsgFormatMulti:
		h.fires(entry)
	case MsgFormatSingle:
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{innerLogger: logger})
}
