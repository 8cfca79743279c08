package except

import (
	"fmt"
	"log/slog"
)

func Must(pred bool, msg string, args ...any) {
	if !pred {
		panic(fmt.Sprintf(msg, args...))
	}
}

// Never marks a branch that no input can reach.
func Never(msg string, args ...any) {
	panic(fmt.Sprintf("unreachable: %v", fmt.Sprintf(msg, args...)))
}

const logErrKey = "err"

// LogErrAttr wraps an error into a loggable attribute.
func LogErrAttr(err error) slog.Attr {
	if err == nil {
		return slog.Group(logErrKey)
	}
	return slog.String(logErrKey, err.Error())
}
