// Package pretty is a thin print-style facade over logrus used by the
// startup and shutdown code.
package pretty

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

func sprintln(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// Logln logs its operands at info level, space separated.
func Logln(args ...interface{}) {
	log.Info(sprintln(args...))
}

func Logf(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func LoglnWarn(args ...interface{}) {
	log.Warn(sprintln(args...))
}

// LoglnFatal logs and exits the process.
func LoglnFatal(args ...interface{}) {
	log.Fatal(sprintln(args...))
}
