package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("MSGMERGE3_DEBUG") != ""

func Enabled() bool {
	return enabled
}

// SetEnabled overrides the debug flag, used by the CLI's --debug flag
// since the MSGMERGE3_DEBUG env var is only consulted once at process
// start.
func SetEnabled(v bool) {
	enabled = v
}

func Logf(format string, args ...interface{}) {
	if enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func Printf(format string, args ...interface{}) {
	if enabled {
		fmt.Printf(format, args...)
	}
}
