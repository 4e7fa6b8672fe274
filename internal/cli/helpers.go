package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Global flags (set from the cmd package)
var (
	quiet   bool
	noColor = termenv.EnvNoColor()

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetGlobalFlags sets the global flag values from the cmd package. NO_COLOR in
// the environment always disables color.
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc || termenv.EnvNoColor()
}

// SetOutput redirects the print helpers, mainly for tests.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// NoColor reports whether colored output is disabled.
func NoColor() bool {
	return noColor
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	printPrefixed(stdout, "✓", "OK:", format, args...)
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	printPrefixed(stdout, "ℹ", "INFO:", format, args...)
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	printPrefixed(stderr, "⚠", "WARNING:", format, args...)
}

func printPrefixed(w io.Writer, symbol, plain, format string, args ...interface{}) {
	prefix := symbol
	if noColor {
		prefix = plain
	}
	fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
