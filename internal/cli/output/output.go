package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ActionsLogging returns true when running inside a GitHub Actions
// job, where log lines may carry workflow commands.
func ActionsLogging() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Bold returns text in bold (or plain if colors disabled)
func Bold(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", bold, text, reset)
}

// Success returns text styled for success messages
func Success(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", green, text, reset)
}

// Error returns text styled for error messages
func Error(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", red, text, reset)
}

// Warning returns text styled for warning messages
func Warning(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", yellow, text, reset)
}

// Info returns text styled for informational messages
func Info(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", cyan, text, reset)
}

// Header returns text styled as a section header
func Header(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s%s", bold, white, text, reset)
}

// PrintHeader prints a bold section header. On Actions the header
// opens a collapsible log group; call PrintEndGroup to close it.
func PrintHeader(text string) {
	if ActionsLogging() {
		fmt.Printf("::group::%s\n", text)
		return
	}
	fmt.Println(Header(text))
}

// PrintEndGroup closes the current Actions log group.
func PrintEndGroup() {
	if ActionsLogging() {
		fmt.Println("::endgroup::")
	}
}

// PrintStep prints a single progress step.
func PrintStep(text string) {
	fmt.Printf("-> %s\n", Info(text))
}

// PrintSuccess prints a success message.
func PrintSuccess(text string) {
	fmt.Printf("+ %s\n", Success(text))
}

// PrintWarning prints a warning, annotated on Actions.
func PrintWarning(text string) {
	if ActionsLogging() {
		fmt.Printf("::warning::%s\n", text)
		return
	}
	fmt.Printf("! %s\n", Warning(text))
}

// PrintError prints an error, annotated on Actions.
func PrintError(text string) {
	if ActionsLogging() {
		fmt.Printf("::error::%s\n", text)
		return
	}
	fmt.Printf("x %s\n", Error(text))
}
