package eramvisuals

import (
	"runtime"
	"strings"
)

// ScriptArguments are the arguments of one chart script run, as a main and a fallback call.
type ScriptArguments struct {
	MainInterpreter     string // absolute path, may be empty
	FallbackInterpreter string // resolved by the shell through PATH
	Script              string
	CSVFile             string
	OutputDir           string
}

func (a ScriptArguments) call(interpreter string) []string {
	return []string{interpreter, a.Script, a.CSVFile, a.OutputDir, "--verbose"}
}

// MainCall is `<main interpreter> <script> <csv> <output dir> --verbose`.
func (a ScriptArguments) MainCall() []string {
	return a.call(a.MainInterpreter)
}

// FallbackCall is MainCall with the fallback interpreter.
func (a ScriptArguments) FallbackCall() []string {
	return a.call(a.FallbackInterpreter)
}

// CommandLine joins a call into a single shell command line, quoting every argument.
func CommandLine(call []string) string {
	quoted := make([]string, len(call))
	for i, arg := range call {
		quoted[i] = quote(arg)
	}
	return strings.Join(quoted, " ")
}

func quote(arg string) string {
	if runtime.GOOS == "windows" {
		return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// shell returns the shell and the flag that make it run a command line.
func shell() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}
