package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Exit codes returned by Run.
const (
	ExitSuccess           = 0
	ExitCodecFailure      = 1
	ExitInvalidInvocation = 2
	ExitInternalError     = 4
)

const usage = "usage: huffstring encode [-in FILE] [-out FILE] [-canonical] | huffstring decode [-in FILE] [-out FILE]"

// Command names the operation to perform.
type Command string

const (
	CommandEncode Command = "encode"
	CommandDecode Command = "decode"
)

// Invocation is the parsed form of a command line.  An empty path means the
// corresponding standard stream.
type Invocation struct {
	Command    Command
	InputPath  string
	OutputPath string
	Canonical  bool
}

// InvocationError reports a command line that cannot be run, along with the
// exit code to use.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...interface{}) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses the arguments that follow the program name.
//
// Flag errors are returned, never printed, and "-" is accepted as an explicit
// name for stdin or stdout.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, invalidInvocationf("missing command\n%s", usage)
	}

	var inv Invocation
	switch cmd := Command(args[0]); cmd {
	case CommandEncode, CommandDecode:
		inv.Command = cmd
	default:
		return Invocation{}, invalidInvocationf("unknown command %q\n%s", args[0], usage)
	}

	fs := flag.NewFlagSet("huffstring "+string(inv.Command), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&inv.InputPath, "in", "", "read input from this file instead of stdin")
	fs.StringVar(&inv.OutputPath, "out", "", "write output to this file instead of stdout")
	if inv.Command == CommandEncode {
		fs.BoolVar(&inv.Canonical, "canonical", false, "emit canonical codes with the same lengths")
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Invocation{}, invalidInvocationf("%s", usage)
		}
		return Invocation{}, invalidInvocationf("%v\n%s", err, usage)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected arguments: %s\n%s", strings.Join(fs.Args(), " "), usage)
	}

	inv.InputPath = cleanPath(inv.InputPath)
	inv.OutputPath = cleanPath(inv.OutputPath)
	return inv, nil
}

func cleanPath(path string) string {
	if path == "" || path == "-" {
		return ""
	}
	return filepath.Clean(path)
}
