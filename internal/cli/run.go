package cli

import "fmt"

// Run is a high-level CLI entrypoint suitable for black-box tests.  It
// accepts the argument slice (excluding argv[0]), reports errors and the
// size summary on streams.Stderr, and returns the exit code.
func Run(args []string, streams Streams) int {
	inv, err := ParseInvocation(args)
	if err != nil {
		fmt.Fprintln(streams.Stderr, err)
		return ExitCode(err)
	}

	result, err := Execute(inv, streams)
	if err != nil {
		fmt.Fprintln(streams.Stderr, err)
		return result.ExitCode
	}
	fmt.Fprintln(streams.Stderr, result.Summary)
	return result.ExitCode
}
