package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/huffstring"
)

// Streams are the standard streams a command reads from and writes to when no
// file is named.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Document is what encode writes and decode reads: the bitstring together
// with the code table needed to decode it.
type Document struct {
	Bits  string            `json:"bits"`
	Table *huffstring.Table `json:"table"`
}

// Summary compares the size of the text, at eight bits per byte, with the
// size of its encoding.
type Summary struct {
	InputBits   int
	EncodedBits int
}

func (s Summary) String() string {
	return fmt.Sprintf("input bits: %d, encoded bits: %d", s.InputBits, s.EncodedBits)
}

// Result is the outcome of Execute.
type Result struct {
	ExitCode int
	Summary  Summary
}

// Execute runs a parsed Invocation.
func Execute(inv Invocation, streams Streams) (Result, error) {
	input, err := readInput(inv.InputPath, streams.Stdin)
	if err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}

	var output []byte
	var summary Summary
	switch inv.Command {
	case CommandEncode:
		output, summary, err = encode(input, inv.Canonical)
	case CommandDecode:
		output, summary, err = decode(input)
	default:
		err = invalidInvocationf("unknown command %q", inv.Command)
	}
	if err != nil {
		return Result{ExitCode: ExitCode(err)}, err
	}

	if err := writeOutput(inv.OutputPath, streams.Stdout, output); err != nil {
		return Result{ExitCode: ExitInternalError}, err
	}
	return Result{ExitCode: ExitSuccess, Summary: summary}, nil
}

// ExitCode maps an error returned by ParseInvocation or Execute to a process
// exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}
	switch {
	case errors.Is(err, huffstring.ErrMalformed):
		return ExitCodecFailure
	case errors.Is(err, huffstring.ErrInvalidTable):
		return ExitCodecFailure
	case errors.Is(err, huffstring.ErrInvalidSymbol):
		return ExitCodecFailure
	case errors.Is(err, errBadDocument):
		return ExitCodecFailure
	default:
		return ExitInternalError
	}
}

var errBadDocument = errors.New("invalid document")

func encode(input []byte, canonical bool) ([]byte, Summary, error) {
	seq := huffstring.SymbolsFromString(string(input))
	bits, table := huffstring.Encode(seq)
	if canonical {
		table = table.Canonical()
		var err error
		bits, err = table.Encode(seq)
		if err != nil {
			return nil, Summary{}, err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(Document{Bits: bits, Table: table}); err != nil {
		return nil, Summary{}, err
	}
	return buf.Bytes(), Summary{InputBits: 8 * len(input), EncodedBits: len(bits)}, nil
}

func decode(input []byte) ([]byte, Summary, error) {
	var doc Document
	if err := json.Unmarshal(input, &doc); err != nil {
		if errors.Is(err, huffstring.ErrInvalidTable) {
			return nil, Summary{}, err
		}
		return nil, Summary{}, fmt.Errorf("%w: %v", errBadDocument, err)
	}
	if doc.Table == nil {
		return nil, Summary{}, fmt.Errorf("%w: missing \"table\"", errBadDocument)
	}

	seq, err := doc.Table.Decode(doc.Bits)
	if err != nil {
		return nil, Summary{}, err
	}
	text, err := huffstring.StringFromSymbols(seq)
	if err != nil {
		return nil, Summary{}, err
	}
	return []byte(text), Summary{InputBits: 8 * len(text), EncodedBits: len(doc.Bits)}, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0666)
}
