package huffstring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Table pairs a CodeTable with its ReverseCodeTable.  A Table is immutable
// once constructed and may be shared between goroutines.
type Table struct {
	codes   CodeTable
	reverse ReverseCodeTable
	decoder Decoder
}

// NewTable validates codes and returns the corresponding Table.  The codes
// must be non-empty strings of '0' and '1' digits, distinct, and prefix-free.
func NewTable(codes CodeTable) (*Table, error) {
	ct := make(CodeTable, len(codes))
	rt := make(ReverseCodeTable, len(codes))
	for symbol, code := range codes {
		if symbol < 0 {
			return nil, invalidTablef("invalid symbol %d", symbol)
		}
		if other, found := rt[code]; found {
			return nil, invalidTablef("symbols %d and %d share code %q", other, symbol, code)
		}
		ct[symbol] = code
		rt[code] = symbol
	}

	t := &Table{codes: ct, reverse: rt}
	if err := t.decoder.Init(rt); err != nil {
		return nil, err
	}
	return t, nil
}

// newDerivedTable wraps tables produced by DeriveCodes, which are valid by
// construction.
func newDerivedTable(codes CodeTable, reverse ReverseCodeTable) *Table {
	t := &Table{codes: codes, reverse: reverse}
	err := t.decoder.Init(reverse)
	assert.Assertf(err == nil, "derived code table is invalid: %v", err)
	return t
}

// Code returns the code for symbol, if any.
func (t *Table) Code(symbol Symbol) (string, bool) {
	code, found := t.codes[symbol]
	return code, found
}

// Symbol returns the Symbol for code, if any.
func (t *Table) Symbol(code string) (Symbol, bool) {
	symbol, found := t.reverse[code]
	if !found {
		return InvalidSymbol, false
	}
	return symbol, true
}

// Len returns the number of Symbols in this Table.
func (t *Table) Len() int {
	return len(t.codes)
}

// MinSize is the bit length of the shortest code.
func (t *Table) MinSize() int {
	return t.decoder.MinSize()
}

// MaxSize is the bit length of the longest code.
func (t *Table) MaxSize() int {
	return t.decoder.MaxSize()
}

// Symbols returns the Symbols in this Table in ascending order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.codes))
	for symbol := range t.codes {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Codes returns a copy of the Symbol-to-code mapping.
func (t *Table) Codes() CodeTable {
	out := make(CodeTable, len(t.codes))
	for symbol, code := range t.codes {
		out[symbol] = code
	}
	return out
}

// Reverse returns a copy of the code-to-Symbol mapping.
func (t *Table) Reverse() ReverseCodeTable {
	out := make(ReverseCodeTable, len(t.reverse))
	for code, symbol := range t.reverse {
		out[code] = symbol
	}
	return out
}

// SizeBySymbol returns the bit length of each Symbol's code.  This is enough
// to rebuild the canonical form of this Table with NewCanonicalTable.
func (t *Table) SizeBySymbol() map[Symbol]int {
	out := make(map[Symbol]int, len(t.codes))
	for symbol, code := range t.codes {
		out[symbol] = len(code)
	}
	return out
}

// Canonical returns the canonical Huffman code with the same code length for
// every Symbol.  Unlike the codes read off a merge tree, the canonical codes
// depend only on the lengths.
func (t *Table) Canonical() *Table {
	ct, err := NewCanonicalTable(t.SizeBySymbol())
	assert.Assertf(err == nil, "code lengths of a valid table are not canonicalizable: %v", err)
	return ct
}

// Encode concatenates the code for each Symbol of seq, in order.  It fails if
// seq contains a Symbol this Table has no code for.
func (t *Table) Encode(seq []Symbol) (string, error) {
	var size int
	for index, symbol := range seq {
		code, found := t.codes[symbol]
		if !found {
			return "", fmt.Errorf("%w: symbol %d at index %d", ErrUnknownSymbol, symbol, index)
		}
		size += len(code)
	}

	var buf strings.Builder
	buf.Grow(size)
	for _, symbol := range seq {
		buf.WriteString(t.codes[symbol])
	}
	return buf.String(), nil
}

// Decode decodes bits using this Table.  See Decoder.Decode.
func (t *Table) Decode(bits string) ([]Symbol, error) {
	return t.decoder.Decode(bits)
}

// Dump writes a programmer-readable debugging dump of the Table's current
// state to the given writer.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %q\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (t *Table) DebugString() string {
	var buf strings.Builder
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a brief description of this Table.
func (t *Table) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with code lengths of %d .. %d bits)", t.Len(), t.MinSize(), t.MaxSize())
}

// MarshalJSON fulfills json.Marshaler.  Codes are listed in Symbol order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var jt jsonTable
	jt.Codes = make([]jsonCode, 0, len(t.codes))
	for _, symbol := range t.Symbols() {
		jt.Codes = append(jt.Codes, jsonCode{Symbol: symbol, Code: t.codes[symbol]})
	}
	return json.Marshal(jt)
}

// UnmarshalJSON fulfills json.Unmarshaler.  The decoded codes are validated
// as by NewTable.
func (t *Table) UnmarshalJSON(raw []byte) error {
	var jt jsonTable
	if err := json.Unmarshal(raw, &jt); err != nil {
		return err
	}

	codes := make(CodeTable, len(jt.Codes))
	for _, jc := range jt.Codes {
		if other, found := codes[jc.Symbol]; found {
			return invalidTablef("symbol %d has two codes, %q and %q", jc.Symbol, other, jc.Code)
		}
		codes[jc.Symbol] = jc.Code
	}

	nt, err := NewTable(codes)
	if err != nil {
		return err
	}
	*t = *nt
	return nil
}

var (
	_ fmt.Stringer     = (*Table)(nil)
	_ json.Marshaler   = (*Table)(nil)
	_ json.Unmarshaler = (*Table)(nil)
)

type jsonTable struct {
	Codes []jsonCode `json:"codes"`
}

type jsonCode struct {
	Symbol Symbol `json:"symbol"`
	Code   string `json:"code"`
}
