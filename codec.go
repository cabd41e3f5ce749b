package huffstring

import (
	"github.com/chronos-tachyon/assert"
)

// Encode builds a Huffman code from the Symbol frequencies of seq and returns
// seq encoded with it, along with the code itself.  The Table is needed to
// decode the result.
//
// Every call derives a fresh code; nothing is carried over between calls.  An
// empty seq yields an empty bitstring and an empty Table.  Every Symbol of seq
// must lie in 0 .. MaxSymbol.
func Encode(seq []Symbol) (string, *Table) {
	codes, reverse := DeriveCodes(BuildTree(seq))
	t := newDerivedTable(codes, reverse)
	bits, err := t.Encode(seq)
	assert.Assertf(err == nil, "code derived from input does not cover it: %v", err)
	return bits, t
}

// Decode decodes bits using the codes in rt.  rt must come from the same
// Encode call that produced bits; a mismatched table is not detected and
// yields either an error or the wrong Symbols.
func Decode(bits string, rt ReverseCodeTable) ([]Symbol, error) {
	d, err := NewDecoder(rt)
	if err != nil {
		return nil, err
	}
	return d.Decode(bits)
}

// EncodeString is Encode for text, with one Symbol per byte.
func EncodeString(str string) (string, *Table) {
	return Encode(SymbolsFromString(str))
}

// DecodeString is Decode for text, with one Symbol per byte.
func DecodeString(bits string, rt ReverseCodeTable) (string, error) {
	seq, err := Decode(bits, rt)
	if err != nil {
		return "", err
	}
	return StringFromSymbols(seq)
}
