package huffstring

import (
	"fmt"
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
//
// When working with text, each Symbol is one byte of the string.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromString splits a string into one Symbol per byte.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, len(str))
	for index := 0; index < len(str); index++ {
		out[index] = Symbol(str[index])
	}
	return out
}

// StringFromSymbols is the inverse of SymbolsFromString.  It fails if any
// Symbol lies outside the byte range.
func StringFromSymbols(seq []Symbol) (string, error) {
	buf := make([]byte, len(seq))
	for index, symbol := range seq {
		if symbol < 0 || symbol > math.MaxUint8 {
			return "", fmt.Errorf("%w: symbol %d at index %d is not a byte", ErrInvalidSymbol, symbol, index)
		}
		buf[index] = byte(symbol)
	}
	return string(buf), nil
}
