package huffstring

import (
	"sort"
)

// FrequencyTable maps each Symbol observed in a sequence to the number of
// times it occurred.  Every count is at least 1.
type FrequencyTable map[Symbol]uint64

// CountFrequencies tallies the occurrences of each Symbol in seq.
func CountFrequencies(seq []Symbol) FrequencyTable {
	ft := make(FrequencyTable)
	for _, symbol := range seq {
		ft[symbol]++
	}
	return ft
}

// Symbols returns the Symbols in this table in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(ft))
	for symbol := range ft {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Total returns the sum of all counts, i.e. the length of the sequence the
// table was built from.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}
