package huffstring

import (
	"errors"
	"strings"
	"testing"
)

func makeTestDecoder() *Decoder {
	d, err := NewDecoder(ReverseCodeTable{
		"1110": 0,
		"1111": 1,
		"100":  2,
		"101":  3,
		"110":  4,
		"0":    5,
	})
	if err != nil {
		panic(err)
	}
	return d
}

func TestDecoder_Sizes(t *testing.T) {
	d := makeTestDecoder()
	if d.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", d.Len())
	}
	if d.MinSize() != 1 {
		t.Errorf("expected minimum size 1, got %d", d.MinSize())
	}
	if d.MaxSize() != 4 {
		t.Errorf("expected maximum size 4, got %d", d.MaxSize())
	}
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		name   string
		bits   string
		expect []Symbol
	}

	testData := [...]testRow{
		{name: "empty", bits: "", expect: []Symbol{}},
		{name: "short", bits: "0", expect: []Symbol{5}},
		{name: "long", bits: "1111", expect: []Symbol{1}},
		{name: "mixed", bits: "0100101110111100", expect: []Symbol{5, 2, 3, 4, 1, 5, 5}},
		{name: "every-symbol", bits: "0100101110111011110", expect: []Symbol{5, 2, 3, 4, 0, 1, 5}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := d.Decode(row.bits)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalSymbols(row.expect, actual) {
				t.Errorf("wrong symbols:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestDecoder_DecodeErrors(t *testing.T) {
	d, err := NewDecoder(ReverseCodeTable{"00": 'a', "01": 'b', "110": 'c'})
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	type testRow struct {
		name    string
		bits    string
		offset  int
		pending string
		message string
	}

	testData := [...]testRow{
		{
			name:    "dead-end",
			bits:    "0010",
			offset:  3,
			pending: "10",
			message: "malformed bitstring: no code begins with the pending digits at offset 3 (pending \"10\")",
		},
		{
			name:    "truncated",
			bits:    "011",
			offset:  3,
			pending: "1",
			message: "malformed bitstring: truncated code, need 2 more bits at offset 3 (pending \"1\")",
		},
		{
			name:    "non-binary",
			bits:    "0x",
			offset:  1,
			pending: "0",
			message: "malformed bitstring: non-binary digit 'x' at offset 1 (pending \"0\")",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			seq, err := d.Decode(row.bits)
			if seq != nil {
				t.Errorf("expected no symbols on failure, got %v", seq)
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("expected *DecodeError, got %T: %v", err, err)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected error to wrap ErrMalformed")
			}
			if row.offset != decErr.Offset {
				t.Errorf("wrong offset: expect %d, actual %d", row.offset, decErr.Offset)
			}
			if row.pending != decErr.Pending {
				t.Errorf("wrong pending digits: expect %q, actual %q", row.pending, decErr.Pending)
			}
			if row.message != err.Error() {
				t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", row.message, err.Error())
			}
		})
	}
}

func TestDecoder_TruncatedRange(t *testing.T) {
	d := makeTestDecoder()
	_, err := d.Decode("01")
	expect := "malformed bitstring: truncated code, need 2 to 3 more bits at offset 2 (pending \"1\")"
	if err == nil || err.Error() != expect {
		t.Errorf("wrong error:\n\texpect: %s\n\tactual: %v", expect, err)
	}
}

func TestDecoder_Empty(t *testing.T) {
	d, err := NewDecoder(ReverseCodeTable{})
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	seq, err := d.Decode("")
	if err != nil || len(seq) != 0 {
		t.Errorf("expected empty result, got %v, %v", seq, err)
	}
	if _, err := d.Decode("0"); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}

	var zero Decoder
	if _, err := zero.Decode("1"); !errors.Is(err, ErrMalformed) {
		t.Errorf("zero Decoder: expected ErrMalformed, got %v", err)
	}
}

func TestDecoder_InitErrors(t *testing.T) {
	type testRow struct {
		name  string
		table ReverseCodeTable
	}

	testData := [...]testRow{
		{name: "empty-code", table: ReverseCodeTable{"": 'a'}},
		{name: "non-binary", table: ReverseCodeTable{"0": 'a', "12": 'b'}},
		{name: "prefix", table: ReverseCodeTable{"0": 'a', "01": 'b'}},
		{name: "deep-prefix", table: ReverseCodeTable{"10": 'a', "1011": 'b', "0": 'c'}},
		{name: "duplicate-symbol", table: ReverseCodeTable{"0": 'a', "1": 'a'}},
		{name: "invalid-symbol", table: ReverseCodeTable{"0": InvalidSymbol}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			d, err := NewDecoder(row.table)
			if d != nil {
				t.Errorf("expected nil Decoder")
			}
			if !errors.Is(err, ErrInvalidTable) {
				t.Errorf("expected ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestDecoder_DebugString(t *testing.T) {
	d := makeTestDecoder()

	expectDebug := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"\") = {-1, 1, 4}\n",
		"\tDecode(\"0\") = {5, 1, 1}\n",
		"\tDecode(\"1\") = {-1, 3, 4}\n",
		"\tDecode(\"10\") = {-1, 3, 3}\n",
		"\tDecode(\"11\") = {-1, 3, 4}\n",
		"\tDecode(\"100\") = {2, 3, 3}\n",
		"\tDecode(\"101\") = {3, 3, 3}\n",
		"\tDecode(\"110\") = {4, 3, 3}\n",
		"\tDecode(\"111\") = {-1, 4, 4}\n",
		"\tDecode(\"1110\") = {0, 4, 4}\n",
		"\tDecode(\"1111\") = {1, 4, 4}\n",
		"}\n",
	}, "")
	actualDebug := d.DebugString()
	if expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}
}

func TestDecoder_String(t *testing.T) {
	d := makeTestDecoder()

	expectString := "(Huffman decoder with 6 codes, with lengths of 1 .. 4 bits)"
	actualString := d.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}
