package huffstring

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCanonicalTable(t *testing.T) {
	ct, err := NewCanonicalTable(map[Symbol]int{0: 4, 1: 4, 2: 3, 3: 3, 4: 3, 5: 1})
	if err != nil {
		t.Fatalf("NewCanonicalTable failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Table{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1110\"\n",
		"\tEncode(1) = \"1111\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"110\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")
	actualDump := ct.DebugString()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTable_Canonical(t *testing.T) {
	root := BuildTreeFromFrequencies(FrequencyTable{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45})
	table := newDerivedTable(DeriveCodes(root))
	canon := table.Canonical()

	expect := CodeTable{0: "1110", 1: "1111", 2: "100", 3: "101", 4: "110", 5: "0"}
	for symbol, code := range expect {
		if actual, _ := canon.Code(symbol); actual != code {
			t.Errorf("symbol %d: expect %q, actual %q", symbol, code, actual)
		}
	}

	sizes := table.SizeBySymbol()
	for symbol, size := range canon.SizeBySymbol() {
		if sizes[symbol] != size {
			t.Errorf("symbol %d: canonical size %d differs from original %d", symbol, size, sizes[symbol])
		}
	}
}

func TestNewCanonicalTable_Degenerate(t *testing.T) {
	empty, err := NewCanonicalTable(nil)
	if err != nil {
		t.Fatalf("empty: unexpected error: %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("empty: expected no codes, got %d", empty.Len())
	}

	lone, err := NewCanonicalTable(map[Symbol]int{'x': 1})
	if err != nil {
		t.Fatalf("lone: unexpected error: %v", err)
	}
	if code, _ := lone.Code('x'); code != "0" {
		t.Errorf("lone: expected code \"0\", got %q", code)
	}
}

func TestNewCanonicalTable_Errors(t *testing.T) {
	type testRow struct {
		name    string
		sizes   map[Symbol]int
		message string
	}

	testData := [...]testRow{
		{
			name:    "zero-length",
			sizes:   map[Symbol]int{'a': 0, 'b': 1},
			message: "invalid code table: invalid bit length for symbol 97: 0",
		},
		{
			name:    "lone-too-long",
			sizes:   map[Symbol]int{'a': 2},
			message: "invalid code table: degenerate Huffman code: lone symbol 97 has bit length 2, expected 1",
		},
		{
			name:    "over-subscribed",
			sizes:   map[Symbol]int{'a': 1, 'b': 1, 'c': 1},
			message: "invalid code table: over-subscribed Huffman code: no 1-bit code left for symbol 99",
		},
		{
			name:    "incomplete",
			sizes:   map[Symbol]int{'a': 1, 'b': 2},
			message: "invalid code table: degenerate Huffman code: \"11\" and above are unused",
		},
		{
			name:    "negative-symbol",
			sizes:   map[Symbol]int{-5: 1, 'b': 1},
			message: "invalid code table: invalid symbol -5",
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			table, err := NewCanonicalTable(row.sizes)
			if table != nil {
				t.Errorf("expected nil Table")
			}
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("expected ErrInvalidTable, got %v", err)
			}
			if row.message != err.Error() {
				t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", row.message, err.Error())
			}
		})
	}
}

func TestIncrementCode(t *testing.T) {
	code := []byte("0101")
	if !incrementCode(code) || string(code) != "0110" {
		t.Errorf("expected \"0110\", got %q", code)
	}
	code = []byte("111")
	if incrementCode(code) || string(code) != "000" {
		t.Errorf("expected overflow to \"000\", got %q", code)
	}
}
