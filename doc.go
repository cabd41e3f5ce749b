// Package huffstring implements Huffman coding of symbol sequences into
// human-readable bitstrings, i.e. strings of '0' and '1' characters, and back.
//
// Encode counts the Symbols in its input, merges them into a Huffman tree
// lowest-frequency first, reads a prefix-free code off the tree, and returns
// the encoded bitstring together with the Table of codes.  Decode reverses the
// process given that Table's ReverseCodeTable.
//
// Tables can also be built from explicit codes (NewTable) or from code lengths
// alone (NewCanonicalTable), and can be serialized as JSON.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
package huffstring
