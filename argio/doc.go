// Package argio reads and writes attributed graphs in two formats.
//
// Binary (MIVIA database layout): a stream of unsigned 16-bit
// little-endian words.
//
//	unlabelled: N, then for each node i: outCount_i, target_1 … target_outCount
//	labelled:   N, label_0 … label_{N-1},
//	            then for each node i: outCount_i, (target, label) pairs
//
// Labels load as int attributes and the loaded graph compares them with
// core.EqualAttrs.
//
// Text: a small line-oriented language, parsed with participle.
//
//	// a labelled triangle
//	nodes 3;
//	node 0 [A];
//	0 -> 1;
//	1 -> 2 [x];
//	2 -> 0 [7];
//
// Attributes in brackets are identifiers or quoted strings (loaded as
// string) or integers (loaded as int). Load picks the format from the
// file extension.
package argio
