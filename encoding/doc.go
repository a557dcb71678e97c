// Package encoding implements the tokenizer, the forward delta/run-length
// transform, and its inverse — the text-level heart of a starch archive.
//
// # Overview
//
// A starch archive stores each chromosome's BED records as a compact
// textual stream rather than the original tab-separated coordinates:
//
//   - Tokenizer splits one raw input line into a BedLine, classifying it
//     as a coordinate record or a non-coordinate header/comment line.
//   - DeltaEncoder turns a sorted run of (start, stop, remainder) triples
//     for one chromosome into that textual stream: runs of constant
//     interval length are marked once with a `p<length>` line, and each
//     start is written as a delta against the previous stop rather than
//     in full.
//   - InverseTransformer is the dual: given the textual stream, it
//     reconstructs absolute BED lines, honoring a HeaderPolicy for
//     whatever non-coordinate lines were interleaved into the stream.
//
// Tokenize allocates fresh strings per call. TokenizeInto stages fields
// in a Tokenizer's own reusable growable buffers, but the strings it
// returns are copied out of them, so it also allocates per line.
package encoding
