// Package compress wraps starch's two block codecs, bzip2 and gzip,
// behind one streaming interface.
//
// # Overview
//
// A starch archive compresses each chromosome's delta-encoded text as
// its own independent block: the Archive Writer opens a Stream over the
// archive's sink when it sees a new chromosome, writes the transformed
// text to it incrementally, and closes it when the chromosome ends —
// flushing the codec's internal buffers without closing the sink
// itself, since more chromosomes (and later the metadata trailer) still
// follow in the same stream.
//
//	bc, _ := compress.NewCompressor(format.CompressionGzip)
//	stream, _ := bc.Open(sink)
//	stream.Write(transformed)
//	stream.Close()
//	size := stream.BytesWritten() // feeds compressed_size_bytes
//
// # Algorithms
//
//   - bzip2 (format.CompressionBzip2): github.com/dsnet/compress/bzip2.
//     The only real streaming bzip2 *writer* available in the ecosystem —
//     the standard library's compress/bzip2 package is read-only.
//   - gzip (format.CompressionGzip): github.com/klauspost/compress/gzip,
//     a drop-in, faster replacement for the standard library's gzip
//     writer/reader pair.
//
// Compression level is fixed at each library's best-compression
// setting; starch does not expose a level knob, matching the format's
// closed two-codec enum (spec §3).
package compress
