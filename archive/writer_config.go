package archive

import (
	"fmt"
	"time"

	"github.com/arl-data/starch/format"
	"github.com/arl-data/starch/internal/options"
)

// DefaultBufferMax is the intermediate-buffer flush threshold a Writer
// uses unless overridden (spec §4.3).
const DefaultBufferMax = 65536

type writerConfig struct {
	compressionType format.CompressionType
	revision        format.ArchiveRevision
	note            string
	headerFlag      bool
	bufferMax       int
	now             func() time.Time
}

func defaultWriterConfig() *writerConfig {
	return &writerConfig{
		compressionType: format.CompressionBzip2,
		revision:        format.RevisionCurrent,
		bufferMax:       DefaultBufferMax,
		now:             time.Now,
	}
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*writerConfig]

// WithCompression selects the block codec used for every chromosome
// stream in the archive.
func WithCompression(t format.CompressionType) WriterOption {
	return options.New(func(c *writerConfig) error {
		if t != format.CompressionBzip2 && t != format.CompressionGzip {
			return fmt.Errorf("unsupported compression type %v", t)
		}
		c.compressionType = t

		return nil
	})
}

// WithRevision selects the archive envelope revision to produce.
func WithRevision(r format.ArchiveRevision) WriterOption {
	return options.New(func(c *writerConfig) error {
		if r != format.RevisionLegacy && r != format.RevisionCurrent {
			return fmt.Errorf("unsupported archive revision %v", r)
		}
		c.revision = r

		return nil
	})
}

// WithNote sets the free-text note carried in the archive's metadata.
func WithNote(note string) WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.note = note
	})
}

// WithHeaderFlag records whether non-coordinate lines were present and
// preserved in the input (the metadata's headerBedType field).
func WithHeaderFlag(flag bool) WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.headerFlag = flag
	})
}

// WithBufferMax overrides the intermediate-buffer flush threshold.
func WithBufferMax(n int) WriterOption {
	return options.New(func(c *writerConfig) error {
		if n <= 0 {
			return fmt.Errorf("buffer max must be positive, got %d", n)
		}
		c.bufferMax = n

		return nil
	})
}
