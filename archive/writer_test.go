package archive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/format"
	"github.com/arl-data/starch/section"
)

func TestWriter_RevisionCurrent_MagicPrefix(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink, WithCompression(format.CompressionGzip))
	require.NoError(t, err)

	require.NoError(t, w.WriteLine([]byte("chr1\t100\t200")))
	require.NoError(t, w.Finish())

	out := sink.Bytes()
	require.True(t, len(out) >= section.MagicSize)
	assert.Equal(t, section.Magic[:], out[:section.MagicSize])
}

func TestWriter_FooterOffsetMatchesCompressedSizes(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink, WithCompression(format.CompressionGzip))
	require.NoError(t, err)

	require.NoError(t, w.WriteLine([]byte("chr1\t100\t200")))
	require.NoError(t, w.WriteLine([]byte("chr1\t300\t400")))
	require.NoError(t, w.WriteLine([]byte("chr2\t50\t60")))
	require.NoError(t, w.Finish())

	out := sink.Bytes()
	footer, err := section.ParseFooter(out[len(out)-section.FooterSize:])
	require.NoError(t, err)

	r, err := NewReader(out)
	require.NoError(t, err)

	var sum int64
	for _, rec := range r.Metadata().Records {
		sum += int64(rec.CompressedSizeBytes)
	}
	assert.Equal(t, int64(section.MagicSize)+sum, footer.Offset)
}

func TestWriter_DuplicateChromosome_IsInputCorrupt(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink)
	require.NoError(t, err)

	require.NoError(t, w.WriteLine([]byte("chr1\t100\t200")))
	require.NoError(t, w.WriteLine([]byte("chr2\t50\t60")))
	err = w.WriteLine([]byte("chr1\t500\t600"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInputCorrupt))
}

func TestWriter_StopNotGreaterThanStart_IsInputCorrupt(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink)
	require.NoError(t, err)

	err = w.WriteLine([]byte("chr1\t100\t50"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInputCorrupt))
}

func TestWriter_NoCoordinateLines_ProducesNullPlaceholder(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink, WithCompression(format.CompressionGzip))
	require.NoError(t, err)

	require.NoError(t, w.Finish())

	r, err := NewReader(sink.Bytes())
	require.NoError(t, err)
	require.Len(t, r.Metadata().Records, 1)
	assert.Equal(t, nullChromosome, r.Metadata().Records[0].Name)
	assert.Equal(t, nullChromosome, r.Metadata().Records[0].FilenameStub)
}

func TestWriter_LegacyRevision_NoMagicNoFooter(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink, WithRevision(format.RevisionLegacy), WithCompression(format.CompressionGzip))
	require.NoError(t, err)

	require.NoError(t, w.WriteLine([]byte("chr1\t100\t200")))
	require.NoError(t, w.Finish())

	out := sink.Bytes()
	require.True(t, len(out) >= section.LegacyMetadataSize)
	assert.NotEqual(t, section.Magic[:], out[:section.MagicSize])
}

func TestWriter_LegacyRevision_MetadataOverflowIsError(t *testing.T) {
	var sink bytes.Buffer
	hugeNote := string(bytes.Repeat([]byte("x"), section.LegacyMetadataSize))
	w, err := NewWriter(&sink, WithRevision(format.RevisionLegacy), WithNote(hugeNote))
	require.NoError(t, err)

	require.NoError(t, w.WriteLine([]byte("chr1\t100\t200")))
	err = w.Finish()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMetadataParse))
}

func TestWriter_WriteAfterFinish(t *testing.T) {
	var sink bytes.Buffer
	w, err := NewWriter(&sink)
	require.NoError(t, err)
	require.NoError(t, w.WriteLine([]byte("chr1\t0\t10")))
	require.NoError(t, w.Finish())

	err = w.WriteLine([]byte("chr1\t10\t20"))
	require.Error(t, err)
}
