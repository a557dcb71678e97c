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

func buildArchive(t *testing.T, lines []string, opts ...WriterOption) []byte {
	t.Helper()

	var sink bytes.Buffer
	w, err := NewWriter(&sink, opts...)
	require.NoError(t, err)

	for _, l := range lines {
		require.NoError(t, w.WriteLine([]byte(l)))
	}
	require.NoError(t, w.Finish())

	return sink.Bytes()
}

func TestReader_RoundTrip_ScenarioA(t *testing.T) {
	data := buildArchive(t, []string{
		"chr1\t100\t200",
		"chr1\t300\t400",
		"chr2\t50\t60",
	}, WithCompression(format.CompressionGzip))

	r, err := NewReader(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"chr1", "chr2"}, r.Chromosomes())

	var out bytes.Buffer
	require.NoError(t, r.ExtractAll(&out, format.HeaderAssumeAbsent))

	assert.Equal(t, "chr1\t100\t200\nchr1\t300\t400\nchr2\t50\t60\n", out.String())

	recs := r.Metadata().Records
	require.Len(t, recs, 2)
	assert.EqualValues(t, 2, recs[0].LineCount)
	assert.EqualValues(t, 200, recs[0].NonUniqueBases)
	assert.EqualValues(t, 200, recs[0].UniqueBases)
	assert.EqualValues(t, 1, recs[1].LineCount)
	assert.EqualValues(t, 10, recs[1].NonUniqueBases)
	assert.EqualValues(t, 10, recs[1].UniqueBases)
}

func TestReader_ScenarioB_OverlappingIntervals(t *testing.T) {
	data := buildArchive(t, []string{
		"chr1\t0\t10",
		"chr1\t5\t15",
	}, WithCompression(format.CompressionGzip))

	r, err := NewReader(data)
	require.NoError(t, err)

	rec := r.Metadata().Records[0]
	assert.EqualValues(t, 15, rec.UniqueBases)
	assert.EqualValues(t, 20, rec.NonUniqueBases)
}

func TestReader_ScenarioD_HeaderEmit(t *testing.T) {
	data := buildArchive(t, []string{
		`track name="x"`,
		"chr1\t0\t10",
	}, WithCompression(format.CompressionGzip), WithHeaderFlag(true))

	r, err := NewReader(data)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.Extract("chr1", &out, format.HeaderEmit))

	assert.Equal(t, "track name=\"x\"\nchr1\t0\t10\n", out.String())
}

func TestReader_ScenarioD_HeaderDrop(t *testing.T) {
	data := buildArchive(t, []string{
		`track name="x"`,
		"chr1\t0\t10",
	}, WithCompression(format.CompressionGzip))

	r, err := NewReader(data)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.Extract("chr1", &out, format.HeaderDrop))

	assert.Equal(t, "chr1\t0\t10\n", out.String())
}

func TestReader_ScenarioF_NotFound(t *testing.T) {
	data := buildArchive(t, []string{"chr1\t0\t10"})

	r, err := NewReader(data)
	require.NoError(t, err)

	var out bytes.Buffer
	err = r.Extract("chrX", &out, format.HeaderAssumeAbsent)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestReader_MutatedMetadataByte_FailsSignature(t *testing.T) {
	data := buildArchive(t, []string{"chr1\t0\t10"})

	footer, err := section.ParseFooter(data[len(data)-section.FooterSize:])
	require.NoError(t, err)

	mutated := append([]byte(nil), data...)
	mutated[footer.Offset] ^= 0xFF

	_, err = NewReader(mutated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrSignature))
}

func TestReader_LegacyRevision_RoundTrip(t *testing.T) {
	data := buildArchive(t, []string{
		"chr1\t100\t200",
		"chr2\t50\t60",
	}, WithRevision(format.RevisionLegacy), WithCompression(format.CompressionGzip))

	r, err := NewReader(data)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.ExtractAll(&out, format.HeaderAssumeAbsent))

	assert.Equal(t, "chr1\t100\t200\nchr2\t50\t60\n", out.String())
}

func TestReader_Bzip2Codec_RoundTrip(t *testing.T) {
	data := buildArchive(t, []string{"chr1\t0\t10", "chr1\t20\t30"}, WithCompression(format.CompressionBzip2))

	r, err := NewReader(data)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.ExtractAll(&out, format.HeaderAssumeAbsent))

	assert.Equal(t, "chr1\t0\t10\nchr1\t20\t30\n", out.String())
}

func TestReader_TruncatedArchive_ScenarioE(t *testing.T) {
	data := buildArchive(t, []string{"chr1\t0\t10"})
	truncated := data[:len(data)-64]

	_, err := NewReader(truncated)
	require.Error(t, err)
}
