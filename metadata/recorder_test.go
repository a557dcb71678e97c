package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl-data/starch/errs"
)

func TestRecorder_CreateAndUpdate(t *testing.T) {
	r := NewRecorder()

	require.NoError(t, r.Create("chr1", "chr1.bz2"))
	assert.True(t, r.Contains("chr1"))

	require.NoError(t, r.Update("chr1", 100, 5, 50, 40))
	require.NoError(t, r.Update("chr1", 20, 1, 10, 5))
	require.NoError(t, r.SetUncompressedSize("chr1", 500))

	recs := r.Records()
	require.Len(t, recs, 1)
	assert.Equal(t, "chr1", recs[0].Name)
	assert.EqualValues(t, 120, recs[0].CompressedSizeBytes)
	assert.EqualValues(t, 6, recs[0].LineCount)
	assert.EqualValues(t, 60, recs[0].NonUniqueBases)
	assert.EqualValues(t, 45, recs[0].UniqueBases)
	assert.EqualValues(t, 500, recs[0].UncompressedSizeBytes)
}

func TestRecorder_DuplicateChromosome_IsInputCorrupt(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Create("chr1", "chr1.bz2"))

	err := r.Create("chr1", "chr1.bz2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInputCorrupt))

	var lineErr *errs.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "chr1", lineErr.Chromosome)
}

func TestRecorder_UpdateUnknownChromosome(t *testing.T) {
	r := NewRecorder()

	err := r.Update("chrX", 1, 1, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInputCorrupt))
}

func TestRecorder_OrderPreserved(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Create("chr2", "chr2.bz2"))
	require.NoError(t, r.Create("chr1", "chr1.bz2"))

	recs := r.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "chr2", recs[0].Name)
	assert.Equal(t, "chr1", recs[1].Name)
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Create("chr1", "chr1.bz2"))

	r.Reset()

	assert.False(t, r.Contains("chr1"))
	assert.Empty(t, r.Records())

	require.NoError(t, r.Create("chr1", "chr1.bz2"))
	assert.True(t, r.Contains("chr1"))
}
