package encoding

import (
	"errors"
	"testing"

	"github.com/arl-data/starch/errs"
	"github.com/arl-data/starch/internal/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario (a) from the testable-properties section: chr1's two
// records share interval length 100, so only one run marker is emitted
// and the second start is a delta against the first stop.
func TestDeltaEncoder_ScenarioA_Chr1(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	require.NoError(t, enc.TransformInto(buf, 100, 200, ""))
	require.NoError(t, enc.TransformInto(buf, 300, 400, ""))

	assert.Equal(t, "p100\n100\n100\n", string(buf.Bytes()))
	assert.Equal(t, uint64(200), enc.NonUniqueBases())
	assert.Equal(t, uint64(200), enc.UniqueBases())
}

func TestDeltaEncoder_ScenarioA_Chr2(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	require.NoError(t, enc.TransformInto(buf, 50, 60, ""))

	assert.Equal(t, "p10\n50\n", string(buf.Bytes()))
}

// scenario (b): overlapping intervals produce unique < non-unique.
func TestDeltaEncoder_ScenarioB_OverlapBases(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	require.NoError(t, enc.TransformInto(buf, 0, 10, ""))
	require.NoError(t, enc.TransformInto(buf, 5, 15, ""))

	assert.Equal(t, uint64(20), enc.NonUniqueBases())
	assert.Equal(t, uint64(15), enc.UniqueBases())
}

// scenario (c): stop <= start is corrupt.
func TestDeltaEncoder_ScenarioC_StopNotAfterStart(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	err := enc.TransformInto(buf, 100, 50, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInputCorrupt))
}

func TestDeltaEncoder_NegativeStart(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	err := enc.TransformInto(buf, -1, 5, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInputCorrupt))
}

func TestDeltaEncoder_RemainderAppended(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	require.NoError(t, enc.TransformInto(buf, 0, 10, "id-1\t.\t+"))

	assert.Equal(t, "p10\n0\tid-1\t.\t+\n", string(buf.Bytes()))
}

func TestDeltaEncoder_HeaderAccumulation(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	enc.AccumulateHeader(`track name="x"`)
	require.NoError(t, enc.TransformInto(buf, 0, 10, ""))

	assert.Equal(t, "track name=\"x\"\np10\n0\n", string(buf.Bytes()))
}

func TestDeltaEncoder_Reset(t *testing.T) {
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	require.NoError(t, enc.TransformInto(buf, 0, 10, ""))
	enc.Reset()
	buf.Reset()

	require.NoError(t, enc.TransformInto(buf, 100, 110, ""))
	// after Reset, lastStop is 0 again so the first emitted value is
	// absolute, not a delta against the previous chromosome's state.
	assert.Equal(t, "p10\n100\n", string(buf.Bytes()))
	assert.Equal(t, uint64(10), enc.NonUniqueBases())
}

func TestDeltaEncoder_ConstantLengthRunIsCompact(t *testing.T) {
	// invariant 5: a run of constant-length intervals emits the run
	// marker once, so the delta stream is shorter than equivalent
	// plaintext BED.
	enc := NewDeltaEncoder()
	buf := pool.NewByteBuffer(64)

	start := int64(0)
	for i := 0; i < 100; i++ {
		require.NoError(t, enc.TransformInto(buf, start, start+10, ""))
		start += 20
	}

	markerCount := 0
	for _, b := range buf.Bytes() {
		if b == 'p' {
			markerCount++
		}
	}
	assert.Equal(t, 1, markerCount)
}
