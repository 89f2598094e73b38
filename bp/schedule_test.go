package bp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ldpc/bp"
	"github.com/katalvlaran/ldpc/codes"
	"github.com/katalvlaran/ldpc/sparse"
	"github.com/stretchr/testify/require"
)

// outcome captures everything a decode exposes, soft output included.
type outcome struct {
	res bp.Result
	llr []float64
}

func decodeAll(t *testing.T, d *bp.Decoder, syndromes [][]uint8) []outcome {
	t.Helper()
	out := make([]outcome, len(syndromes))
	for i, s := range syndromes {
		res, err := d.Decode(s)
		require.NoError(t, err)
		out[i] = outcome{res: res, llr: d.LogProbRatios()}
	}
	return out
}

func syndromeBatch(t *testing.T, h *sparse.BinaryMatrix, seed int64, count int) [][]uint8 {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	batch := make([][]uint8, count)
	for i := range batch {
		batch[i] = randomSyndrome(t, h, rng, 1+rng.Intn(4))
	}
	return batch
}

// TestParallel_WorkerCountInvariance requires bit-identical results and
// posteriors for every worker count.
func TestParallel_WorkerCountInvariance(t *testing.T) {
	ring, err := codes.Ring(61)
	require.NoError(t, err)
	hamming, err := codes.Hamming(6)
	require.NoError(t, err)

	for name, h := range map[string]*sparse.BinaryMatrix{"ring61": ring, "hamming6": hamming} {
		for _, method := range []bp.Method{bp.SumProduct, bp.MinSum} {
			t.Run(fmt.Sprintf("%s/%s", name, method), func(t *testing.T) {
				batch := syndromeBatch(t, h, 21, 25)
				base := decodeAll(t, mustDecoder(t, h,
					bp.WithErrorRate(0.02), bp.WithMethod(method), bp.WithMaxIter(20)), batch)

				for _, w := range []int{2, 4, 8, 200} {
					d := mustDecoder(t, h,
						bp.WithErrorRate(0.02), bp.WithMethod(method), bp.WithMaxIter(20), bp.WithWorkers(w))
					require.Equal(t, base, decodeAll(t, d, batch), "workers=%d", w)
				}
			})
		}
	}
}

// TestSerial_FixedOrderDeterministic decodes the same batch twice on
// separate decoders.
func TestSerial_FixedOrderDeterministic(t *testing.T) {
	h, err := codes.Hamming(5)
	require.NoError(t, err)
	order := rand.New(rand.NewSource(4)).Perm(h.Cols())
	batch := syndromeBatch(t, h, 8, 20)

	opts := []bp.Option{
		bp.WithErrorRate(0.04),
		bp.WithSchedule(bp.Serial),
		bp.WithSerialScheduleOrder(order),
		bp.WithMaxIter(15),
	}
	a := decodeAll(t, mustDecoder(t, h, opts...), batch)
	b := decodeAll(t, mustDecoder(t, h, opts...), batch)
	require.Equal(t, a, b)
}

// TestSerial_WorkersIgnored confirms the serial sweep does not depend on
// the parallel fan-out setting.
func TestSerial_WorkersIgnored(t *testing.T) {
	h, err := codes.Ring(17)
	require.NoError(t, err)
	batch := syndromeBatch(t, h, 5, 10)

	one := decodeAll(t, mustDecoder(t, h, bp.WithErrorRate(0.05), bp.WithSchedule(bp.Serial)), batch)
	four := decodeAll(t, mustDecoder(t, h, bp.WithErrorRate(0.05), bp.WithSchedule(bp.Serial), bp.WithWorkers(4)), batch)
	require.Equal(t, one, four)
}

func TestRandomSerial_Reproducible(t *testing.T) {
	h, err := codes.Hamming(5)
	require.NoError(t, err)
	batch := syndromeBatch(t, h, 13, 20)
	opts := func(seed int64) []bp.Option {
		return []bp.Option{
			bp.WithErrorRate(0.04),
			bp.WithSchedule(bp.Serial),
			bp.WithRandomSerialSchedule(true),
			bp.WithSeed(seed),
			bp.WithMaxIter(15),
		}
	}

	d := mustDecoder(t, h, opts(42)...)
	first := decodeAll(t, d, batch)
	require.Equal(t, first, decodeAll(t, d, batch), "RNG is re-seeded per Decode")
	require.Equal(t, first, decodeAll(t, mustDecoder(t, h, opts(42)...), batch))

	// Seed 0 and the fixed default seed 1 draw the same stream.
	require.Equal(t,
		decodeAll(t, mustDecoder(t, h, opts(0)...), batch),
		decodeAll(t, mustDecoder(t, h, opts(1)...), batch))
}

// TestRandomSerial_SeedMatters looks for at least one syndrome whose
// soft output differs between two seeds.
func TestRandomSerial_SeedMatters(t *testing.T) {
	h, err := codes.Hamming(5)
	require.NoError(t, err)
	batch := syndromeBatch(t, h, 17, 20)
	build := func(seed int64) *bp.Decoder {
		return mustDecoder(t, h,
			bp.WithErrorRate(0.04),
			bp.WithSchedule(bp.Serial),
			bp.WithRandomSerialSchedule(true),
			bp.WithSeed(seed),
			bp.WithMaxIter(15))
	}
	require.NotEqual(t, decodeAll(t, build(2), batch), decodeAll(t, build(3), batch))
}

// TestSerial_OrderChangesMessageFlow compares the first-round soft output of
// the identity and reversed sweeps.
func TestSerial_OrderChangesMessageFlow(t *testing.T) {
	h := repetition3(t)
	fwd := mustDecoder(t, h, bp.WithErrorRate(0.1), bp.WithSchedule(bp.Serial), bp.WithMaxIter(1))
	rev := mustDecoder(t, h, bp.WithErrorRate(0.1), bp.WithSchedule(bp.Serial), bp.WithMaxIter(1),
		bp.WithSerialScheduleOrder([]int{2, 1, 0}))

	a, err := fwd.Decode([]uint8{1, 1})
	require.NoError(t, err)
	b, err := rev.Decode([]uint8{1, 1})
	require.NoError(t, err)

	require.Equal(t, []uint8{1, 1, 0}, a.Decoding)
	require.Equal(t, []uint8{0, 1, 1}, b.Decoding)
}
