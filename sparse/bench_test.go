// Package sparse_test provides benchmarks for matrix construction and
// syndrome computation on ring codes of growing length.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ldpc/codes"
	"github.com/katalvlaran/ldpc/sparse"
)

var benchLengths = []int{100, 1000, 10000}

// sinks to defeat dead-code elimination
var (
	sinkH *sparse.BinaryMatrix
	sinkS []uint8
)

func BenchmarkNewFromCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h, err := codes.Ring(n)
			if err != nil {
				b.Fatal(err)
			}
			rowPtr, colIdx := h.ToCSR()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.NewFromCSR(n, n, rowPtr, colIdx)
				if err != nil {
					b.Fatal(err)
				}
				sinkH = m
			}
		})
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			h, err := codes.Ring(n)
			if err != nil {
				b.Fatal(err)
			}
			x := make([]uint8, n)
			for j := 0; j < n; j += 7 {
				x[j] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := h.MulVec(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = s
			}
		})
	}
}
