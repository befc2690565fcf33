package rhll

import (
	"fmt"
	"testing"

	"github.com/Zaire404/RHLL/util"
)

var benchBitWidths = []uint8{10, 14, 16}

func BenchmarkAdd(b *testing.B) {
	for _, bw := range benchBitWidths {
		b.Run(fmt.Sprintf("b=%d", bw), func(b *testing.B) {
			s, err := New(bw)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Add(util.Uint64ToBytes(uint64(i)))
			}
		})
	}
}

func BenchmarkEstimate(b *testing.B) {
	for _, bw := range benchBitWidths {
		b.Run(fmt.Sprintf("b=%d", bw), func(b *testing.B) {
			s, err := New(bw)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < 100000; i++ {
				s.Add(util.Uint64ToBytes(uint64(i)))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Estimate(false)
			}
		})
	}
}

func BenchmarkProtect(b *testing.B) {
	for _, bw := range benchBitWidths {
		b.Run(fmt.Sprintf("b=%d", bw), func(b *testing.B) {
			s, err := New(bw)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < 100000; i++ {
				s.Add(util.Uint64ToBytes(uint64(i)))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Protect(10)
			}
		})
	}
}
