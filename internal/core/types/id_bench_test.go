package types

import (
	"fmt"
	"testing"
)

var (
	sinkID    EntityID
	sinkU8    uint8
	sinkU16   uint16
	sinkU64   uint64
	sinkBytes []byte
)

func BenchmarkPackEntityID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkID = PackEntityID(uint8(i), uint16(i), uint64(i))
	}
}

func BenchmarkEntityID_Unpack(b *testing.B) {
	id := PackEntityID(3, 12, 123456)
	for i := 0; i < b.N; i++ {
		sinkU8 = id.Kind()
		sinkU16 = id.Depth()
		sinkU64 = id.Index()
	}
}

// Сравнение с ключами-строками, которые ходили по сети раньше.
func BenchmarkMapKey(b *testing.B) {
	const n = 1024
	ids := make(map[EntityID]int, n)
	strs := make(map[string]int, n)
	for i := 0; i < n; i++ {
		id := PackEntityID(1, 1, uint64(i+1))
		ids[id] = i
		strs[fmt.Sprintf("e%d", i+1)] = i
	}

	b.Run("EntityID", func(b *testing.B) {
		id := PackEntityID(1, 1, n/2)
		for i := 0; i < b.N; i++ {
			sinkU64 += uint64(ids[id])
		}
	})
	b.Run("string", func(b *testing.B) {
		key := fmt.Sprintf("e%d", n/2)
		for i := 0; i < b.N; i++ {
			sinkU64 += uint64(strs[key])
		}
	})
}

func BenchmarkIDAllocator_NextParallel(b *testing.B) {
	var a IDAllocator
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			sinkID = a.Next(1, 1)
		}
	})
}

func BenchmarkEntityID_MarshalJSON(b *testing.B) {
	id := PackEntityID(2, 5, 987654321)
	for i := 0; i < b.N; i++ {
		sinkBytes, _ = id.MarshalJSON()
	}
}
