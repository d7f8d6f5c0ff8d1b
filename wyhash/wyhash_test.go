package wyhash

import (
	"fmt"
	"math/rand"
	"testing"
)

// TestHashDeterministic verifies that hashing is a pure function of
// (seed, data) across repeated calls and fresh copies of the input.
func TestHashDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{0, 1, 2, 3, 4, 7, 8, 15, 16, 17, 31, 32, 47, 48, 49, 64, 96, 97, 1024} {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			data := make([]byte, size)
			rng.Read(data)

			h1 := Hash(42, data)
			h2 := Hash(42, data)
			if h1 != h2 {
				t.Fatalf("Hash not deterministic: %#x vs %#x", h1, h2)
			}

			// A copy of the data must hash identically.
			cp := append([]byte(nil), data...)
			if h3 := Hash(42, cp); h3 != h1 {
				t.Errorf("copy hashed differently: %#x vs %#x", h3, h1)
			}
		})
	}
}

// TestHashSeedSensitivity verifies that different seeds produce unrelated
// digests for the same input.
func TestHashSeedSensitivity(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	seen := make(map[uint64]uint64)
	for _, seed := range []uint64{0, 1, 2, 42, 0xDEADBEEF, ^uint64(0)} {
		h := Hash(seed, data)
		if prev, dup := seen[h]; dup {
			t.Errorf("seeds %d and %d collide on %#x", prev, seed, h)
		}
		seen[h] = seed
	}
}

// TestHashInputSensitivity flips every byte of a small input in turn and
// checks that each flip changes the digest. A single-bit avalanche failure
// here would indicate a broken read path for that length.
func TestHashInputSensitivity(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 5, 8, 9, 16, 17, 33, 48, 49, 64} {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			data := make([]byte, size)
			for i := range data {
				data[i] = byte(i * 37)
			}
			base := Hash(7, data)

			for i := range data {
				data[i] ^= 0xFF
				if h := Hash(7, data); h == base {
					t.Errorf("flipping byte %d of %d did not change the digest", i, size)
				}
				data[i] ^= 0xFF
			}
		})
	}
}

// TestHashLengthSensitivity verifies that prefixes of the same buffer hash
// differently, including around the 16- and 48-byte regime boundaries.
func TestHashLengthSensitivity(t *testing.T) {
	data := make([]byte, 128)
	for i := range data {
		data[i] = byte(i)
	}

	seen := make(map[uint64]int)
	for n := 0; n <= len(data); n++ {
		h := Hash(0, data[:n])
		if prev, dup := seen[h]; dup {
			t.Errorf("lengths %d and %d collide on %#x", prev, n, h)
		}
		seen[h] = n
	}
}

// TestHashString verifies the zero-copy string path agrees with the byte
// slice path.
func TestHashString(t *testing.T) {
	tests := []string{
		"",
		"a",
		"abc",
		"hello world",
		"a string that is longer than sixteen bytes",
		"a string that is long enough to hit the three-lane loop, i.e. more than forty-eight bytes",
	}

	for _, s := range tests {
		t.Run(fmt.Sprintf("len_%d", len(s)), func(t *testing.T) {
			want := Hash(99, []byte(s))
			if got := HashString(99, s); got != want {
				t.Errorf("HashString(%q) = %#x, want %#x", s, got, want)
			}
		})
	}
}

// TestHashEmpty pins down that the empty input is handled without touching
// the data pointer.
func TestHashEmpty(t *testing.T) {
	if Hash(5, nil) != Hash(5, []byte{}) {
		t.Error("nil and empty slice hash differently")
	}
	if Hash(5, nil) == Hash(6, nil) {
		t.Error("empty input ignores the seed")
	}
}

func BenchmarkHash(b *testing.B) {
	for _, size := range []int{8, 16, 48, 256, 4096, 65536} {
		data := make([]byte, size)
		rand.New(rand.NewSource(int64(size))).Read(data)

		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			var sink uint64
			for i := 0; i < b.N; i++ {
				sink = Hash(0, data)
			}
			_ = sink
		})
	}
}
