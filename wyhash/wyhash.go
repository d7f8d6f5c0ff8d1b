// Package wyhash implements the wyhash non-cryptographic hash function.
//
// wyhash (by Wang Yi, public domain) is one of the fastest portable hash
// functions that still passes the SMHasher statistical test suite. It hashes
// short keys in a handful of multiplications and reaches memory bandwidth on
// long inputs, which makes it a good fit for hashing file paths, search
// needles and text chunks on hot paths.
//
// The implementation processes inputs in three regimes:
//   - 0-16 bytes: a branch-free read of at most two overlapping words
//   - 17-48 bytes: one 16-byte mixing round per iteration
//   - >48 bytes: three independent mixing lanes of 16 bytes each, folded
//     together at the end (keeps three multiplier chains in flight)
//
// All multi-byte reads are little-endian, so digests are identical across
// architectures.
package wyhash

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// The wyhash secret. These constants were chosen by the wyhash author for
// their bit patterns (close to half ones, half zeros) and are part of the
// algorithm definition.
const (
	s0 = 0xa0761d6478bd642f
	s1 = 0xe7037ed1a0b428db
	s2 = 0x8ebc6af09c88c6e3
	s3 = 0x589965cc75374cc3
)

// mix multiplies a and b into a 128-bit product and folds it back to 64 bits.
// The fold (hi XOR lo) is what gives wyhash its diffusion: every input bit
// affects every output bit after two rounds.
func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

// read3 reads 1-3 bytes as a uint64. The three indexed bytes (first, middle,
// last) overlap when k < 3, which lets one expression handle all three
// lengths without branching.
func read3(p []byte, k int) uint64 {
	return uint64(p[0])<<16 | uint64(p[k>>1])<<8 | uint64(p[k-1])
}

func read4(p []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(p))
}

func read8(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

// Hash returns the 64-bit wyhash digest of data under the given seed.
//
// The same data hashed under a different seed yields an unrelated digest, so
// callers can derive per-table or per-session hash functions by varying the
// seed. Hashing is allocation-free.
func Hash(seed uint64, data []byte) uint64 {
	n := len(data)
	p := data
	seed ^= s0
	var a, b uint64

	if n <= 16 {
		if n >= 4 {
			// Two pairs of 4-byte reads that overlap for n < 16. The shifted
			// second read ((n>>3)<<2 is 0 for n<8, 4 for n<16, 8 for n=16)
			// makes every length from 4 to 16 read all of its bytes.
			a = read4(p)<<32 | read4(p[(n>>3)<<2:])
			b = read4(p[n-4:])<<32 | read4(p[n-4-((n>>3)<<2):])
		} else if n > 0 {
			a = read3(p, n)
		}
		// n == 0 leaves a = b = 0.
	} else {
		i := n
		if i > 48 {
			// Three independent lanes hide the multiply latency: the CPU can
			// work on all three mixes of an iteration in parallel.
			seed1 := seed
			seed2 := seed
			for {
				seed = mix(read8(p)^s1, read8(p[8:])^seed)
				seed1 = mix(read8(p[16:])^s2, read8(p[24:])^seed1)
				seed2 = mix(read8(p[32:])^s3, read8(p[40:])^seed2)
				p = p[48:]
				i -= 48
				if i <= 48 {
					break
				}
			}
			seed ^= seed1 ^ seed2
		}
		for i > 16 {
			seed = mix(read8(p)^s1, read8(p[8:])^seed)
			i -= 16
			p = p[16:]
		}
		// The final a/b words are the last 16 bytes of the whole input and
		// may overlap bytes already consumed above. Overlap is fine: it only
		// mixes some input twice.
		a = read8(data[n-16:])
		b = read8(data[n-8:])
	}

	return mix(s1^uint64(n), mix(a^s1, b^seed))
}

// HashString is Hash for strings, without copying the string data.
func HashString(seed uint64, s string) uint64 {
	if len(s) == 0 {
		return Hash(seed, nil)
	}
	return Hash(seed, unsafe.Slice(unsafe.StringData(s), len(s)))
}
