//go:build !amd64 && !arm64

package simd

// Platforms without a vector kernel family get the reference kernels. The
// word-wise fill kernels are little-endian only, so fillImpl stays nil here
// and Fill writes elements directly.
func init() {
	useScalar()
}
