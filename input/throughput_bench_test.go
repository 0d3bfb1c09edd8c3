package input

import (
	"testing"
)

// BenchmarkDecodeASCII measures single-byte ASCII character decode performance.
// This provides a baseline for comparison with multi-byte UTF-8 decoding.
func BenchmarkDecodeASCII(b *testing.B) {
	seq := []byte{'a'}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Decode(seq)
	}
}

// BenchmarkDecodeUTF8_2byte measures 2-byte UTF-8 character decode performance.
func BenchmarkDecodeUTF8_2byte(b *testing.B) {
	seq := []byte{0xc3, 0xa9} // é (U+00E9)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Decode(seq)
	}
}

// BenchmarkDecodeUTF8_3byte measures 3-byte UTF-8 character decode performance.
func BenchmarkDecodeUTF8_3byte(b *testing.B) {
	seq := []byte{0xe6, 0x97, 0xa5} // 日 (U+65E5)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Decode(seq)
	}
}

// BenchmarkDecodeUTF8_4byte measures 4-byte UTF-8 character decode performance.
func BenchmarkDecodeUTF8_4byte(b *testing.B) {
	seq := []byte{0xf0, 0x9f, 0x98, 0x80} // 😀 (U+1F600)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Decode(seq)
	}
}
