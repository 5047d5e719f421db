package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksum_DetectsFlip(t *testing.T) {
	data := []byte("n\x00u\x00l\x00l\x00")
	before := Checksum(data)
	data[2] ^= 0x01
	assert.NotEqual(t, before, Checksum(data))
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = byte(seededRand.Intn(128))
	}

	return b
}

func BenchmarkChecksum(b *testing.B) {
	data := randBytes(256)
	b.ResetTimer()
	for b.Loop() {
		Checksum(data)
	}
}
