package crcalg

import (
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumMatchesStdlibCRC32(t *testing.T) {
	p, err := Lookup("CRC-32")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(424242))
	for i := 0; i < 64; i++ {
		buf := make([]byte, rng.Intn(128))
		rng.Read(buf)
		require.Equal(t, uint64(crc32.ChecksumIEEE(buf)), p.Checksum(buf), "input %x", buf)
	}
}

func TestChecksumMatchesStdlibCRC32C(t *testing.T) {
	p, err := Lookup("CRC-32C")
	require.NoError(t, err)

	table := crc32.MakeTable(crc32.Castagnoli)
	rng := rand.New(rand.NewSource(424242))
	for i := 0; i < 64; i++ {
		buf := make([]byte, rng.Intn(128))
		rng.Read(buf)
		require.Equal(t, uint64(crc32.Checksum(buf, table)), p.Checksum(buf), "input %x", buf)
	}
}

func TestUpdateSingleBitBehavior(t *testing.T) {
	// One serial step of the zero register with a one bit of data injects
	// the polynomial itself.
	p := Params{Width: 8, Poly: 0x07, DataWidth: 1}
	require.Equal(t, uint64(0x07), p.Update(0, 1))
	require.Equal(t, uint64(0x00), p.Update(0, 0))

	// A set register top bit folds the polynomial in even with zero data.
	require.Equal(t, uint64(0x07), p.Update(0x80, 0))
}

func TestUpdateIsSerialComposition(t *testing.T) {
	// Processing a 16 bit word at once equals processing its two bytes
	// MSB-first through the byte-wide update.
	wide := Params{Width: 16, Poly: 0x1021, DataWidth: 16}
	narrow := Params{Width: 16, Poly: 0x1021, DataWidth: 8}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 128; i++ {
		crc := rng.Uint64() & 0xFFFF
		data := rng.Uint64() & 0xFFFF
		stepped := narrow.Update(narrow.Update(crc, data>>8), data&0xFF)
		require.Equal(t, stepped, wide.Update(crc, data))
	}
}

func TestChecksumConstantLayers(t *testing.T) {
	base := Params{Width: 16, Poly: 0x1021, DataWidth: 8}
	data := []byte{0x01, 0x02, 0x03, 0x04}

	// XorOut is a plain additive layer on the result.
	flipped := base
	flipped.XorOut = 0xFFFF
	require.Equal(t, base.Checksum(data)^0xFFFF, flipped.Checksum(data))

	// Init seeds the register, so an empty message reproduces it.
	seeded := base
	seeded.Init = 0xBEEF
	require.Equal(t, uint64(0xBEEF), seeded.Checksum(nil))
}

func BenchmarkChecksumCRC32(b *testing.B) {
	p, err := Lookup("CRC-32")
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Checksum(buf)
	}
}
