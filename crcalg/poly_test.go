package crcalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePoly(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		width   int
		want    uint64
		wantErr bool
	}{
		{
			name:  "crc8 atm",
			expr:  "x^8 + x^2 + x + 1",
			width: 8,
			want:  0x07,
		},
		{
			name:  "crc16 ccitt",
			expr:  "x^16 + x^12 + x^5 + 1",
			width: 16,
			want:  0x1021,
		},
		{
			name:  "crc32",
			expr:  "x^32 + x^26 + x^23 + x^22 + x^16 + x^12 + x^11 + x^10 + x^8 + x^7 + x^5 + x^4 + x^2 + x + 1",
			width: 32,
			want:  0x04C11DB7,
		},
		{
			name:  "leading term omitted",
			expr:  "x^2 + x + 1",
			width: 8,
			want:  0x07,
		},
		{
			name:  "case and whitespace ignored",
			expr:  " X^8+X^2 + x +1 ",
			width: 8,
			want:  0x07,
		},
		{
			name:  "single constant term",
			expr:  "1",
			width: 1,
			want:  0x01,
		},
		{
			name:    "empty expression",
			expr:    "",
			width:   8,
			wantErr: true,
		},
		{
			name:    "malformed token",
			expr:    "x^8 + y^2 + 1",
			width:   8,
			wantErr: true,
		},
		{
			name:    "malformed exponent",
			expr:    "x^8 + x^two + 1",
			width:   8,
			wantErr: true,
		},
		{
			name:    "negative exponent",
			expr:    "x^8 + x^-2 + 1",
			width:   8,
			wantErr: true,
		},
		{
			name:    "duplicate exponent",
			expr:    "x^8 + x^2 + x^2 + 1",
			width:   8,
			wantErr: true,
		},
		{
			name:    "duplicate via alias",
			expr:    "x + x^1",
			width:   8,
			wantErr: true,
		},
		{
			name:    "exponent exceeds width",
			expr:    "x^9 + x^2 + 1",
			width:   8,
			wantErr: true,
		},
		{
			name:    "dangling plus",
			expr:    "x^8 + x^2 +",
			width:   8,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoly(tt.expr, tt.width)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, IsParseError(err), "expected a ParseError, got %T", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolyInvalidWidth(t *testing.T) {
	_, err := ParsePoly("x^2 + 1", 0)
	require.Error(t, err)
	require.True(t, IsConfigError(err))

	_, err = ParsePoly("x^2 + 1", MaxWidth+1)
	require.Error(t, err)
	require.True(t, IsConfigError(err))
}

func TestFormatPoly(t *testing.T) {
	tests := []struct {
		name  string
		poly  uint64
		width int
		want  string
	}{
		{
			name:  "crc8 atm",
			poly:  0x07,
			width: 8,
			want:  "x^8 + x^2 + x + 1",
		},
		{
			name:  "crc16 ccitt",
			poly:  0x1021,
			width: 16,
			want:  "x^16 + x^12 + x^5 + 1",
		},
		{
			name:  "zero polynomial keeps leading term",
			poly:  0x00,
			width: 8,
			want:  "x^8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatPoly(tt.poly, tt.width))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, poly := range []uint64{0x07, 0x31, 0x8005, 0x1021, 0x04C11DB7} {
		width := 32
		formatted := FormatPoly(poly, width)
		parsed, err := ParsePoly(formatted, width)
		require.NoError(t, err)
		require.Equal(t, poly, parsed, "round trip of %s", formatted)
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		bits  int
		want  uint64
	}{
		{name: "byte", value: 0x01, bits: 8, want: 0x80},
		{name: "nibble", value: 0x03, bits: 4, want: 0x0C},
		{name: "palindrome", value: 0x81, bits: 8, want: 0x81},
		{name: "crc32 poly", value: 0x04C11DB7, bits: 32, want: 0xEDB88320},
		{name: "full word", value: 1, bits: 64, want: 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Reverse(tt.value, tt.bits))
		})
	}

	t.Run("involution", func(t *testing.T) {
		for v := uint64(0); v < 256; v++ {
			require.Equal(t, v, Reverse(Reverse(v, 8), 8))
		}
	})
}
