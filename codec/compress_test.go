package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globberwops/gw/codec"
	"github.com/globberwops/gw/inplace"
)

func TestCompressRoundTrip(t *testing.T) {
	raw := []byte(strings.Repeat("the quick brown fox ", 64))
	for _, c := range []codec.Compression{codec.None, codec.LZ4, codec.Snappy, codec.Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := codec.Compress(raw, c)
			require.NoError(t, err)

			tag, rawLen, err := codec.Info(data)
			require.NoError(t, err)
			assert.Equal(t, c, tag)
			assert.Equal(t, len(raw), rawLen)
			if c != codec.None {
				assert.Less(t, len(data), len(raw), "repetitive input must shrink")
			}

			back, err := codec.Decompress(data)
			require.NoError(t, err)
			assert.Equal(t, raw, back)
		})
	}
}

func TestCompressSmallStaysRaw(t *testing.T) {
	raw := []byte("short")
	data, err := codec.Compress(raw, codec.Zstd)
	require.NoError(t, err)

	tag, rawLen, err := codec.Info(data)
	require.NoError(t, err)
	assert.Equal(t, codec.None, tag, "below MinCompressSize stays raw")
	assert.Equal(t, len(raw), rawLen)

	back, err := codec.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, raw, back)
}

func TestCompressEmpty(t *testing.T) {
	data, err := codec.Compress(nil, codec.LZ4)
	require.NoError(t, err)
	back, err := codec.Decompress(data)
	require.NoError(t, err)
	assert.Empty(t, back)
}

func TestCompressZstdLevel(t *testing.T) {
	raw := []byte(strings.Repeat("abcdefgh", 512))
	fast, err := codec.CompressZstdLevel(raw, 1)
	require.NoError(t, err)
	best, err := codec.CompressZstdLevel(raw, 19)
	require.NoError(t, err)

	for _, data := range [][]byte{fast, best} {
		back, err := codec.Decompress(data)
		require.NoError(t, err)
		assert.Equal(t, raw, back)
	}
}

func TestCompressTooLarge(t *testing.T) {
	require.Greater(t, codec.MaxSrcSize, 32768)
	_, err := codec.Compress(make([]byte, codec.MaxSrcSize+1), codec.LZ4)
	assert.ErrorIs(t, err, codec.ErrTooLarge)
}

func TestDecompressErrors(t *testing.T) {
	_, err := codec.Decompress(nil)
	assert.ErrorIs(t, err, codec.ErrFrameTooShort)
	_, err = codec.Decompress([]byte{0})
	assert.ErrorIs(t, err, codec.ErrFrameTooShort)

	// Unknown tag.
	_, err = codec.Decompress([]byte{9, 1, 'x'})
	assert.ErrorIs(t, err, codec.ErrUnknownCompression)

	// Raw frame whose payload does not match its declared size.
	_, err = codec.Decompress([]byte{byte(codec.None), 3, 'x'})
	assert.ErrorIs(t, err, codec.ErrFrameCorrupt)

	// Truncated compressed payload.
	raw := []byte(strings.Repeat("the quick brown fox ", 64))
	data, err := codec.Compress(raw, codec.LZ4)
	require.NoError(t, err)
	_, err = codec.Decompress(data[:len(data)/2])
	assert.Error(t, err)
}

func TestCompressString(t *testing.T) {
	s := inplace.MustNew[[257]byte](strings.Repeat("ha", 120))
	data, err := codec.CompressString(&s, codec.Snappy)
	require.NoError(t, err)

	back, err := codec.DecompressString[[257]byte](data)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = codec.DecompressString[[9]byte](data)
	assert.ErrorIs(t, err, inplace.ErrOverflow)
}
