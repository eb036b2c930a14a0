package codec

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/DataDog/zstd"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"

	"github.com/globberwops/gw/inplace"
)

// Compression selects the codec carried in a frame's first byte.
type Compression byte

const (
	None Compression = iota
	LZ4
	Snappy
	Zstd
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Snappy:
		return "snappy"
	case Zstd:
		return "zstd"
	}
	return "unknown"
}

var (
	ErrUnknownCompression = errors.New("unknown compression")
	ErrFrameTooShort      = errors.New("frame too short")
	ErrFrameCorrupt       = errors.New("frame corrupt")
	ErrTooLarge           = errors.New("source too large for one frame")
)

const (
	scratchSize = 65536

	// MinCompressSize is the smallest source worth compressing; anything
	// shorter is framed raw.
	MinCompressSize = 128
)

// MaxSrcSize bounds a frame's source so that every codec's worst-case
// output fits the pooled scratch.
var MaxSrcSize = maxSrcSize()

func maxSrcSize() int {
	n := scratchSize
	for lz4.CompressBlockBound(n) > scratchSize ||
		snappy.MaxEncodedLen(n) > scratchSize ||
		zstd.CompressBound(n) > scratchSize {
		n -= 256
	}
	return n
}

var compressPool = &sync.Pool{New: func() interface{} {
	return &compressHelper{}
}}

type compressHelper struct {
	buf [scratchSize]byte
	ht  [65536]int
}

// Compress frames src with the requested codec. Sources below
// MinCompressSize, or that the codec fails to shrink, are framed raw.
func Compress(src []byte, want Compression) ([]byte, error) {
	return compress(src, want, zstd.DefaultCompression)
}

// CompressZstdLevel is Compress with an explicit zstd level.
func CompressZstdLevel(src []byte, level int) ([]byte, error) {
	return compress(src, Zstd, level)
}

func compress(src []byte, want Compression, level int) ([]byte, error) {
	if len(src) > MaxSrcSize {
		return nil, ErrTooLarge
	}
	if want == None || len(src) < MinCompressSize {
		return frame(None, len(src), src), nil
	}

	h := compressPool.Get().(*compressHelper)
	defer compressPool.Put(h)

	var (
		n   int
		err error
	)
	switch want {
	case LZ4:
		n, err = lz4.CompressBlock(src, h.buf[:], h.ht[:])
	case Snappy:
		n = len(snappy.Encode(h.buf[:], src))
	case Zstd:
		var out []byte
		out, err = zstd.CompressLevel(h.buf[:], src, level)
		n = len(out)
	default:
		return nil, ErrUnknownCompression
	}
	if err != nil {
		return nil, err
	}
	// Was compression worth it?
	if n == 0 || n >= len(src) {
		return frame(None, len(src), src), nil
	}
	return frame(want, len(src), h.buf[:n]), nil
}

func frame(tag Compression, rawLen int, payload []byte) []byte {
	var hdr [binary.MaxVarintLen32 + 1]byte
	hdr[0] = byte(tag)
	hn := 1 + binary.PutUvarint(hdr[1:], uint64(rawLen))
	out := make([]byte, 0, hn+len(payload))
	out = append(out, hdr[:hn]...)
	return append(out, payload...)
}

// Info reports a frame's codec and raw size without decoding it.
func Info(data []byte) (Compression, int, error) {
	tag, rawLen, _, err := splitFrame(data)
	return tag, rawLen, err
}

func splitFrame(data []byte) (Compression, int, []byte, error) {
	if len(data) < 2 {
		return 0, 0, nil, ErrFrameTooShort
	}
	tag := Compression(data[0])
	rawLen, n := binary.Uvarint(data[1:])
	if n <= 0 {
		return 0, 0, nil, ErrFrameCorrupt
	}
	if rawLen > uint64(MaxSrcSize) {
		return 0, 0, nil, ErrFrameCorrupt
	}
	return tag, int(rawLen), data[1+n:], nil
}

// Decompress restores the raw bytes of one frame.
func Decompress(data []byte) ([]byte, error) {
	tag, rawLen, payload, err := splitFrame(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case None:
		if len(payload) != rawLen {
			return nil, ErrFrameCorrupt
		}
		out := make([]byte, rawLen)
		copy(out, payload)
		return out, nil
	case LZ4:
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if n != rawLen {
			return nil, ErrFrameCorrupt
		}
		return out, nil
	case Snappy:
		out, err := snappy.Decode(make([]byte, rawLen), payload)
		if err != nil {
			return nil, err
		}
		if len(out) != rawLen {
			return nil, ErrFrameCorrupt
		}
		return out, nil
	case Zstd:
		out, err := zstd.Decompress(make([]byte, rawLen), payload)
		if err != nil {
			return nil, err
		}
		if len(out) != rawLen {
			return nil, ErrFrameCorrupt
		}
		return out, nil
	default:
		return nil, ErrUnknownCompression
	}
}

// CompressString frames the content of s.
func CompressString[A inplace.Buf](s *inplace.String[A], want Compression) ([]byte, error) {
	return Compress(s.Bytes(), want)
}

// DecompressString restores a framed string. A value that does not fit
// A's capacity fails with inplace.ErrOverflow and nothing is written.
func DecompressString[A inplace.Buf](data []byte) (inplace.String[A], error) {
	raw, err := Decompress(data)
	if err != nil {
		return inplace.String[A]{}, err
	}
	return inplace.FromBytes[A](raw)
}
