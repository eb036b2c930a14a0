package codec_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globberwops/gw/codec"
	"github.com/globberwops/gw/inplace"
)

func TestMarshallerOf(t *testing.T) {
	s := inplace.MustNew[[33]byte]("hello")
	assert.IsType(t, codec.EasyJsonMarshaller{}, codec.MarshallerOf(&s))
	assert.IsType(t, codec.EasyJsonMarshaller{}, codec.MarshallerOf(s))

	type point struct{ X, Y int }
	assert.IsType(t, codec.JsonMarshaller{}, codec.MarshallerOf(point{}))

	assert.IsType(t, codec.EasyJsonMarshaller{}, codec.MarshallerOfType(reflect.TypeOf(&s)))
	assert.IsType(t, codec.JsonMarshaller{}, codec.MarshallerOfType(reflect.TypeOf(point{})))

	assert.IsType(t, codec.EasyJsonMarshaller{}, codec.JsonMarshallerOf(&s))
	assert.IsType(t, codec.JsonMarshaller{}, codec.JsonMarshallerOf(point{}))
}

func TestEasyJsonMarshaller(t *testing.T) {
	s := inplace.MustNew[[33]byte]("hello")
	m := codec.MarshallerOf(&s)

	data, err := m.Marshal(&s, make([]byte, 0, 64))
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(data))

	var back inplace.String32
	require.NoError(t, m.Unmarshal(data, &back))
	assert.Equal(t, s, back)

	_, err = codec.EasyJsonMarshaller{}.Marshal(42, nil)
	assert.ErrorIs(t, err, codec.ErrNotEasyJSONMarshaller)
	err = codec.EasyJsonMarshaller{}.Unmarshal(data, new(int))
	assert.ErrorIs(t, err, codec.ErrNotEasyJSONUnmarshaller)
}

func TestJsonMarshaller(t *testing.T) {
	type point struct{ X, Y int }
	m := codec.MarshallerOf(point{})

	data, err := m.Marshal(point{X: 1, Y: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"X":1,"Y":2}`, string(data))

	var p point
	require.NoError(t, m.Unmarshal(data, &p))
	assert.Equal(t, point{X: 1, Y: 2}, p)

	// Values with their own fast paths keep them under JsonMarshaller.
	s := inplace.MustNew[[33]byte]("hi")
	data, err = codec.JsonMarshaller{}.Marshal(&s, nil)
	require.NoError(t, err)
	assert.Equal(t, `"hi"`, string(data))
	var back inplace.String32
	require.NoError(t, codec.JsonMarshaller{}.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestBinaryMarshallerOf(t *testing.T) {
	s := inplace.MustNew[[14]byte]("Hello, World!")

	m := codec.BinaryMarshallerOf(&s)
	require.NotNil(t, m)
	assert.IsType(t, codec.BinaryNoAllocMarshaller{}, m)

	// A value receiver cannot unmarshal.
	assert.Nil(t, codec.BinaryMarshallerOf(s))

	out, err := m.Marshal(&s, make([]byte, 0, 64))
	require.NoError(t, err)
	assert.Len(t, out, 14)

	var back inplace.String[[14]byte]
	require.NoError(t, m.Unmarshal(out, &back))
	assert.Equal(t, s, back)

	// The no-alloc form appends to the scratch it is given.
	prefixed, err := m.Marshal(&s, []byte("head:"))
	require.NoError(t, err)
	assert.Equal(t, "head:", string(prefixed[:5]))
	assert.Len(t, prefixed, 5+14)

	_, err = codec.BinaryMarshaller{}.Marshal(42, nil)
	assert.ErrorIs(t, err, codec.ErrNotBinaryMarshaller)
	err = codec.BinaryMarshaller{}.Unmarshal(out, new(int))
	assert.ErrorIs(t, err, codec.ErrNotBinaryUnmarshaller)
}
