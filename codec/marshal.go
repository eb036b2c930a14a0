// Package codec serializes and compresses fixed-capacity string
// records. Marshalling prefers the easyjson fast path whenever a value
// carries it, which every inplace string does; compression frames a
// payload with a one-byte codec tag and a uvarint raw size so frames
// are self-describing.
package codec

import (
	"encoding"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/buffer"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	ErrNotEasyJSONMarshaller   = errors.New("does not implement easyjson.Marshaler")
	ErrNotEasyJSONUnmarshaller = errors.New("does not implement easyjson.Unmarshaler")
	ErrNotBinaryMarshaller     = errors.New("does not implement encoding.BinaryMarshaler")
	ErrNotBinaryUnmarshaller   = errors.New("does not implement encoding.BinaryUnmarshaler")
)

var (
	easyJsonMarshallerType   = reflect.TypeOf((*easyjson.Marshaler)(nil)).Elem()
	easyJsonUnmarshallerType = reflect.TypeOf((*easyjson.Unmarshaler)(nil)).Elem()
	binaryMarshallerType     = reflect.TypeOf((*encoding.BinaryMarshaler)(nil)).Elem()
	binaryUnmarshallerType   = reflect.TypeOf((*encoding.BinaryUnmarshaler)(nil)).Elem()
)

// Marshaller encodes a value, appending to into when the encoder can
// reuse it, and decodes into a value.
type Marshaller interface {
	Marshal(v interface{}, into []byte) ([]byte, error)

	Unmarshal(data []byte, v interface{}) error
}

// BinaryMarshallerTo is the allocation-free form of
// encoding.BinaryMarshaler.
type BinaryMarshallerTo interface {
	MarshalBinaryTo(into []byte) []byte
}

// MarshallerOf picks the fastest marshaller v supports: easyjson,
// then json, then binary.
func MarshallerOf(v interface{}) Marshaller {
	switch v.(type) {
	case easyjson.Marshaler:
		return EasyJsonMarshaller{}
	case json.Marshaler:
		return JsonMarshaller{}
	case encoding.BinaryMarshaler:
		return BinaryMarshaller{}
	default:
		return JsonMarshaller{}
	}
}

// MarshallerOfType is MarshallerOf for a reflected type.
func MarshallerOfType(t reflect.Type) Marshaller {
	if t.Implements(easyJsonMarshallerType) && t.Implements(easyJsonUnmarshallerType) {
		return EasyJsonMarshaller{}
	}
	if t.Implements(binaryMarshallerType) && t.Implements(binaryUnmarshallerType) {
		return BinaryMarshaller{}
	}
	return JsonMarshaller{}
}

// JsonMarshallerOf picks between the easyjson and reflection-based
// JSON marshallers.
func JsonMarshallerOf(v interface{}) Marshaller {
	if _, ok := v.(easyjson.MarshalerUnmarshaler); ok {
		return EasyJsonMarshaller{}
	}
	return JsonMarshaller{}
}

// BinaryMarshallerOf picks a binary marshaller, preferring the
// allocation-free form, or nil when v cannot round-trip in binary.
func BinaryMarshallerOf(v interface{}) Marshaller {
	if _, ok := v.(encoding.BinaryUnmarshaler); !ok {
		return nil
	}
	if _, ok := v.(BinaryMarshallerTo); ok {
		return BinaryNoAllocMarshaller{}
	}
	if _, ok := v.(encoding.BinaryMarshaler); !ok {
		return nil
	}
	return BinaryMarshaller{}
}

type JsonMarshaller struct {
}

func (s JsonMarshaller) Marshal(v interface{}, into []byte) ([]byte, error) {
	switch t := v.(type) {
	case json.Marshaler:
		return t.MarshalJSON()
	default:
		return json.Marshal(v)
	}
}

func (s JsonMarshaller) Unmarshal(data []byte, v interface{}) error {
	switch t := v.(type) {
	case json.Unmarshaler:
		return t.UnmarshalJSON(data)
	case easyjson.Unmarshaler:
		lexer := jlexer.Lexer{
			Data:              data,
			UseMultipleErrors: false,
		}
		t.UnmarshalEasyJSON(&lexer)
		return lexer.Error()
	default:
		return json.Unmarshal(data, v)
	}
}

type EasyJsonMarshaller struct {
}

func (s EasyJsonMarshaller) Marshal(v interface{}, into []byte) ([]byte, error) {
	switch t := v.(type) {
	case easyjson.Marshaler:
		writer := jwriter.Writer{
			Buffer: buffer.Buffer{
				Buf: into,
			},
		}
		t.MarshalEasyJSON(&writer)
		return writer.BuildBytes()
	default:
		return into, ErrNotEasyJSONMarshaller
	}
}

func (s EasyJsonMarshaller) Unmarshal(data []byte, v interface{}) error {
	switch t := v.(type) {
	case easyjson.Unmarshaler:
		lexer := jlexer.Lexer{
			Data:              data,
			UseMultipleErrors: false,
		}
		t.UnmarshalEasyJSON(&lexer)
		return lexer.Error()
	default:
		return ErrNotEasyJSONUnmarshaller
	}
}

type BinaryMarshaller struct {
}

func (s BinaryMarshaller) Marshal(v interface{}, into []byte) ([]byte, error) {
	switch t := v.(type) {
	case encoding.BinaryMarshaler:
		return t.MarshalBinary()
	default:
		return into, ErrNotBinaryMarshaller
	}
}

func (s BinaryMarshaller) Unmarshal(data []byte, v interface{}) error {
	switch t := v.(type) {
	case encoding.BinaryUnmarshaler:
		return t.UnmarshalBinary(data)
	default:
		return ErrNotBinaryUnmarshaller
	}
}

type BinaryNoAllocMarshaller struct {
}

func (s BinaryNoAllocMarshaller) Marshal(v interface{}, into []byte) ([]byte, error) {
	switch t := v.(type) {
	case BinaryMarshallerTo:
		return t.MarshalBinaryTo(into), nil
	case encoding.BinaryMarshaler:
		return t.MarshalBinary()
	default:
		return into, ErrNotBinaryMarshaller
	}
}

func (s BinaryNoAllocMarshaller) Unmarshal(data []byte, v interface{}) error {
	switch t := v.(type) {
	case encoding.BinaryUnmarshaler:
		return t.UnmarshalBinary(data)
	default:
		return ErrNotBinaryUnmarshaller
	}
}
