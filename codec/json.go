package codec

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/globberwops/gw/inplace"
)

var ErrNoSuchPath = errors.New("no such path")

// Extract copies the value at path in doc into dst. Overflow fails
// with inplace.ErrOverflow and leaves dst unchanged.
func Extract[A inplace.Buf](dst *inplace.String[A], doc string, path string) error {
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return ErrNoSuchPath
	}
	return dst.Set(r.String())
}

// ExtractBytes is Extract for an unparsed byte slice.
func ExtractBytes[A inplace.Buf](dst *inplace.String[A], doc []byte, path string) error {
	r := gjson.GetBytes(doc, path)
	if !r.Exists() {
		return ErrNoSuchPath
	}
	return dst.Set(r.String())
}

// Extractor binds a path once and extracts it from many documents.
func Extractor[A inplace.Buf](path string) func(dst *inplace.String[A], doc string) error {
	return func(dst *inplace.String[A], doc string) error {
		return Extract(dst, doc, path)
	}
}
