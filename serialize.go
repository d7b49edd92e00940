package main

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

// Serialize writes data in a fixed-size binary format. data must be a
// fixed-size value or a slice of fixed-size values (see encoding/binary).
func Serialize(w io.Writer, data any) {
	Check(binary.Write(w, binary.LittleEndian, data))
}

func Deserialize(r io.Reader, data any) {
	Check(binary.Read(r, binary.LittleEndian, data))
}

// SerializeSlice writes the length of the slice followed by its elements, so
// that DeserializeSlice knows how many elements to read back.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	*s = make([]T, n)
	Deserialize(r, *s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := zlib.NewWriter(buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(data))
	Check(err)
	defer func(r io.ReadCloser) { Check(r.Close()) }(r)
	unzipped, err := io.ReadAll(r)
	Check(err)
	return unzipped
}
