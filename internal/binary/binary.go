package binary

import (
	"bytes"
	"encoding/binary"
	"io"
)

func Write(w io.Writer, data interface{}) error {
	return binary.Write(w, binary.LittleEndian, data)
}

func Read(r io.Reader, data interface{}) error {
	return binary.Read(r, binary.LittleEndian, data)
}

func Marshal(data interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	err := Write(b, data)
	return b.Bytes(), err
}
