package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ByteContent holds arbitrary binary note content. On the wire it is an
// array of integer byte values (0-255), not the base64 string that
// encoding/json uses for []byte, so binary content round-trips exactly.
type ByteContent []byte

// MarshalJSON encodes the content as a JSON array of byte values.
func (b ByteContent) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(v)))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array of byte values. Values outside 0-255
// are rejected.
func (b *ByteContent) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("%w: %d", ErrByteValueOutOfRange, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
