package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// Bytes decodes either a JSON array of byte values or a base64 string.
type Bytes []byte

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("decode picture data: %w", err)
		}
		*b = raw
		return nil
	}

	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode picture data: %w", err)
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("decode picture data: byte %d out of range", v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// Picture is an image attached to a post, serialized by the backend as a byte buffer.
type Picture struct {
	Type string `json:"type"`
	Data Bytes  `json:"data"`
}

// ContentType sniffs the image type from the bytes.
func (p Picture) ContentType() string {
	return mimetype.Detect(p.Data).String()
}

// DataURL renders the picture inline for an <img> tag.
func (p Picture) DataURL() string {
	return "data:" + p.ContentType() + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// UploadFile is a selected image ready to be sent as multipart.
type UploadFile struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `json:"data"`
}
