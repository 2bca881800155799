package content

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Blob is the schema-free mapping persisted against a page as one JSON
// document. Keys are field names; values carry whatever the store returned,
// trusted by nobody until the codec has decoded them.
type Blob map[string]any

// ParseBlob unmarshals a persisted JSON document into a Blob. A nil or empty
// payload yields an empty blob rather than an error so a freshly created page
// decodes cleanly.
func ParseBlob(raw []byte) (Blob, error) {
	if len(raw) == 0 {
		return Blob{}, nil
	}
	var blob Blob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, fmt.Errorf("content: parse blob: %w", err)
	}
	if blob == nil {
		blob = Blob{}
	}
	return blob, nil
}

// Bytes renders the blob as a JSON document.
func (b Blob) Bytes() ([]byte, error) {
	payload, err := json.Marshal(map[string]any(b))
	if err != nil {
		return nil, fmt.Errorf("content: marshal blob: %w", err)
	}
	return payload, nil
}
