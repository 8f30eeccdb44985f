package wire

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON is a String field holding a JSON document, such as a chat component
// or the status response.
type JSON[T any] struct {
	Value T
}

func (j JSON[T]) Serialize(w io.Writer) error {
	b, err := json.Marshal(j.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedJSONEncode, err)
	}
	return WriteString(w, string(b))
}

func (j *JSON[T]) Deserialize(r *Reader) error {
	s, err := ReadString(r)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(s), &j.Value); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedJSONDeserialize, err)
	}
	return nil
}

// Chat is a text component kept as raw JSON.
type Chat = JSON[json.RawMessage]

// NewChat builds a plain text component.
func NewChat(text string) Chat {
	b, _ := json.Marshal(map[string]string{"text": text})
	return Chat{Value: b}
}
