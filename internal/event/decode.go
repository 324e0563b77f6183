package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process buses hand over the typed
// struct (or a pointer to it) directly; payloads that went through JSON arrive as
// maps and are re-marshalled into T.
func DecodePayload[T any](payload interface{}) (T, error) {
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
