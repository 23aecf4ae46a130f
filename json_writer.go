package budget

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object field by field, so that operations
// are written with "command" first and the rest in a stable order.
//
// Methods chain; the first marshaling error is kept and returned by
// MarshalJSON.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Embed copies the members of the JSON object raw into w.
func (w *jsonObjectWriter) Embed(raw []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	members := bytes.TrimSpace(raw)
	members = bytes.TrimPrefix(members, []byte("{"))
	members = bytes.TrimSuffix(members, []byte("}"))
	if len(members) > 0 {
		w.Write(members)
		w.WriteByte(',')
	}
	return w
}

// EmbedFrom copies the members of v's JSON object, e.g. the amount and
// currency of a Money.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("cannot embed %T: %w", v, err)
		return w
	}
	return w.Embed(raw)
}

// Append writes the member key with value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	val, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot write %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(val)
	w.WriteByte(',')
	return w
}

// Optional is Append, skipped for zero values (empty memo, no currency).
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	members := bytes.TrimSuffix(w.Bytes(), []byte(","))
	obj := make([]byte, 0, len(members)+2)
	obj = append(obj, '{')
	obj = append(obj, members...)
	return append(obj, '}'), nil
}
