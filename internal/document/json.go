package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"dictpivot/internal/ordered"
)

func decodeJSON(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrSyntax)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) any {
	switch {
	case r.IsObject():
		obj := ordered.New[any](0)
		r.ForEach(func(key, value gjson.Result) bool {
			obj.Set(key.String(), fromResult(value))
			return true
		})
		return obj
	case r.IsArray():
		items := make([]any, 0)
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, fromResult(value))
			return true
		})
		return items
	}
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return json.Number(strings.TrimSpace(r.Raw))
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}

func encodeJSON(v any, indent int) ([]byte, error) {
	var compact bytes.Buffer
	if err := writeJSONValue(&compact, v); err != nil {
		return nil, err
	}
	if indent <= 0 {
		return compact.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	return out.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	switch value := v.(type) {
	case nil:
		buf.WriteString("null")
	case string:
		return writeJSONString(buf, value)
	case bool:
		buf.WriteString(strconv.FormatBool(value))
	case json.Number:
		if value == "" {
			buf.WriteByte('0')
			return nil
		}
		buf.WriteString(value.String())
	case []any:
		buf.WriteByte('[')
		for i, item := range value {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ordered.Iterable:
		return writeJSONObject(buf, value)
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode json value of type %T: %w", v, err)
		}
		buf.Write(raw)
	}
	return nil
}

func writeJSONObject(buf *bytes.Buffer, obj ordered.Iterable) error {
	var err error
	first := true
	buf.WriteByte('{')
	obj.Each(func(key string, value any) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err = writeJSONString(buf, key); err != nil {
			return false
		}
		buf.WriteByte(':')
		err = writeJSONValue(buf, value)
		return err == nil
	})
	if err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// writeJSONString escapes s without the HTML-safe replacements encoding/json
// applies by default, so "<b>" stays readable in translation files.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode json string: %w", err)
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

// isJSONNumber reports whether text is a complete JSON number literal.
func isJSONNumber(text string) bool {
	return gjson.Valid(text) && gjson.Parse(text).Type == gjson.Number
}
