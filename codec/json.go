package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rafaeelricco/commit-gen/primitive"
)

var (
	ErrTrailingData = errors.New("unexpected data after top-level value")
	ErrIntegerRange = errors.New("integer does not fit in 64 bits")
)

// ParseJSON reads one JSON document into a JSON value. Integers and floats
// stay distinct: 1 becomes int64 and 1.0 becomes float64.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid JSON: %w", ErrTrailingData)
	}

	v, err := normalize(v)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	return v, nil
}

// FromYAML reads one YAML document into a JSON value.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	v, err := normalize(v)
	if err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	return v, nil
}

// normalize rewrites reader-specific representations into plain JSON values.
func normalize(v any) (any, error) {
	switch v := v.(type) {
	case json.Number:
		if n, ok := primitive.AsInteger(v); ok {
			return n, nil
		}
		if f, ok := primitive.AsFloat(v); ok {
			return f, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrIntegerRange, v)
	case int:
		return int64(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case []any:
		for i := range v {
			item, err := normalize(v[i])
			if err != nil {
				return nil, err
			}
			v[i] = item
		}
		return v, nil
	case map[string]any:
		for k, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			v[k] = n
		}
		return v, nil
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = n
		}
		return m, nil
	default:
		return v, nil
	}
}

// Marshal renders a JSON value as text. Integral floats keep a fractional
// part, so the text reads back through ParseJSON with the same shapes.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(textual(v))
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(textual(v), prefix, indent)
}

// jsonFloat renders as a float literal even when its value is integral.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if v == math.Trunc(v) && math.Abs(v) < 1e21 {
		return strconv.AppendFloat(nil, v, 'f', 1, 64), nil
	}

	return json.Marshal(v)
}

func textual(v any) any {
	switch v := v.(type) {
	case float64:
		return jsonFloat(v)
	case float32:
		return jsonFloat(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = textual(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = textual(item)
		}
		return out
	default:
		return v
	}
}

// dumps renders a JSON value for error messages.
func dumps(v any) string {
	b, err := Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(b)
}
