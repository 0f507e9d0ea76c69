package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// The underlying text format has no native date type, so calendar dates are
// written as a tagged object instead of an opaque string.
const dateMarker = "Date"

type taggedDate struct {
	Type  string `json:"__type"`
	Value string `json:"value"`
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
)

// Encode serializes v to JSON, replacing every time.Time with a
// {"__type": "Date", "value": "<RFC3339>"} object. The walk recurses
// through structs, slices, arrays and string-keyed maps.
func Encode(v any) ([]byte, error) {
	tree, err := encodeValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// Decode parses data into v, reconstituting tagged date objects back into
// values that unmarshal as time.Time.
func Decode(data []byte, v any) error {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return err
	}
	restored, err := json.Marshal(untagDates(tree))
	if err != nil {
		return err
	}
	return json.Unmarshal(restored, v)
}

func encodeValue(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	if rv.Type() == timeType {
		t := rv.Interface().(time.Time)
		return taggedDate{Type: dateMarker, Value: t.Format(time.RFC3339Nano)}, nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeValue(rv.Elem())
	case reflect.Struct:
		// Types with custom JSON encoding (e.g. decimal.Decimal) are opaque
		// leaves; recursing into their internals would corrupt them.
		if rv.Type().Implements(marshalerType) {
			return rv.Interface(), nil
		}
		if reflect.PointerTo(rv.Type()).Implements(marshalerType) {
			ptr := reflect.New(rv.Type())
			ptr.Elem().Set(rv)
			return ptr.Interface(), nil
		}
		t := rv.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				continue
			}
			name := field.Name
			if tag, ok := field.Tag.Lookup("json"); ok {
				tagName := strings.SplitN(tag, ",", 2)[0]
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
				}
			}
			encoded, err := encodeValue(rv.Field(i))
			if err != nil {
				return nil, err
			}
			out[name] = encoded
		}
		return out, nil
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			encoded, err := encodeValue(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = encoded
		}
		return out, nil
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key()
			if key.Kind() != reflect.String {
				return nil, fmt.Errorf("cannot encode map with key type %s", key.Type())
			}
			encoded, err := encodeValue(iter.Value())
			if err != nil {
				return nil, err
			}
			out[key.String()] = encoded
		}
		return out, nil
	default:
		return rv.Interface(), nil
	}
}

func untagDates(v any) any {
	switch node := v.(type) {
	case map[string]any:
		if len(node) == 2 {
			if kind, ok := node["__type"].(string); ok && kind == dateMarker {
				if value, ok := node["value"].(string); ok {
					return value
				}
			}
		}
		out := make(map[string]any, len(node))
		for key, child := range node {
			out[key] = untagDates(child)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = untagDates(child)
		}
		return out
	default:
		return v
	}
}
