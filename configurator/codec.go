package configurator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EncodeConfig marshals a configuration to its JSON shape.
func EncodeConfig(cfg ProductConfig) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("encode config: %w", ErrNoProductType)
	}
	return json.Marshal(cfg)
}

// DecodeConfig unmarshals a JSON configuration, choosing the variant from the
// productType field.
func DecodeConfig(data []byte) (ProductConfig, error) {
	var head struct {
		ProductType ProductType `json:"productType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg := NewConfig(head.ProductType)
	if cfg == nil {
		return nil, &UnknownProductTypeError{Type: string(head.ProductType)}
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s config: %w", head.ProductType, err)
	}
	return cfg, nil
}

// Clone returns a deep copy of cfg.
func Clone(cfg ProductConfig) (ProductConfig, error) {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return nil, err
	}
	return DecodeConfig(data)
}

// mergeFields overlays fields onto cfg and returns a new configuration of the
// same variant. Keys map to JSON field names; a nil value clears the field.
// The discriminator (productType, productTypeId) is never taken from fields,
// and accessories only change through AddAccessory and SetAccessoryQty.
func mergeFields(cfg ProductConfig, fields map[string]any) (ProductConfig, error) {
	if cfg == nil {
		return nil, fmt.Errorf("merge config: %w", ErrNoProductType)
	}
	next := NewConfig(cfg.Base().ProductType)
	if err := overlayJSON(cfg, fields, next, "productType", "productTypeId", "accessories"); err != nil {
		return nil, fmt.Errorf("merge %s config: %w", cfg.Base().ProductType, err)
	}
	return next, nil
}

// maxListIndex bounds the list positions a dotted key may address.
const maxListIndex = 63

// overlayJSON writes src with fields applied on top into dst. Keys are JSON
// field names or dotted paths into nested objects and lists, e.g.
// "fabric.variantId" or "panels.1.widthM". Keys whose first segment is listed
// in protected keep their value from src.
func overlayJSON(src any, fields map[string]any, dst any, protected ...string) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	current := make(map[string]any)
	if err := json.Unmarshal(data, &current); err != nil {
		return err
	}
	keep := make(map[string]bool, len(protected))
	for _, k := range protected {
		keep[k] = true
	}
	for k, v := range fields {
		path := strings.Split(k, ".")
		if keep[path[0]] {
			continue
		}
		if err := setPath(current, path, v); err != nil {
			return &FieldError{Field: k, Err: err}
		}
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(merged, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &FieldError{Field: typeErr.Field, Err: fmt.Errorf("expected %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return &FieldError{Err: err}
	}
	return nil
}

// setPath sets v at path inside an object decoded from JSON, creating
// intermediate objects and lists. A nil v deletes an object key or removes a
// list element.
func setPath(obj map[string]any, path []string, v any) error {
	key := path[0]
	if key == "" {
		return errors.New("empty path segment")
	}
	if len(path) == 1 {
		if v == nil {
			delete(obj, key)
		} else {
			obj[key] = v
		}
		return nil
	}
	child, err := setChild(obj[key], path[1:], v)
	if err != nil {
		return err
	}
	obj[key] = child
	return nil
}

func setChild(node any, path []string, v any) (any, error) {
	if idx, err := strconv.Atoi(path[0]); err == nil {
		if idx < 0 || idx > maxListIndex {
			return nil, fmt.Errorf("list index %d out of range", idx)
		}
		list, ok := node.([]any)
		if !ok && node != nil {
			return nil, fmt.Errorf("%q is not a list position", path[0])
		}
		if len(path) == 1 && v == nil {
			if idx < len(list) {
				list = append(list[:idx], list[idx+1:]...)
			}
			return list, nil
		}
		for len(list) <= idx {
			list = append(list, map[string]any{})
		}
		if len(path) == 1 {
			list[idx] = v
			return list, nil
		}
		elem, err := setChild(list[idx], path[1:], v)
		if err != nil {
			return nil, err
		}
		list[idx] = elem
		return list, nil
	}

	obj, ok := node.(map[string]any)
	if !ok {
		if node != nil {
			return nil, fmt.Errorf("%q is not an object field", path[0])
		}
		obj = make(map[string]any)
	}
	if err := setPath(obj, path, v); err != nil {
		return nil, err
	}
	return obj, nil
}
