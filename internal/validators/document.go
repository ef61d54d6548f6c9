// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-photo-annotator/models"
)

// DocumentValidator checks a decoded metadata document, as produced by
// encoding/json into an `any`, before it is turned into a store.
//
// A valid document is an object whose values are objects. Inside a record
// the keys "headline" and "description" must hold strings or null. Any
// other key is ignored.
type DocumentValidator struct{}

// NewDocumentValidator returns a [Validator] for decoded metadata documents.
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate checks doc. When fields are given, only those record fields are
// type-checked; they must be "headline" or "description".
func (v *DocumentValidator) Validate(ctx context.Context, doc any, fields ...string) error {
	checked, err := checkedFields(fields)
	if err != nil {
		return err
	}

	switch value := doc.(type) {
	case map[string]any:
		return v.validateDocument(ctx, value, checked)
	case nil:
		return ErrDocumentNotObject
	case []any, string, float64, bool:
		return fmt.Errorf("%w: got %T", ErrDocumentNotObject, value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, doc)
	}
}

func (v *DocumentValidator) validateDocument(_ context.Context, doc map[string]any, fields []models.Field) error {
	for name, raw := range doc {
		record, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is %s", ErrRecordNotObject, name, jsonKind(raw))
		}

		for _, f := range fields {
			value, present := record[string(f)]
			if !present || value == nil {
				continue
			}
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%w: %q.%s is %s", ErrFieldNotString, name, f, jsonKind(value))
			}
		}
	}
	return nil
}

func checkedFields(fields []string) ([]models.Field, error) {
	if len(fields) == 0 {
		return models.Fields, nil
	}

	out := make([]models.Field, 0, len(fields))
	for _, name := range fields {
		f, err := models.ParseField(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
