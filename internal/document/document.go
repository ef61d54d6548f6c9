// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document converts a metadata store to and from its portable text
// form: a UTF-8 JSON object keyed by picture filename, each value an object
// with "headline" and "description" strings.
//
//	{"IMG_0001.jpg": {"headline": "Sunrise", "description": "Over the ridge"}}
//
// Decoding is all or nothing. A document that fails to parse or has the
// wrong shape yields an error and no partial store.
package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-photo-annotator/internal/validators"
	"github.com/MKhiriev/go-photo-annotator/models"
)

// Extension is the file extension of metadata documents.
const Extension = ".json"

var validator = validators.NewDocumentValidator()

// Encode serializes m. Records are written with both fields, keys in
// ascending order, followed by a trailing newline.
func Encode(m models.Metadata) ([]byte, error) {
	if m == nil {
		m = models.NewMetadata()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode metadata document: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses data into a new store. Missing or null fields default to
// the empty string; unknown keys are ignored.
func Decode(data []byte) (models.Metadata, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if err := validator.Validate(context.Background(), raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	doc := raw.(map[string]any)
	out := make(models.Metadata, len(doc))
	for name, value := range doc {
		fields := value.(map[string]any)
		var rec models.Record
		if s, ok := fields[string(models.FieldHeadline)].(string); ok {
			rec.Headline = s
		}
		if s, ok := fields[string(models.FieldDescription)].(string); ok {
			rec.Description = s
		}
		out[name] = rec
	}
	return out, nil
}
