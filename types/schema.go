// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError is returned when a resource model does not satisfy its schema
// or one of the cross-property rules checked before any SDK call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// Schema is a compiled JSON schema for a resource model.
type Schema struct {
	schema *gojsonschema.Schema
}

// MustCompileSchema compiles src and panics if it is not a valid schema.
// Schemas are package constants so a failure here is a programming error.
func MustCompileSchema(src string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return &Schema{schema: s}
}

// Validate checks model against the schema. Schema violations are reported as
// a single ValidationError listing every failed rule.
func (s *Schema) Validate(model interface{}) error {
	buf, err := json.Marshal(model)
	if err != nil {
		return err
	}
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(buf))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, len(result.Errors()))
	for i, e := range result.Errors() {
		msgs[i] = e.String()
	}
	return newValidationError(strings.Join(msgs, " "))
}
