// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// CallbackContext is the state persisted by the framework between two
// invocations of an in-progress operation.
type CallbackContext struct {
	// ResourceRef identifies the resource being stabilized: an association
	// id, a document name, a sync name and so on.
	ResourceRef      string `mapstructure:"ResourceRef"`
	RetriesRemaining int    `mapstructure:"RetriesRemaining"`
	// Stage names the step of a multi-step operation to resume at.
	Stage string `mapstructure:"Stage,omitempty"`
}

// DecodeCallbackContext reads the framework callback context. It returns nil
// when the operation has not started yet. Numbers round-trip through JSON as
// floats, hence the weak decoding.
func DecodeCallbackContext(raw map[string]interface{}) (*CallbackContext, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var cb CallbackContext
	if err := mapstructure.WeakDecode(raw, &cb); err != nil {
		return nil, errors.Wrap(err, "malformed callback context")
	}
	if cb.ResourceRef == "" {
		return nil, errors.New("malformed callback context: missing ResourceRef")
	}
	return &cb, nil
}

// Map encodes the context in the shape the framework persists.
func (c CallbackContext) Map() map[string]interface{} {
	out := make(map[string]interface{})
	if err := mapstructure.Decode(c, &out); err != nil {
		// Decoding a flat struct into a map cannot fail.
		panic(err)
	}
	return out
}
