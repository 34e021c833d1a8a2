// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"encoding/json"
	"reflect"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/encoding"
	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/pkg/errors"
)

// RawPropertyModel is implemented by models with free form properties, such
// as a document body that is either an object or a string. The stringified
// decoding cannot represent those, so they are cut out of the properties and
// handed to the model as raw JSON.
type RawPropertyModel interface {
	RawProperties() []string
	SetRawProperty(name string, raw json.RawMessage) error
}

func decodeRequest[M any](req handler.Request, prev, cur *M) error {
	prevBody, body := requestBodies(req)
	if len(prevBody) > 0 {
		if err := decodeProperties(prevBody, prev); err != nil {
			return errors.Wrap(err, "previous resource model")
		}
	}
	if len(body) == 0 {
		return errors.New("resource model: body is empty")
	}
	if err := decodeProperties(body, cur); err != nil {
		return errors.Wrap(err, "resource model")
	}
	return nil
}

// decodeProperties fills model from the resource properties CloudFormation
// sends, where scalars arrive as strings.
func decodeProperties(body []byte, model interface{}) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return errors.WithStack(err)
	}
	if rm, ok := model.(RawPropertyModel); ok {
		for _, name := range rm.RawProperties() {
			raw, ok := fields[name]
			if !ok {
				continue
			}
			delete(fields, name)
			if err := rm.SetRawProperty(name, raw); err != nil {
				return errors.Wrapf(err, "property %s", name)
			}
		}
	}

	rest, err := json.Marshal(fields)
	if err != nil {
		return errors.WithStack(err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(rest, &data); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(encoding.Unstringify(data, model))
}

// requestBodies returns the previous and desired resource properties as the
// framework received them. handler.Request keeps both unexported and only
// offers decoding that rejects free form properties.
func requestBodies(req handler.Request) (prev, cur []byte) {
	v := reflect.ValueOf(req)
	return v.FieldByName("previousResourcePropertiesBody").Bytes(),
		v.FieldByName("resourcePropertiesBody").Bytes()
}
