// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import "encoding/json"

const parameterSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "The AWS::SSM::Parameter resource creates an SSM parameter in AWS Systems Manager Parameter Store.",
	"type": "object",
	"properties": {
		"Type": {"type": "string", "enum": ["String", "StringList"]},
		"Value": {"type": "string", "minLength": 1},
		"Description": {"type": "string", "minLength": 0, "maxLength": 1024},
		"Policies": {"type": "string"},
		"AllowedPattern": {"type": "string", "minLength": 0, "maxLength": 1024},
		"Tier": {"type": "string", "enum": ["Standard", "Advanced", "Intelligent-Tiering"]},
		"Tags": {"type": "object", "patternProperties": {"^([\\p{L}\\p{Z}\\p{N}_.:/=+\\-@]*)$": {"type": "string"}}, "additionalProperties": false},
		"DataType": {"type": "string", "enum": ["text", "aws:ec2:image"]},
		"Name": {"type": "string", "minLength": 1, "maxLength": 2048}
	},
	"required": ["Value"],
	"additionalProperties": false
}`

var parameterValidator = MustCompileSchema(parameterSchema)

const (
	ParameterDataTypeText     = "text"
	ParameterDataTypeEC2Image = "aws:ec2:image"
)

// Parameter is the resource model of AWS::SSM::Parameter.
type Parameter struct {
	Type           *string           `json:",omitempty"`
	Value          *string           `json:",omitempty"`
	Description    *string           `json:",omitempty"`
	Policies       *string           `json:",omitempty"`
	AllowedPattern *string           `json:",omitempty"`
	Tier           *string           `json:",omitempty"`
	Tags           map[string]string `json:",omitempty"`
	DataType       *string           `json:",omitempty"`
	Name           *string           `json:",omitempty"`
}

// Validate checks the schema and, when policies are given, that they form a
// JSON array as Parameter Store expects.
func (m *Parameter) Validate() error {
	if err := parameterValidator.Validate(m); err != nil {
		return err
	}
	if m.Policies != nil && *m.Policies != "" {
		var policies []interface{}
		if err := json.Unmarshal([]byte(*m.Policies), &policies); err != nil {
			return newValidationError("Policies must be a JSON array of parameter policies")
		}
	}
	return nil
}
