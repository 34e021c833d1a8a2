// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const opsMetadataSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "Resource type definition for AWS::SSM::OpsMetadata",
	"type": "object",
	"definitions": {
		"MetadataValue": {
			"type": "object",
			"required": ["Value"],
			"properties": {"Value": {"type": "string", "minLength": 1, "maxLength": 4096}},
			"additionalProperties": false
		}
	},
	"properties": {
		"ResourceId": {"type": "string", "minLength": 1, "maxLength": 1024, "pattern": "\\S"},
		"Metadata": {
			"type": "object",
			"maxProperties": 5,
			"patternProperties": {"\\S": {"$ref": "#/definitions/MetadataValue"}},
			"additionalProperties": false
		},
		"Tags": {"type": "array", "maxItems": 1000, "items": ` + tagSchema + `},
		"OpsMetadataArn": {"type": "string", "pattern": "arn:(aws[a-zA-Z-]*)?:ssm:[a-z0-9-\\.]{0,63}:[a-z0-9-\\.]{0,63}:opsmetadata\\/([a-zA-Z0-9-_\\.\\/]*)"}
	},
	"required": ["ResourceId"],
	"additionalProperties": false
}`

var opsMetadataValidator = MustCompileSchema(opsMetadataSchema)

type MetadataValue struct {
	Value *string `json:",omitempty"`
}

// OpsMetadata is the resource model of AWS::SSM::OpsMetadata.
type OpsMetadata struct {
	ResourceId     *string                  `json:",omitempty"`
	Metadata       map[string]MetadataValue `json:",omitempty"`
	Tags           []Tag                    `json:",omitempty"`
	OpsMetadataArn *string                  `json:",omitempty"`
}

func (m *OpsMetadata) Validate() error {
	return opsMetadataValidator.Validate(m)
}
