// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const associationSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "The AWS::SSM::Association resource associates an SSM document with managed instances or targets.",
	"type": "object",
	"definitions": {
		"Target": {
			"type": "object",
			"required": ["Key", "Values"],
			"properties": {
				"Key": {"type": "string", "pattern": "^[\\p{L}\\p{Z}\\p{N}_.:/=+\\-@]{1,128}$|resource-groups:Name"},
				"Values": {"type": "array", "maxItems": 50, "items": {"type": "string"}}
			},
			"additionalProperties": false
		},
		"S3OutputLocation": {
			"type": "object",
			"properties": {
				"OutputS3Region": {"type": "string", "minLength": 3, "maxLength": 20},
				"OutputS3BucketName": {"type": "string", "minLength": 3, "maxLength": 63},
				"OutputS3KeyPrefix": {"type": "string", "maxLength": 1024}
			},
			"additionalProperties": false
		}
	},
	"properties": {
		"AssociationId": {"type": "string", "pattern": "[0-9a-fA-F]{8}\\-[0-9a-fA-F]{4}\\-[0-9a-fA-F]{4}\\-[0-9a-fA-F]{4}\\-[0-9a-fA-F]{12}"},
		"AssociationName": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{3,128}$"},
		"DocumentVersion": {"type": "string", "pattern": "([$]LATEST|[$]DEFAULT|^[1-9][0-9]*$)"},
		"InstanceId": {"type": "string", "pattern": "(^i-(\\w{8}|\\w{17})$)|(^mi-\\w{17}$)"},
		"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.:/]{3,200}$"},
		"Parameters": {
			"type": "object",
			"patternProperties": {".{1,255}": {"type": "array", "items": {"type": "string"}}},
			"additionalProperties": false
		},
		"ScheduleExpression": {"type": "string", "minLength": 1, "maxLength": 256},
		"ScheduleOffset": {"type": "integer", "minimum": 1, "maximum": 6},
		"Targets": {"type": "array", "minItems": 0, "maxItems": 5, "items": {"$ref": "#/definitions/Target"}},
		"OutputLocation": {
			"type": "object",
			"properties": {"S3Location": {"$ref": "#/definitions/S3OutputLocation"}},
			"additionalProperties": false
		},
		"AutomationTargetParameterName": {"type": "string", "minLength": 1, "maxLength": 50},
		"MaxErrors": {"type": "string", "pattern": "^([1-9][0-9]{0,6}|[0]|[1-9][0-9]%|[0-9]%|100%)$"},
		"MaxConcurrency": {"type": "string", "pattern": "^([1-9][0-9]{0,6}|[1-9][0-9]%|[1-9]%|100%)$"},
		"ComplianceSeverity": {"type": "string", "enum": ["CRITICAL", "HIGH", "MEDIUM", "LOW", "UNSPECIFIED"]},
		"SyncCompliance": {"type": "string", "enum": ["AUTO", "MANUAL"]},
		"WaitForSuccessTimeoutSeconds": {"type": "integer", "minimum": 15, "maximum": 172800},
		"ApplyOnlyAtCronInterval": {"type": "boolean"},
		"CalendarNames": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["Name"],
	"additionalProperties": false
}`

var associationValidator = MustCompileSchema(associationSchema)

type AssociationTarget struct {
	Key    *string  `json:",omitempty"`
	Values []string `json:",omitempty"`
}

type S3OutputLocation struct {
	OutputS3Region     *string `json:",omitempty"`
	OutputS3BucketName *string `json:",omitempty"`
	OutputS3KeyPrefix  *string `json:",omitempty"`
}

type InstanceAssociationOutputLocation struct {
	S3Location *S3OutputLocation `json:",omitempty"`
}

// Association is the resource model of AWS::SSM::Association.
type Association struct {
	AssociationId                 *string                            `json:",omitempty"`
	AssociationName               *string                            `json:",omitempty"`
	DocumentVersion               *string                            `json:",omitempty"`
	InstanceId                    *string                            `json:",omitempty"`
	Name                          *string                            `json:",omitempty"`
	Parameters                    map[string][]string                `json:",omitempty"`
	ScheduleExpression            *string                            `json:",omitempty"`
	ScheduleOffset                *int                               `json:",omitempty"`
	Targets                       []AssociationTarget                `json:",omitempty"`
	OutputLocation                *InstanceAssociationOutputLocation `json:",omitempty"`
	AutomationTargetParameterName *string                            `json:",omitempty"`
	MaxErrors                     *string                            `json:",omitempty"`
	MaxConcurrency                *string                            `json:",omitempty"`
	ComplianceSeverity            *string                            `json:",omitempty"`
	SyncCompliance                *string                            `json:",omitempty"`
	WaitForSuccessTimeoutSeconds  *int                               `json:",omitempty"`
	ApplyOnlyAtCronInterval       *bool                              `json:",omitempty"`
	CalendarNames                 []string                           `json:",omitempty"`
}

// Validate checks the model against the resource schema and the rule that an
// association targets either a single instance or a target list, never both.
func (m *Association) Validate() error {
	if err := associationValidator.Validate(m); err != nil {
		return err
	}
	if m.InstanceId != nil && len(m.Targets) > 0 {
		return newValidationError("InstanceId and Targets cannot both be specified")
	}
	return nil
}
