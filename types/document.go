// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"encoding/json"
)

const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "The AWS::SSM::Document resource creates a Systems Manager (SSM) document in AWS Systems Manager.",
	"type": "object",
	"definitions": {
		"AttachmentsSource": {
			"type": "object",
			"properties": {
				"Key": {"type": "string", "enum": ["SourceUrl", "S3FileUrl", "AttachmentReference"]},
				"Values": {"type": "array", "minItems": 1, "maxItems": 1, "items": {"type": "string", "minLength": 1, "maxLength": 1024}},
				"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{3,128}$"}
			},
			"additionalProperties": false
		},
		"DocumentRequires": {
			"type": "object",
			"properties": {
				"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.:/]{3,200}$"},
				"Version": {"type": "string", "pattern": "([$]LATEST|[$]DEFAULT|^[1-9][0-9]*$)"}
			},
			"additionalProperties": false
		}
	},
	"properties": {
		"Content": {"type": ["object", "string"]},
		"Attachments": {"type": "array", "minItems": 0, "maxItems": 20, "items": {"$ref": "#/definitions/AttachmentsSource"}},
		"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{3,128}$"},
		"VersionName": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{1,128}$"},
		"DocumentType": {"type": "string", "enum": ["ApplicationConfiguration", "ApplicationConfigurationSchema", "Automation", "Automation.ChangeTemplate", "ChangeCalendar", "CloudFormation", "Command", "DeploymentStrategy", "Package", "Policy", "ProblemAnalysis", "ProblemAnalysisTemplate", "Session"]},
		"DocumentFormat": {"type": "string", "enum": ["YAML", "JSON", "TEXT"]},
		"TargetType": {"type": "string", "pattern": "^\\/[\\w\\.\\-\\:\\/]*$"},
		"Tags": {"type": "array", "maxItems": 1000, "items": ` + tagSchema + `},
		"Requires": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/DocumentRequires"}},
		"UpdateMethod": {"type": "string", "enum": ["Replace", "NewVersion"]}
	},
	"required": ["Content"],
	"additionalProperties": false
}`

var documentValidator = MustCompileSchema(documentSchema)

const (
	DocumentFormatJSON = "JSON"
	DocumentFormatYAML = "YAML"
	DocumentFormatText = "TEXT"

	DocumentUpdateMethodReplace    = "Replace"
	DocumentUpdateMethodNewVersion = "NewVersion"
)

type AttachmentsSource struct {
	Key    *string  `json:",omitempty"`
	Values []string `json:",omitempty"`
	Name   *string  `json:",omitempty"`
}

type DocumentRequires struct {
	Name    *string `json:",omitempty"`
	Version *string `json:",omitempty"`
}

// Document is the resource model of AWS::SSM::Document. Content is either a
// structured object or a raw string, as CloudFormation passes it through.
type Document struct {
	Content        interface{}         `json:",omitempty"`
	Attachments    []AttachmentsSource `json:",omitempty"`
	Name           *string             `json:",omitempty"`
	VersionName    *string             `json:",omitempty"`
	DocumentType   *string             `json:",omitempty"`
	DocumentFormat *string             `json:",omitempty"`
	TargetType     *string             `json:",omitempty"`
	Tags           []Tag               `json:",omitempty"`
	Requires       []DocumentRequires  `json:",omitempty"`
	UpdateMethod   *string             `json:",omitempty"`
}

// RawProperties lists the properties kept out of stringified decoding.
func (m *Document) RawProperties() []string {
	return []string{"Content"}
}

func (m *Document) SetRawProperty(name string, raw json.RawMessage) error {
	if name != "Content" {
		return nil
	}
	return json.Unmarshal(raw, &m.Content)
}

func (m *Document) Validate() error {
	return documentValidator.Validate(m)
}

// Format returns the declared document format, JSON when unset.
func (m *Document) Format() string {
	if m.DocumentFormat == nil || *m.DocumentFormat == "" {
		return DocumentFormatJSON
	}
	return *m.DocumentFormat
}

// Method returns the declared update method, Replace when unset.
func (m *Document) Method() string {
	if m.UpdateMethod == nil || *m.UpdateMethod == "" {
		return DocumentUpdateMethodReplace
	}
	return *m.UpdateMethod
}
