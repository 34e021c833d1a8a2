// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const resourceDataSyncSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "Resource Type definition for AWS::SSM::ResourceDataSync",
	"type": "object",
	"definitions": {
		"S3Destination": {
			"type": "object",
			"required": ["BucketName", "BucketRegion", "SyncFormat"],
			"properties": {
				"KMSKeyArn": {"type": "string", "minLength": 1, "maxLength": 512},
				"BucketPrefix": {"type": "string", "minLength": 1, "maxLength": 256},
				"BucketName": {"type": "string", "minLength": 1, "maxLength": 2048},
				"BucketRegion": {"type": "string", "minLength": 1, "maxLength": 64},
				"SyncFormat": {"type": "string", "enum": ["JsonSerDe"]}
			},
			"additionalProperties": false
		},
		"SyncSource": {
			"type": "object",
			"required": ["SourceType", "SourceRegions"],
			"properties": {
				"IncludeFutureRegions": {"type": "boolean"},
				"SourceRegions": {"type": "array", "items": {"type": "string", "minLength": 1, "maxLength": 64}},
				"SourceType": {"type": "string", "minLength": 1, "maxLength": 64},
				"AwsOrganizationsSource": {"$ref": "#/definitions/AwsOrganizationsSource"}
			},
			"additionalProperties": false
		},
		"AwsOrganizationsSource": {
			"type": "object",
			"required": ["OrganizationSourceType"],
			"properties": {
				"OrganizationalUnits": {"type": "array", "items": {"type": "string", "minLength": 1, "maxLength": 128}},
				"OrganizationSourceType": {"type": "string", "enum": ["EntireOrganization", "OrganizationalUnits"]}
			},
			"additionalProperties": false
		}
	},
	"properties": {
		"S3Destination": {"$ref": "#/definitions/S3Destination"},
		"KMSKeyArn": {"type": "string", "minLength": 1, "maxLength": 512},
		"SyncSource": {"$ref": "#/definitions/SyncSource"},
		"BucketName": {"type": "string", "minLength": 1, "maxLength": 2048},
		"BucketRegion": {"type": "string", "minLength": 1, "maxLength": 64},
		"SyncFormat": {"type": "string", "minLength": 0, "maxLength": 1024},
		"SyncName": {"type": "string", "minLength": 1, "maxLength": 64},
		"SyncType": {"type": "string", "enum": ["SyncToDestination", "SyncFromSource"]},
		"BucketPrefix": {"type": "string", "minLength": 0, "maxLength": 64}
	},
	"required": ["SyncName"],
	"additionalProperties": false
}`

var resourceDataSyncValidator = MustCompileSchema(resourceDataSyncSchema)

const (
	SyncTypeToDestination = "SyncToDestination"
	SyncTypeFromSource    = "SyncFromSource"
)

type S3Destination struct {
	KMSKeyArn    *string `json:",omitempty"`
	BucketPrefix *string `json:",omitempty"`
	BucketName   *string `json:",omitempty"`
	BucketRegion *string `json:",omitempty"`
	SyncFormat   *string `json:",omitempty"`
}

type AwsOrganizationsSource struct {
	OrganizationalUnits    []string `json:",omitempty"`
	OrganizationSourceType *string  `json:",omitempty"`
}

type SyncSource struct {
	IncludeFutureRegions   *bool                   `json:",omitempty"`
	SourceRegions          []string                `json:",omitempty"`
	SourceType             *string                 `json:",omitempty"`
	AwsOrganizationsSource *AwsOrganizationsSource `json:",omitempty"`
}

// ResourceDataSync is the resource model of AWS::SSM::ResourceDataSync. The
// flat bucket properties predate S3Destination and are still accepted.
type ResourceDataSync struct {
	S3Destination *S3Destination `json:",omitempty"`
	KMSKeyArn     *string        `json:",omitempty"`
	SyncSource    *SyncSource    `json:",omitempty"`
	BucketName    *string        `json:",omitempty"`
	BucketRegion  *string        `json:",omitempty"`
	SyncFormat    *string        `json:",omitempty"`
	SyncName      *string        `json:",omitempty"`
	SyncType      *string        `json:",omitempty"`
	BucketPrefix  *string        `json:",omitempty"`
}

// Type returns the declared sync type, SyncToDestination when unset.
func (m *ResourceDataSync) Type() string {
	if m.SyncType == nil || *m.SyncType == "" {
		return SyncTypeToDestination
	}
	return *m.SyncType
}

// Destination returns the S3 destination, folding the legacy flat properties
// into one when S3Destination is absent. Nil when neither form is present.
func (m *ResourceDataSync) Destination() *S3Destination {
	if m.S3Destination != nil {
		return m.S3Destination
	}
	if m.BucketName == nil {
		return nil
	}
	return &S3Destination{
		KMSKeyArn:    m.KMSKeyArn,
		BucketPrefix: m.BucketPrefix,
		BucketName:   m.BucketName,
		BucketRegion: m.BucketRegion,
		SyncFormat:   m.SyncFormat,
	}
}

// Validate checks the schema and the per-type shape: destination syncs need a
// bucket and no source, source syncs need a source and no bucket.
func (m *ResourceDataSync) Validate() error {
	if err := resourceDataSyncValidator.Validate(m); err != nil {
		return err
	}
	if m.S3Destination != nil && m.BucketName != nil {
		return newValidationError("S3Destination cannot be combined with BucketName")
	}
	switch m.Type() {
	case SyncTypeToDestination:
		if m.Destination() == nil {
			return newValidationError("SyncToDestination requires S3Destination or BucketName")
		}
		if m.SyncSource != nil {
			return newValidationError("SyncSource is only valid for SyncFromSource")
		}
	case SyncTypeFromSource:
		if m.SyncSource == nil {
			return newValidationError("SyncFromSource requires SyncSource")
		}
		if m.Destination() != nil {
			return newValidationError("S3Destination is only valid for SyncToDestination")
		}
	}
	return nil
}
