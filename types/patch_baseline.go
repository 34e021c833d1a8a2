// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const patchBaselineSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "Resource Type definition for AWS::SSM::PatchBaseline",
	"type": "object",
	"definitions": {
		"PatchFilter": {
			"type": "object",
			"properties": {
				"Key": {"type": "string"},
				"Values": {"type": "array", "maxItems": 20, "items": {"type": "string", "minLength": 1, "maxLength": 64}}
			},
			"additionalProperties": false
		},
		"PatchFilterGroup": {
			"type": "object",
			"properties": {
				"PatchFilters": {"type": "array", "maxItems": 5, "items": {"$ref": "#/definitions/PatchFilter"}}
			},
			"additionalProperties": false
		},
		"Rule": {
			"type": "object",
			"properties": {
				"ApproveAfterDays": {"type": "integer", "minimum": 0, "maximum": 360},
				"ApproveUntilDate": {"type": "string"},
				"EnableNonSecurity": {"type": "boolean"},
				"ComplianceLevel": {"type": "string", "enum": ["CRITICAL", "HIGH", "INFORMATIONAL", "LOW", "MEDIUM", "UNSPECIFIED"]},
				"PatchFilterGroup": {"$ref": "#/definitions/PatchFilterGroup"}
			},
			"additionalProperties": false
		},
		"RuleGroup": {
			"type": "object",
			"properties": {
				"PatchRules": {"type": "array", "maxItems": 10, "items": {"$ref": "#/definitions/Rule"}}
			},
			"additionalProperties": false
		},
		"PatchSource": {
			"type": "object",
			"properties": {
				"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{3,50}$"},
				"Products": {"type": "array", "minItems": 1, "maxItems": 20, "items": {"type": "string"}},
				"Configuration": {"type": "string", "minLength": 1, "maxLength": 1024}
			},
			"additionalProperties": false
		}
	},
	"properties": {
		"Id": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-:/]{20,128}$"},
		"DefaultBaseline": {"type": "boolean"},
		"OperatingSystem": {"type": "string", "enum": ["WINDOWS", "AMAZON_LINUX", "AMAZON_LINUX_2", "AMAZON_LINUX_2022", "AMAZON_LINUX_2023", "UBUNTU", "REDHAT_ENTERPRISE_LINUX", "SUSE", "CENTOS", "ORACLE_LINUX", "DEBIAN", "MACOS", "RASPBIAN", "ROCKY_LINUX", "ALMA_LINUX"]},
		"Description": {"type": "string", "minLength": 1, "maxLength": 1024},
		"ApprovalRules": {"$ref": "#/definitions/RuleGroup"},
		"Sources": {"type": "array", "maxItems": 20, "items": {"$ref": "#/definitions/PatchSource"}},
		"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{3,128}$"},
		"RejectedPatches": {"type": "array", "maxItems": 50, "items": {"type": "string", "minLength": 1, "maxLength": 100}},
		"ApprovedPatches": {"type": "array", "maxItems": 50, "items": {"type": "string", "minLength": 1, "maxLength": 100}},
		"RejectedPatchesAction": {"type": "string", "enum": ["ALLOW_AS_DEPENDENCY", "BLOCK"]},
		"PatchGroups": {"type": "array", "items": {"type": "string", "minLength": 1, "maxLength": 256}},
		"ApprovedPatchesComplianceLevel": {"type": "string", "enum": ["CRITICAL", "HIGH", "MEDIUM", "LOW", "INFORMATIONAL", "UNSPECIFIED"]},
		"ApprovedPatchesEnableNonSecurity": {"type": "boolean"},
		"GlobalFilters": {"$ref": "#/definitions/PatchFilterGroup"},
		"Tags": {"type": "array", "maxItems": 1000, "items": ` + tagSchema + `}
	},
	"required": ["Name"],
	"additionalProperties": false
}`

var patchBaselineValidator = MustCompileSchema(patchBaselineSchema)

type PatchFilter struct {
	Key    *string  `json:",omitempty"`
	Values []string `json:",omitempty"`
}

type PatchFilterGroup struct {
	PatchFilters []PatchFilter `json:",omitempty"`
}

type PatchRule struct {
	ApproveAfterDays  *int              `json:",omitempty"`
	ApproveUntilDate  *string           `json:",omitempty"`
	EnableNonSecurity *bool             `json:",omitempty"`
	ComplianceLevel   *string           `json:",omitempty"`
	PatchFilterGroup  *PatchFilterGroup `json:",omitempty"`
}

type PatchRuleGroup struct {
	PatchRules []PatchRule `json:",omitempty"`
}

type PatchSource struct {
	Name          *string  `json:",omitempty"`
	Products      []string `json:",omitempty"`
	Configuration *string  `json:",omitempty"`
}

// PatchBaseline is the resource model of AWS::SSM::PatchBaseline.
type PatchBaseline struct {
	Id                               *string           `json:",omitempty"`
	DefaultBaseline                  *bool             `json:",omitempty"`
	OperatingSystem                  *string           `json:",omitempty"`
	Description                      *string           `json:",omitempty"`
	ApprovalRules                    *PatchRuleGroup   `json:",omitempty"`
	Sources                          []PatchSource     `json:",omitempty"`
	Name                             *string           `json:",omitempty"`
	RejectedPatches                  []string          `json:",omitempty"`
	ApprovedPatches                  []string          `json:",omitempty"`
	RejectedPatchesAction            *string           `json:",omitempty"`
	PatchGroups                      []string          `json:",omitempty"`
	ApprovedPatchesComplianceLevel   *string           `json:",omitempty"`
	ApprovedPatchesEnableNonSecurity *bool             `json:",omitempty"`
	GlobalFilters                    *PatchFilterGroup `json:",omitempty"`
	Tags                             []Tag             `json:",omitempty"`
}

// Validate checks the schema and that every approval rule carries exactly one
// of ApproveAfterDays and ApproveUntilDate.
func (m *PatchBaseline) Validate() error {
	if err := patchBaselineValidator.Validate(m); err != nil {
		return err
	}
	if m.ApprovalRules != nil {
		for _, r := range m.ApprovalRules.PatchRules {
			if (r.ApproveAfterDays == nil) == (r.ApproveUntilDate == nil) {
				return newValidationError("each approval rule must specify exactly one of ApproveAfterDays and ApproveUntilDate")
			}
		}
	}
	return nil
}
