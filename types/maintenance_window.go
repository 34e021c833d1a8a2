// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const maintenanceWindowSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"description": "The AWS::SSM::MaintenanceWindow resource represents general information about a maintenance window for AWS Systems Manager.",
	"type": "object",
	"properties": {
		"WindowId": {"type": "string", "pattern": "^mw-[0-9a-f]{17}$"},
		"StartDate": {"type": "string"},
		"Description": {"type": "string", "minLength": 1, "maxLength": 128},
		"AllowUnassociatedTargets": {"type": "boolean"},
		"Cutoff": {"type": "integer", "minimum": 0, "maximum": 23},
		"Schedule": {"type": "string", "minLength": 1, "maxLength": 256},
		"Duration": {"type": "integer", "minimum": 1, "maximum": 24},
		"ScheduleOffset": {"type": "integer", "minimum": 1, "maximum": 6},
		"EndDate": {"type": "string"},
		"Tags": {"type": "array", "maxItems": 1000, "items": ` + tagSchema + `},
		"Name": {"type": "string", "pattern": "^[a-zA-Z0-9_\\-.]{3,128}$"},
		"ScheduleTimezone": {"type": "string"}
	},
	"required": ["AllowUnassociatedTargets", "Cutoff", "Schedule", "Duration", "Name"],
	"additionalProperties": false
}`

var maintenanceWindowValidator = MustCompileSchema(maintenanceWindowSchema)

// MaintenanceWindow is the resource model of AWS::SSM::MaintenanceWindow.
type MaintenanceWindow struct {
	WindowId                 *string `json:",omitempty"`
	StartDate                *string `json:",omitempty"`
	Description              *string `json:",omitempty"`
	AllowUnassociatedTargets *bool   `json:",omitempty"`
	Cutoff                   *int    `json:",omitempty"`
	Schedule                 *string `json:",omitempty"`
	Duration                 *int    `json:",omitempty"`
	ScheduleOffset           *int    `json:",omitempty"`
	EndDate                  *string `json:",omitempty"`
	Tags                     []Tag   `json:",omitempty"`
	Name                     *string `json:",omitempty"`
	ScheduleTimezone         *string `json:",omitempty"`
}

// Validate checks the schema and that the cutoff leaves time to run tasks.
func (m *MaintenanceWindow) Validate() error {
	if err := maintenanceWindowValidator.Validate(m); err != nil {
		return err
	}
	if *m.Cutoff >= *m.Duration {
		return newValidationError("Cutoff must be less than Duration")
	}
	return nil
}
