// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package association

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

func toCreateInput(m *types.Association) *ssm.CreateAssociationInput {
	return &ssm.CreateAssociationInput{
		Name:                          m.Name,
		AssociationName:               m.AssociationName,
		DocumentVersion:               m.DocumentVersion,
		InstanceId:                    m.InstanceId,
		Parameters:                    m.Parameters,
		ScheduleExpression:            m.ScheduleExpression,
		ScheduleOffset:                provider.ToInt32(m.ScheduleOffset),
		Targets:                       toTargets(m.Targets),
		OutputLocation:                toOutputLocation(m.OutputLocation),
		AutomationTargetParameterName: m.AutomationTargetParameterName,
		MaxErrors:                     m.MaxErrors,
		MaxConcurrency:                m.MaxConcurrency,
		ComplianceSeverity:            ssmtypes.AssociationComplianceSeverity(aws.ToString(m.ComplianceSeverity)),
		SyncCompliance:                ssmtypes.AssociationSyncCompliance(aws.ToString(m.SyncCompliance)),
		ApplyOnlyAtCronInterval:       aws.ToBool(m.ApplyOnlyAtCronInterval),
		CalendarNames:                 m.CalendarNames,
	}
}

func toUpdateInput(m *types.Association) *ssm.UpdateAssociationInput {
	return &ssm.UpdateAssociationInput{
		AssociationId:                 m.AssociationId,
		Name:                          m.Name,
		AssociationName:               m.AssociationName,
		DocumentVersion:               m.DocumentVersion,
		Parameters:                    m.Parameters,
		ScheduleExpression:            m.ScheduleExpression,
		ScheduleOffset:                provider.ToInt32(m.ScheduleOffset),
		Targets:                       toTargets(m.Targets),
		OutputLocation:                toOutputLocation(m.OutputLocation),
		AutomationTargetParameterName: m.AutomationTargetParameterName,
		MaxErrors:                     m.MaxErrors,
		MaxConcurrency:                m.MaxConcurrency,
		ComplianceSeverity:            ssmtypes.AssociationComplianceSeverity(aws.ToString(m.ComplianceSeverity)),
		SyncCompliance:                ssmtypes.AssociationSyncCompliance(aws.ToString(m.SyncCompliance)),
		ApplyOnlyAtCronInterval:       aws.ToBool(m.ApplyOnlyAtCronInterval),
		CalendarNames:                 m.CalendarNames,
	}
}

// fromDescription overwrites m with the service view of the association.
// WaitForSuccessTimeoutSeconds is write-only and left untouched.
func fromDescription(d *ssmtypes.AssociationDescription, m *types.Association) {
	m.AssociationId = d.AssociationId
	m.AssociationName = d.AssociationName
	m.DocumentVersion = d.DocumentVersion
	m.InstanceId = d.InstanceId
	m.Name = d.Name
	m.Parameters = d.Parameters
	m.ScheduleExpression = d.ScheduleExpression
	m.ScheduleOffset = provider.FromInt32(d.ScheduleOffset)
	m.Targets = fromTargets(d.Targets)
	m.OutputLocation = fromOutputLocation(d.OutputLocation)
	m.AutomationTargetParameterName = d.AutomationTargetParameterName
	m.MaxErrors = d.MaxErrors
	m.MaxConcurrency = d.MaxConcurrency
	m.ComplianceSeverity = provider.StringOrNil(string(d.ComplianceSeverity))
	m.SyncCompliance = provider.StringOrNil(string(d.SyncCompliance))
	if d.ApplyOnlyAtCronInterval {
		m.ApplyOnlyAtCronInterval = aws.Bool(true)
	} else if m.ApplyOnlyAtCronInterval != nil {
		m.ApplyOnlyAtCronInterval = aws.Bool(false)
	}
	m.CalendarNames = d.CalendarNames
}

func fromSummary(a ssmtypes.Association) types.Association {
	return types.Association{
		AssociationId:      a.AssociationId,
		AssociationName:    a.AssociationName,
		DocumentVersion:    a.DocumentVersion,
		InstanceId:         a.InstanceId,
		Name:               a.Name,
		ScheduleExpression: a.ScheduleExpression,
		ScheduleOffset:     provider.FromInt32(a.ScheduleOffset),
		Targets:            fromTargets(a.Targets),
	}
}

func toTargets(targets []types.AssociationTarget) []ssmtypes.Target {
	if len(targets) == 0 {
		return nil
	}
	out := make([]ssmtypes.Target, 0, len(targets))
	for _, t := range targets {
		out = append(out, ssmtypes.Target{Key: t.Key, Values: t.Values})
	}
	return out
}

func fromTargets(targets []ssmtypes.Target) []types.AssociationTarget {
	if len(targets) == 0 {
		return nil
	}
	out := make([]types.AssociationTarget, 0, len(targets))
	for _, t := range targets {
		out = append(out, types.AssociationTarget{Key: t.Key, Values: t.Values})
	}
	return out
}

func toOutputLocation(l *types.InstanceAssociationOutputLocation) *ssmtypes.InstanceAssociationOutputLocation {
	if l == nil || l.S3Location == nil {
		return nil
	}
	return &ssmtypes.InstanceAssociationOutputLocation{
		S3Location: &ssmtypes.S3OutputLocation{
			OutputS3Region:     l.S3Location.OutputS3Region,
			OutputS3BucketName: l.S3Location.OutputS3BucketName,
			OutputS3KeyPrefix:  l.S3Location.OutputS3KeyPrefix,
		},
	}
}

func fromOutputLocation(l *ssmtypes.InstanceAssociationOutputLocation) *types.InstanceAssociationOutputLocation {
	if l == nil || l.S3Location == nil {
		return nil
	}
	return &types.InstanceAssociationOutputLocation{
		S3Location: &types.S3OutputLocation{
			OutputS3Region:     l.S3Location.OutputS3Region,
			OutputS3BucketName: l.S3Location.OutputS3BucketName,
			OutputS3KeyPrefix:  l.S3Location.OutputS3KeyPrefix,
		},
	}
}
