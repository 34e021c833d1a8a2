// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package resourcedatasync

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/samber/lo"
)

func toDestination(d *types.S3Destination, kmsKeyArn string) *ssmtypes.ResourceDataSyncS3Destination {
	if d == nil {
		return nil
	}
	return &ssmtypes.ResourceDataSyncS3Destination{
		BucketName:   d.BucketName,
		Prefix:       d.BucketPrefix,
		Region:       d.BucketRegion,
		SyncFormat:   ssmtypes.ResourceDataSyncS3Format(aws.ToString(d.SyncFormat)),
		AWSKMSKeyARN: provider.StringOrNil(kmsKeyArn),
	}
}

func fromDestination(d *ssmtypes.ResourceDataSyncS3Destination) *types.S3Destination {
	if d == nil {
		return nil
	}
	return &types.S3Destination{
		BucketName:   d.BucketName,
		BucketPrefix: d.Prefix,
		BucketRegion: d.Region,
		SyncFormat:   provider.StringOrNil(string(d.SyncFormat)),
		KMSKeyArn:    d.AWSKMSKeyARN,
	}
}

func toSource(s *types.SyncSource) *ssmtypes.ResourceDataSyncSource {
	if s == nil {
		return nil
	}
	out := &ssmtypes.ResourceDataSyncSource{
		SourceType:           s.SourceType,
		SourceRegions:        s.SourceRegions,
		IncludeFutureRegions: aws.ToBool(s.IncludeFutureRegions),
	}
	if org := s.AwsOrganizationsSource; org != nil {
		out.AwsOrganizationsSource = &ssmtypes.ResourceDataSyncAwsOrganizationsSource{
			OrganizationSourceType: org.OrganizationSourceType,
			OrganizationalUnits: lo.Map(org.OrganizationalUnits, func(id string, _ int) ssmtypes.ResourceDataSyncOrganizationalUnit {
				return ssmtypes.ResourceDataSyncOrganizationalUnit{OrganizationalUnitId: aws.String(id)}
			}),
		}
	}
	return out
}

func fromSource(s *ssmtypes.ResourceDataSyncSourceWithState) *types.SyncSource {
	if s == nil {
		return nil
	}
	out := &types.SyncSource{
		SourceType:           s.SourceType,
		SourceRegions:        s.SourceRegions,
		IncludeFutureRegions: aws.Bool(s.IncludeFutureRegions),
	}
	if org := s.AwsOrganizationsSource; org != nil {
		out.AwsOrganizationsSource = &types.AwsOrganizationsSource{
			OrganizationSourceType: org.OrganizationSourceType,
			OrganizationalUnits: lo.Map(org.OrganizationalUnits, func(u ssmtypes.ResourceDataSyncOrganizationalUnit, _ int) string {
				return aws.ToString(u.OrganizationalUnitId)
			}),
		}
	}
	return out
}

// fromItem fills m from a listed sync. A destination is reported in the form
// the model already uses, S3Destination unless the legacy flat properties are
// set.
func fromItem(item ssmtypes.ResourceDataSyncItem, m *types.ResourceDataSync) {
	legacy := m.S3Destination == nil && m.BucketName != nil
	m.SyncName = item.SyncName
	m.SyncType = item.SyncType
	m.SyncSource = fromSource(item.SyncSource)
	d := fromDestination(item.S3Destination)
	if !legacy || d == nil {
		m.S3Destination = d
		return
	}
	m.BucketName = d.BucketName
	m.BucketPrefix = d.BucketPrefix
	m.BucketRegion = d.BucketRegion
	m.SyncFormat = d.SyncFormat
	m.KMSKeyArn = d.KMSKeyArn
}
