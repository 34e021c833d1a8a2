// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package opsmetadata implements the AWS::SSM::OpsMetadata resource handlers.
package opsmetadata

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const TypeName = "AWS::SSM::OpsMetadata"

const notFoundCode = "OpsMetadataNotFoundException"

var errorCodes = provider.ErrorCodes{
	notFoundCode:                           cloudformation.HandlerErrorCodeNotFound,
	"OpsMetadataAlreadyExistsException":    cloudformation.HandlerErrorCodeAlreadyExists,
	"OpsMetadataLimitExceededException":    cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"OpsMetadataKeyLimitExceededException": cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"OpsMetadataTooManyUpdatesException":   cloudformation.HandlerErrorCodeThrottling,
	"OpsMetadataInvalidArgumentException":  cloudformation.HandlerErrorCodeInvalidRequest,
}

// Resource returns the handler set for AWS::SSM::OpsMetadata.
func Resource() provider.Resource[types.OpsMetadata] {
	return provider.Resource[types.OpsMetadata]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
