// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package resourcedatasync implements the AWS::SSM::ResourceDataSync resource
// handlers.
package resourcedatasync

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const TypeName = "AWS::SSM::ResourceDataSync"

const stageDelete = "Delete"

var errorCodes = provider.ErrorCodes{
	"ResourceDataSyncNotFoundException":             cloudformation.HandlerErrorCodeNotFound,
	"ResourceDataSyncAlreadyExistsException":        cloudformation.HandlerErrorCodeAlreadyExists,
	"ResourceDataSyncCountExceededException":        cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"ResourceDataSyncInvalidConfigurationException": cloudformation.HandlerErrorCodeInvalidRequest,
	"ResourceDataSyncConflictException":             cloudformation.HandlerErrorCodeResourceConflict,
	"NotFoundException":                             cloudformation.HandlerErrorCodeInvalidRequest,
	"DisabledException":                             cloudformation.HandlerErrorCodeInvalidRequest,
}

// Resource returns the handler set for AWS::SSM::ResourceDataSync.
func Resource() provider.Resource[types.ResourceDataSync] {
	return provider.Resource[types.ResourceDataSync]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
