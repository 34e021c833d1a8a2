// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package maintenancewindow implements the AWS::SSM::MaintenanceWindow
// resource handlers. All operations complete in a single invocation.
package maintenancewindow

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const TypeName = "AWS::SSM::MaintenanceWindow"

var errorCodes = provider.ErrorCodes{
	"DoesNotExistException":          cloudformation.HandlerErrorCodeNotFound,
	"IdempotentParameterMismatch":    cloudformation.HandlerErrorCodeInvalidRequest,
	"ResourceLimitExceededException": cloudformation.HandlerErrorCodeServiceLimitExceeded,
}

// Resource returns the handler set for AWS::SSM::MaintenanceWindow.
func Resource() provider.Resource[types.MaintenanceWindow] {
	return provider.Resource[types.MaintenanceWindow]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
