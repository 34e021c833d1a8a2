// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package patchbaseline implements the AWS::SSM::PatchBaseline resource
// handlers, including patch group and default baseline registration.
package patchbaseline

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const TypeName = "AWS::SSM::PatchBaseline"

var errorCodes = provider.ErrorCodes{
	"DoesNotExistException":          cloudformation.HandlerErrorCodeNotFound,
	"AlreadyExistsException":         cloudformation.HandlerErrorCodeAlreadyExists,
	"ResourceInUseException":         cloudformation.HandlerErrorCodeResourceConflict,
	"ResourceLimitExceededException": cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"IdempotentParameterMismatch":    cloudformation.HandlerErrorCodeInvalidRequest,
}

// Resource returns the handler set for AWS::SSM::PatchBaseline.
func Resource() provider.Resource[types.PatchBaseline] {
	return provider.Resource[types.PatchBaseline]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
