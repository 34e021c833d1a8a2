// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package association implements the AWS::SSM::Association resource handlers.
package association

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const TypeName = "AWS::SSM::Association"

var errorCodes = provider.ErrorCodes{
	"AssociationDoesNotExist":         cloudformation.HandlerErrorCodeNotFound,
	"AssociationAlreadyExists":        cloudformation.HandlerErrorCodeAlreadyExists,
	"AssociationLimitExceeded":        cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"AssociationVersionLimitExceeded": cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"InvalidDocument":                 cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidDocumentVersion":          cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidInstanceId":               cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidParameters":               cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidOutputLocation":           cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidSchedule":                 cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidTargets":                  cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidTargetMaps":               cloudformation.HandlerErrorCodeInvalidRequest,
	"UnsupportedPlatformType":         cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidAssociationVersion":       cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidUpdate":                   cloudformation.HandlerErrorCodeInvalidRequest,
}

// Resource returns the handler set for AWS::SSM::Association.
func Resource() provider.Resource[types.Association] {
	return provider.Resource[types.Association]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
