// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package parameter implements the AWS::SSM::Parameter resource handlers.
package parameter

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const (
	TypeName = "AWS::SSM::Parameter"

	maxNameLength = 2048
)

var errorCodes = provider.ErrorCodes{
	"ParameterNotFound":                    cloudformation.HandlerErrorCodeNotFound,
	"ParameterAlreadyExists":               cloudformation.HandlerErrorCodeAlreadyExists,
	"ParameterLimitExceeded":               cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"ParameterMaxVersionLimitExceeded":     cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"HierarchyLevelLimitExceededException": cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"PoliciesLimitExceededException":       cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"InvalidAllowedPatternException":       cloudformation.HandlerErrorCodeInvalidRequest,
	"ParameterPatternMismatchException":    cloudformation.HandlerErrorCodeInvalidRequest,
	"HierarchyTypeMismatchException":       cloudformation.HandlerErrorCodeInvalidRequest,
	"UnsupportedParameterType":             cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidPolicyTypeException":           cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidPolicyAttributeException":      cloudformation.HandlerErrorCodeInvalidRequest,
	"IncompatiblePolicyException":          cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidKeyId":                         cloudformation.HandlerErrorCodeInvalidRequest,
}

// Resource returns the handler set for AWS::SSM::Parameter.
func Resource() provider.Resource[types.Parameter] {
	return provider.Resource[types.Parameter]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
