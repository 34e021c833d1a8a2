// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package document implements the AWS::SSM::Document resource handlers.
package document

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
)

const (
	TypeName = "AWS::SSM::Document"

	maxNameLength = 128
	latestVersion = "$LATEST"

	stageCreate = "Create"
	stageUpdate = "UpdateVersion"
	stageDelete = "Delete"
)

var errorCodes = provider.ErrorCodes{
	"InvalidDocument":              cloudformation.HandlerErrorCodeNotFound,
	"DocumentAlreadyExists":        cloudformation.HandlerErrorCodeAlreadyExists,
	"DocumentLimitExceeded":        cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"MaxDocumentSizeExceeded":      cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"DocumentVersionLimitExceeded": cloudformation.HandlerErrorCodeServiceLimitExceeded,
	"InvalidDocumentContent":       cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidDocumentSchemaVersion": cloudformation.HandlerErrorCodeInvalidRequest,
	"DuplicateDocumentContent":     cloudformation.HandlerErrorCodeInvalidRequest,
	"DuplicateDocumentVersionName": cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidDocumentVersion":       cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidDocumentOperation":     cloudformation.HandlerErrorCodeResourceConflict,
	"AssociatedInstances":          cloudformation.HandlerErrorCodeResourceConflict,
}

// Resource returns the handler set for AWS::SSM::Document.
func Resource() provider.Resource[types.Document] {
	return provider.Resource[types.Document]{
		TypeName:   TypeName,
		Create:     Create,
		Read:       Read,
		Update:     Update,
		Delete:     Delete,
		List:       List,
		ErrorCodes: errorCodes,
	}
}
