// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// Success reports a completed operation with its resulting model.
func Success(model interface{}, message string) handler.ProgressEvent {
	return handler.ProgressEvent{
		OperationStatus: handler.Success,
		Message:         message,
		ResourceModel:   model,
	}
}

// Deleted reports a completed delete. Deletes carry no model.
func Deleted() handler.ProgressEvent {
	return handler.ProgressEvent{
		OperationStatus: handler.Success,
		Message:         "Delete Complete",
	}
}

// InProgress asks the framework to re-invoke the handler after delaySeconds
// with cb as the persisted callback context.
func InProgress(model interface{}, cb CallbackContext, delaySeconds int64) handler.ProgressEvent {
	return handler.ProgressEvent{
		OperationStatus:      handler.InProgress,
		Message:              "In Progress",
		ResourceModel:        model,
		CallbackDelaySeconds: delaySeconds,
		CallbackContext:      cb.Map(),
	}
}

// Failed reports a terminal failure with a CloudFormation handler error code.
func Failed(code, message string) handler.ProgressEvent {
	return handler.ProgressEvent{
		OperationStatus:  handler.Failed,
		HandlerErrorCode: code,
		Message:          message,
	}
}

// Listed reports one page of a List operation.
func Listed(models []interface{}, nextToken *string) handler.ProgressEvent {
	if models == nil {
		models = []interface{}{}
	}
	return handler.ProgressEvent{
		OperationStatus: handler.Success,
		Message:         "List Complete",
		ResourceModels:  models,
		NextToken:       aws.ToString(nextToken),
	}
}
