// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"fmt"

	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// HandlerError carries a CloudFormation handler error code chosen by the
// resource code itself, e.g. NotFound for a model without its primary id.
type HandlerError struct {
	Code    string
	Message string
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewHandlerError returns a HandlerError with a formatted message.
func NewHandlerError(code, format string, args ...interface{}) error {
	return &HandlerError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports that the resource identified by id does not exist.
func NotFound(typeName, id string) error {
	return NewHandlerError(cloudformation.HandlerErrorCodeNotFound, "%s with identifier %s was not found", typeName, id)
}

// NotUpdatable reports an attempt to change a create-only property.
func NotUpdatable(property string) error {
	return NewHandlerError(cloudformation.HandlerErrorCodeNotUpdatable, "property %s cannot be updated", property)
}

// ErrorCodes maps SSM error codes to CloudFormation handler error codes.
type ErrorCodes map[string]string

var commonErrorCodes = ErrorCodes{
	"ThrottlingException":         cloudformation.HandlerErrorCodeThrottling,
	"TooManyUpdates":              cloudformation.HandlerErrorCodeThrottling,
	"RequestLimitExceeded":        cloudformation.HandlerErrorCodeThrottling,
	"InternalServerError":         cloudformation.HandlerErrorCodeServiceInternalError,
	"AccessDeniedException":       cloudformation.HandlerErrorCodeAccessDenied,
	"UnrecognizedClientException": cloudformation.HandlerErrorCodeInvalidCredentials,
	"ExpiredTokenException":       cloudformation.HandlerErrorCodeInvalidCredentials,
	"ValidationException":         cloudformation.HandlerErrorCodeInvalidRequest,
	"InvalidResourceId":           cloudformation.HandlerErrorCodeNotFound,
	"InvalidResourceType":         cloudformation.HandlerErrorCodeInvalidRequest,
	"TooManyTagsError":            cloudformation.HandlerErrorCodeServiceLimitExceeded,
}

// Classify translates err into a handler error code and message. Resource
// specific codes take precedence over the shared table. Errors that did not
// come from the service are reported as InternalFailure.
func (c ErrorCodes) Classify(err error) (string, string) {
	var he *HandlerError
	if errors.As(err, &he) {
		return he.Code, he.Message
	}
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		return cloudformation.HandlerErrorCodeInvalidRequest, ve.Error()
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		if code, ok := c[ae.ErrorCode()]; ok {
			return code, ae.Error()
		}
		if code, ok := commonErrorCodes[ae.ErrorCode()]; ok {
			return code, ae.Error()
		}
		if isServerError(err) {
			return cloudformation.HandlerErrorCodeServiceInternalError, ae.Error()
		}
		return cloudformation.HandlerErrorCodeGeneralServiceException, ae.Error()
	}
	return cloudformation.HandlerErrorCodeInternalFailure, err.Error()
}

// Is reports whether err is a service error with the given SSM error code.
func Is(err error, code string) bool {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode() == code
	}
	return false
}

func isServerError(err error) bool {
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.Response.StatusCode >= 500
	}
	return false
}
