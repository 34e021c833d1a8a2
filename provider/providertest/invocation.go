// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package providertest builds invocations for resource handler tests.
package providertest

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/provider/mocks"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

const (
	StackID      = "arn:aws:cloudformation:us-east-1:123456789012:stack/test-stack/5b6b9b50-2f4a-11ee-be56-0242ac120002"
	LogicalID    = "TestResource"
	DelaySeconds = 15
	Retries      = 3
)

// Option customizes an invocation.
type Option func(*provider.Invocation)

// WithCallback sets the callback context as if the framework re-invoked the
// handler.
func WithCallback(cb provider.CallbackContext) Option {
	return func(inv *provider.Invocation) {
		inv.Callback = &cb
		inv.Request.CallbackContext = cb.Map()
	}
}

// WithNextToken sets the List pagination token.
func WithNextToken(token string) Option {
	return func(inv *provider.Invocation) {
		inv.Request.RequestContext.NextToken = token
	}
}

// WithKms attaches a KMS client.
func WithKms(kms *mocks.MockKmsClient) Option {
	return func(inv *provider.Invocation) {
		inv.KMS = kms
	}
}

// NewInvocation returns an invocation wired to the given SSM mock with a
// stabilizer of Retries retries and a no-op logger.
func NewInvocation(action provider.Action, typeName string, ssm *mocks.MockSSMClient, opts ...Option) *provider.Invocation {
	logger := zap.NewNop()
	inv := &provider.Invocation{
		Action:   action,
		TypeName: typeName,
		Request: handler.Request{
			LogicalResourceID: LogicalID,
			RequestContext: handler.RequestContext{
				StackID: StackID,
			},
		},
		SSM:    ssm,
		Logger: logger,
		Stabilizer: provider.Stabilizer{
			DelaySeconds: DelaySeconds,
			Retries:      Retries,
			Logger:       logger,
		},
		Tagger: provider.NewTagger(ssm, logger),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// APIError returns a service error with the given code, as the SDK would.
func APIError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code + " raised by test"}
}
