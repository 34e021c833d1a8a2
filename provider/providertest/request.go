// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package providertest

import (
	"context"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/provider/mocks"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go/aws/session"
	"go.uber.org/zap"
)

// Clients hands every invocation the same mocks, whatever the session.
type Clients struct {
	SSM *mocks.MockSSMClient
	KMS *mocks.MockKmsClient
}

func (c Clients) NewClients(context.Context, *session.Session) (*provider.Clients, error) {
	clients := &provider.Clients{SSM: c.SSM}
	if c.KMS != nil {
		clients.KMS = c.KMS
	}
	return clients, nil
}

// Config is the default provider configuration with quiet logging.
func Config() *provider.Config {
	cfg := provider.DefaultConfig()
	cfg.LogLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg
}

// NewRequest builds a request the way the framework does, from resource
// properties in the JSON CloudFormation sends. prev may be empty.
func NewRequest(prev, cur string, cb *provider.CallbackContext) handler.Request {
	var callback map[string]interface{}
	if cb != nil {
		callback = cb.Map()
	}
	var prevBody []byte
	if prev != "" {
		prevBody = []byte(prev)
	}
	return handler.NewRequest(LogicalID, callback, handler.RequestContext{StackID: StackID}, nil, prevBody, []byte(cur), nil)
}
