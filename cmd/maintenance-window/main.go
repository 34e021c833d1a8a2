// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package main

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/resources/maintenancewindow"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn"
	"go.uber.org/zap"
)

var handler cfn.Handler

func init() {
	// Create the handler and store in global space to re-use
	// configuration between invocations of Lambda.
	cfg, err := provider.LoadConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("Invalid Configuration", zap.String("TypeName", maintenancewindow.TypeName), zap.Error(err))
	}
	handler = provider.NewHandler(maintenancewindow.Resource(), provider.NewSessionClientFactory(cfg), cfg)
}

func main() {
	cfn.Start(handler)
}
