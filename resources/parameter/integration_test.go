// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

//go:build integration

package parameter

import (
	"context"
	"testing"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIntegration(t *testing.T) {
	ctx := context.TODO()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		panic(err)
	}
	client := ssm.NewFromConfig(cfg)
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	newInvocation := func(action provider.Action) *provider.Invocation {
		return &provider.Invocation{
			Action:   action,
			TypeName: TypeName,
			SSM:      client,
			Logger:   logger,
			Stabilizer: provider.Stabilizer{
				DelaySeconds: 1,
				Retries:      5,
				Logger:       logger,
			},
			Tagger: provider.NewTagger(client, logger),
		}
	}

	name := "/integration-test/" + uuid.NewString()
	model := &types.Parameter{
		Name:  aws.String(name),
		Type:  aws.String("String"),
		Value: aws.String("first"),
		Tags:  map[string]string{"Purpose": "integration-test"},
	}
	event, err := Create(ctx, newInvocation(provider.ActionCreate), &types.Parameter{}, model)
	require.NoError(t, err)
	assert.Equal(t, handler.Success, event.OperationStatus)

	_, err = Create(ctx, newInvocation(provider.ActionCreate), &types.Parameter{}, &types.Parameter{Name: aws.String(name), Type: aws.String("String"), Value: aws.String("again")})
	assert.True(t, provider.Is(err, "ParameterAlreadyExists"))

	prev := *model
	updated := &types.Parameter{Name: aws.String(name), Type: aws.String("String"), Value: aws.String("second")}
	event, err = Update(ctx, newInvocation(provider.ActionUpdate), &prev, updated)
	require.NoError(t, err)
	assert.Equal(t, "second", aws.ToString(updated.Value))
	assert.Empty(t, updated.Tags)

	event, err = Delete(ctx, newInvocation(provider.ActionDelete), &types.Parameter{}, &types.Parameter{Name: aws.String(name)})
	require.NoError(t, err)
	assert.Equal(t, handler.Success, event.OperationStatus)

	_, err = Read(ctx, newInvocation(provider.ActionRead), &types.Parameter{}, &types.Parameter{Name: aws.String(name)})
	assert.True(t, provider.Is(err, "ParameterNotFound"))
}
