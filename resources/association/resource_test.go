// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package association

import (
	"context"
	"testing"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/provider/mocks"
	"github.com/aws-samples/amazon-ssm-resource-providers/provider/providertest"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stringifiedBody = `{
	"Name": "AWS-RunPatchBaseline",
	"ScheduleExpression": "rate(30 minutes)",
	"ScheduleOffset": "2",
	"WaitForSuccessTimeoutSeconds": "300",
	"ApplyOnlyAtCronInterval": "true",
	"Parameters": {"Operation": ["Scan"]},
	"Targets": [{"Key": "tag:Env", "Values": ["prod"]}]
}`

func TestResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Create from stringified properties", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().CreateAssociation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *ssm.CreateAssociationInput, _ ...func(*ssm.Options)) (*ssm.CreateAssociationOutput, error) {
				assert.Equal(t, int32(2), aws.ToInt32(in.ScheduleOffset))
				assert.True(t, in.ApplyOnlyAtCronInterval)
				assert.Equal(t, map[string][]string{"Operation": {"Scan"}}, in.Parameters)
				require.Len(t, in.Targets, 1)
				assert.Equal(t, []string{"prod"}, in.Targets[0].Values)
				return &ssm.CreateAssociationOutput{AssociationDescription: description("").AssociationDescription}, nil
			})
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Create(providertest.NewRequest("", stringifiedBody, nil))
		require.Equal(t, handler.InProgress, event.OperationStatus, event.Message)
		cb, err := provider.DecodeCallbackContext(event.CallbackContext)
		require.NoError(t, err)
		assert.Equal(t, associationID, cb.ResourceRef)
		// 300 seconds at the default 15 second delay.
		assert.Equal(t, 20, cb.RetriesRemaining)
	})

	t.Run("Create re-invoked with callback context", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().DescribeAssociation(gomock.Any(), gomock.Any()).Return(description("Success"), nil).Times(2)
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Create(providertest.NewRequest("", stringifiedBody,
			&provider.CallbackContext{ResourceRef: associationID, RetriesRemaining: 20}))
		require.Equal(t, handler.Success, event.OperationStatus, event.Message)
		assert.Equal(t, associationID, aws.ToString(event.ResourceModel.(*types.Association).AssociationId))
	})

	t.Run("Timeout out of range", func(t *testing.T) {
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: mocks.NewMockSSMClient(ctrl)}, providertest.Config())

		event := h.Create(providertest.NewRequest("", `{"Name": "AWS-RunPatchBaseline", "WaitForSuccessTimeoutSeconds": "5"}`, nil))
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, event.HandlerErrorCode)
	})
}
