// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package opsmetadata

import (
	"context"
	"testing"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/provider/mocks"
	"github.com/aws-samples/amazon-ssm-resource-providers/provider/providertest"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Create from framework request", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().CreateOpsMetadata(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *ssm.CreateOpsMetadataInput, _ ...func(*ssm.Options)) (*ssm.CreateOpsMetadataOutput, error) {
				assert.Equal(t, resourceID, aws.ToString(in.ResourceId))
				assert.Equal(t, "team-a", aws.ToString(in.Metadata["owner"].Value))
				require.Len(t, in.Tags, 1)
				return &ssm.CreateOpsMetadataOutput{OpsMetadataArn: aws.String(metadataArn)}, nil
			})
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Create(providertest.NewRequest("", `{
			"ResourceId": "`+resourceID+`",
			"Metadata": {"owner": {"Value": "team-a"}},
			"Tags": [{"Key": "env", "Value": "prod"}]
		}`, nil))
		require.Equal(t, handler.InProgress, event.OperationStatus, event.Message)
		assert.Equal(t, metadataArn, event.CallbackContext["ResourceRef"])
	})

	t.Run("Metadata value missing", func(t *testing.T) {
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: mocks.NewMockSSMClient(ctrl)}, providertest.Config())

		event := h.Create(providertest.NewRequest("", `{"ResourceId": "`+resourceID+`", "Metadata": {"owner": {}}}`, nil))
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, event.HandlerErrorCode)
	})
}
