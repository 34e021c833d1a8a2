// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package resourcedatasync

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
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Create source sync from stringified properties", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().CreateResourceDataSync(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *ssm.CreateResourceDataSyncInput, _ ...func(*ssm.Options)) (*ssm.CreateResourceDataSyncOutput, error) {
				assert.Equal(t, types.SyncTypeFromSource, aws.ToString(in.SyncType))
				require.NotNil(t, in.SyncSource)
				assert.True(t, in.SyncSource.IncludeFutureRegions)
				assert.Equal(t, []string{"us-east-1", "eu-west-1"}, in.SyncSource.SourceRegions)
				assert.Nil(t, in.S3Destination)
				return &ssm.CreateResourceDataSyncOutput{}, nil
			})
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Create(providertest.NewRequest("", `{
			"SyncName": "`+syncName+`",
			"SyncType": "SyncFromSource",
			"SyncSource": {"SourceType": "SingleAccountMultiRegions", "SourceRegions": ["us-east-1", "eu-west-1"], "IncludeFutureRegions": "true"}
		}`, nil))
		require.Equal(t, handler.InProgress, event.OperationStatus, event.Message)
		assert.Equal(t, syncName, event.CallbackContext["ResourceRef"])
	})

	t.Run("Read by primary identifier", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().ListResourceDataSync(gomock.Any(), gomock.Any()).Return(listed(), nil)
		client.EXPECT().ListResourceDataSync(gomock.Any(), gomock.Any()).Return(listed(ssmtypes.ResourceDataSyncItem{
			SyncName: aws.String(syncName),
			SyncType: aws.String(types.SyncTypeFromSource),
			SyncSource: &ssmtypes.ResourceDataSyncSourceWithState{
				SourceType:           aws.String("SingleAccountMultiRegions"),
				SourceRegions:        []string{"us-east-1"},
				IncludeFutureRegions: true,
			},
		}), nil)
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Read(providertest.NewRequest("", `{"SyncName": "`+syncName+`"}`, nil))
		require.Equal(t, handler.Success, event.OperationStatus, event.Message)
		model := event.ResourceModel.(*types.ResourceDataSync)
		assert.Equal(t, types.SyncTypeFromSource, aws.ToString(model.SyncType))
		assert.True(t, aws.ToBool(model.SyncSource.IncludeFutureRegions))
	})
}
