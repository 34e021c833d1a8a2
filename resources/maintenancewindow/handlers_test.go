// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package maintenancewindow

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
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const windowID = "mw-0c50858d01EXAMPLE"

func window() *types.MaintenanceWindow {
	return &types.MaintenanceWindow{
		Name:                     aws.String("patching"),
		Schedule:                 aws.String("cron(0 2 ? * SUN *)"),
		Duration:                 aws.Int(4),
		Cutoff:                   aws.Int(1),
		AllowUnassociatedTargets: aws.Bool(false),
		Tags:                     []types.Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
	}
}

func expectRead(client *mocks.MockSSMClient) {
	client.EXPECT().GetMaintenanceWindow(gomock.Any(), gomock.Any()).Return(&ssm.GetMaintenanceWindowOutput{
		WindowId: aws.String(windowID),
		Name:     aws.String("patching"),
		Schedule: aws.String("cron(0 2 ? * SUN *)"),
		Duration: aws.Int32(4),
		Cutoff:   1,
	}, nil)
	client.EXPECT().ListTagsForResource(gomock.Any(), gomock.Any()).Return(&ssm.ListTagsForResourceOutput{
		TagList: []ssmtypes.Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
	}, nil)
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Creates and reads back", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().CreateMaintenanceWindow(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *ssm.CreateMaintenanceWindowInput, _ ...func(*ssm.Options)) (*ssm.CreateMaintenanceWindowOutput, error) {
				_, err := uuid.Parse(aws.ToString(in.ClientToken))
				assert.NoError(t, err)
				assert.Equal(t, int32(4), aws.ToInt32(in.Duration))
				assert.Equal(t, int32(1), in.Cutoff)
				assert.Len(t, in.Tags, 1)
				return &ssm.CreateMaintenanceWindowOutput{WindowId: aws.String(windowID)}, nil
			})
		expectRead(client)
		inv := providertest.NewInvocation(provider.ActionCreate, TypeName, client)
		model := window()

		event, err := Create(context.Background(), inv, &types.MaintenanceWindow{}, model)
		require.NoError(t, err)
		assert.Equal(t, handler.Success, event.OperationStatus)
		assert.Equal(t, windowID, aws.ToString(model.WindowId))
		assert.Equal(t, 4, aws.ToInt(model.Duration))
	})

	t.Run("Limit exceeded", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().CreateMaintenanceWindow(gomock.Any(), gomock.Any()).Return(nil, providertest.APIError("ResourceLimitExceededException"))
		inv := providertest.NewInvocation(provider.ActionCreate, TypeName, client)

		_, err := Create(context.Background(), inv, &types.MaintenanceWindow{}, window())
		code, _ := errorCodes.Classify(err)
		assert.Equal(t, cloudformation.HandlerErrorCodeServiceLimitExceeded, code)
	})

	t.Run("Read-only id", func(t *testing.T) {
		inv := providertest.NewInvocation(provider.ActionCreate, TypeName, mocks.NewMockSSMClient(ctrl))
		model := window()
		model.WindowId = aws.String(windowID)

		_, err := Create(context.Background(), inv, &types.MaintenanceWindow{}, model)
		code, _ := errorCodes.Classify(err)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, code)
	})
}

func TestUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSSMClient(ctrl)
	client.EXPECT().UpdateMaintenanceWindow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.UpdateMaintenanceWindowInput, _ ...func(*ssm.Options)) (*ssm.UpdateMaintenanceWindowOutput, error) {
			assert.True(t, aws.ToBool(in.Replace))
			assert.Equal(t, windowID, aws.ToString(in.WindowId))
			return &ssm.UpdateMaintenanceWindowOutput{}, nil
		})
	client.EXPECT().AddTagsToResource(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.AddTagsToResourceInput, _ ...func(*ssm.Options)) (*ssm.AddTagsToResourceOutput, error) {
			assert.Equal(t, ssmtypes.ResourceTypeForTaggingMaintenanceWindow, in.ResourceType)
			return &ssm.AddTagsToResourceOutput{}, nil
		})
	expectRead(client)
	inv := providertest.NewInvocation(provider.ActionUpdate, TypeName, client)
	prev := window()
	prev.WindowId = aws.String(windowID)
	prev.Tags = nil

	event, err := Update(context.Background(), inv, prev, window())
	require.NoError(t, err)
	assert.Equal(t, handler.Success, event.OperationStatus)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deletes existing window", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().GetMaintenanceWindow(gomock.Any(), gomock.Any()).Return(&ssm.GetMaintenanceWindowOutput{WindowId: aws.String(windowID)}, nil)
		client.EXPECT().DeleteMaintenanceWindow(gomock.Any(), gomock.Any()).Return(&ssm.DeleteMaintenanceWindowOutput{WindowId: aws.String(windowID)}, nil)
		inv := providertest.NewInvocation(provider.ActionDelete, TypeName, client)

		event, err := Delete(context.Background(), inv, &types.MaintenanceWindow{}, &types.MaintenanceWindow{WindowId: aws.String(windowID)})
		require.NoError(t, err)
		assert.Equal(t, handler.Success, event.OperationStatus)
	})

	t.Run("Unknown window is not found", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().GetMaintenanceWindow(gomock.Any(), gomock.Any()).Return(nil, providertest.APIError("DoesNotExistException"))
		inv := providertest.NewInvocation(provider.ActionDelete, TypeName, client)

		_, err := Delete(context.Background(), inv, &types.MaintenanceWindow{}, &types.MaintenanceWindow{WindowId: aws.String(windowID)})
		code, _ := errorCodes.Classify(err)
		assert.Equal(t, cloudformation.HandlerErrorCodeNotFound, code)
	})
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSSMClient(ctrl)
	client.EXPECT().DescribeMaintenanceWindows(gomock.Any(), gomock.Any()).Return(&ssm.DescribeMaintenanceWindowsOutput{
		WindowIdentities: []ssmtypes.MaintenanceWindowIdentity{{WindowId: aws.String(windowID), Cutoff: 1}},
	}, nil)
	inv := providertest.NewInvocation(provider.ActionList, TypeName, client)

	event, err := List(context.Background(), inv, &types.MaintenanceWindow{}, &types.MaintenanceWindow{})
	require.NoError(t, err)
	require.Len(t, event.ResourceModels, 1)
	assert.Equal(t, windowID, aws.ToString(event.ResourceModels[0].(types.MaintenanceWindow).WindowId))
}
