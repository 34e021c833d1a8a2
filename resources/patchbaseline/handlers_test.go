// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package patchbaseline

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baselineID = "pb-0c10e65780EXAMPLE"

func baseline() *types.PatchBaseline {
	return &types.PatchBaseline{
		Name:            aws.String("linux-baseline"),
		OperatingSystem: aws.String("AMAZON_LINUX_2"),
		ApprovalRules: &types.PatchRuleGroup{PatchRules: []types.PatchRule{{
			ApproveAfterDays: aws.Int(7),
			PatchFilterGroup: &types.PatchFilterGroup{PatchFilters: []types.PatchFilter{
				{Key: aws.String("CLASSIFICATION"), Values: []string{"Security"}},
			}},
		}}},
		PatchGroups: []string{"web", "db"},
	}
}

func expectRead(client *mocks.MockSSMClient, defaultID string, groups []string) {
	client.EXPECT().GetPatchBaseline(gomock.Any(), gomock.Any()).Return(&ssm.GetPatchBaselineOutput{
		BaselineId:      aws.String(baselineID),
		Name:            aws.String("linux-baseline"),
		OperatingSystem: ssmtypes.OperatingSystemAmazonLinux2,
		PatchGroups:     groups,
		ApprovalRules: &ssmtypes.PatchRuleGroup{PatchRules: []ssmtypes.PatchRule{{
			ApproveAfterDays: aws.Int32(7),
			PatchFilterGroup: &ssmtypes.PatchFilterGroup{PatchFilters: []ssmtypes.PatchFilter{
				{Key: ssmtypes.PatchFilterKeyClassification, Values: []string{"Security"}},
			}},
		}}},
	}, nil)
	client.EXPECT().GetDefaultPatchBaseline(gomock.Any(), gomock.Any()).Return(&ssm.GetDefaultPatchBaselineOutput{
		BaselineId: aws.String(defaultID),
	}, nil)
	client.EXPECT().ListTagsForResource(gomock.Any(), gomock.Any()).Return(&ssm.ListTagsForResourceOutput{}, nil)
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSSMClient(ctrl)
	client.EXPECT().CreatePatchBaseline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.CreatePatchBaselineInput, _ ...func(*ssm.Options)) (*ssm.CreatePatchBaselineOutput, error) {
			assert.NotEmpty(t, aws.ToString(in.ClientToken))
			assert.Equal(t, ssmtypes.OperatingSystemAmazonLinux2, in.OperatingSystem)
			require.Len(t, in.ApprovalRules.PatchRules, 1)
			assert.Equal(t, int32(7), aws.ToInt32(in.ApprovalRules.PatchRules[0].ApproveAfterDays))
			assert.Nil(t, in.GlobalFilters)
			return &ssm.CreatePatchBaselineOutput{BaselineId: aws.String(baselineID)}, nil
		})
	var registered []string
	client.EXPECT().RegisterPatchBaselineForPatchGroup(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, in *ssm.RegisterPatchBaselineForPatchGroupInput, _ ...func(*ssm.Options)) (*ssm.RegisterPatchBaselineForPatchGroupOutput, error) {
			registered = append(registered, aws.ToString(in.PatchGroup))
			return &ssm.RegisterPatchBaselineForPatchGroupOutput{}, nil
		})
	client.EXPECT().RegisterDefaultPatchBaseline(gomock.Any(), gomock.Any()).Return(&ssm.RegisterDefaultPatchBaselineOutput{}, nil)
	expectRead(client, "arn:aws:ssm:us-east-1:123456789012:patchbaseline/"+baselineID, []string{"web", "db"})
	inv := providertest.NewInvocation(provider.ActionCreate, TypeName, client)
	model := baseline()
	model.DefaultBaseline = aws.Bool(true)

	event, err := Create(context.Background(), inv, &types.PatchBaseline{}, model)
	require.NoError(t, err)
	assert.Equal(t, handler.Success, event.OperationStatus)
	assert.Equal(t, []string{"web", "db"}, registered)
	assert.True(t, aws.ToBool(model.DefaultBaseline))
	assert.Equal(t, baselineID, aws.ToString(model.Id))
	assert.Equal(t, 7, aws.ToInt(model.ApprovalRules.PatchRules[0].ApproveAfterDays))
}

func TestUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSSMClient(ctrl)
	client.EXPECT().UpdatePatchBaseline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.UpdatePatchBaselineInput, _ ...func(*ssm.Options)) (*ssm.UpdatePatchBaselineOutput, error) {
			assert.True(t, aws.ToBool(in.Replace))
			return &ssm.UpdatePatchBaselineOutput{}, nil
		})
	client.EXPECT().DeregisterPatchBaselineForPatchGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.DeregisterPatchBaselineForPatchGroupInput, _ ...func(*ssm.Options)) (*ssm.DeregisterPatchBaselineForPatchGroupOutput, error) {
			assert.Equal(t, "db", aws.ToString(in.PatchGroup))
			return &ssm.DeregisterPatchBaselineForPatchGroupOutput{}, nil
		})
	client.EXPECT().RegisterPatchBaselineForPatchGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.RegisterPatchBaselineForPatchGroupInput, _ ...func(*ssm.Options)) (*ssm.RegisterPatchBaselineForPatchGroupOutput, error) {
			assert.Equal(t, "cache", aws.ToString(in.PatchGroup))
			return &ssm.RegisterPatchBaselineForPatchGroupOutput{}, nil
		})
	expectRead(client, "pb-other", []string{"web", "cache"})
	inv := providertest.NewInvocation(provider.ActionUpdate, TypeName, client)
	prev := baseline()
	prev.Id = aws.String(baselineID)
	model := baseline()
	model.PatchGroups = []string{"web", "cache"}

	event, err := Update(context.Background(), inv, prev, model)
	require.NoError(t, err)
	assert.Equal(t, handler.Success, event.OperationStatus)
	assert.False(t, aws.ToBool(model.DefaultBaseline))
	assert.Equal(t, []string{"web", "cache"}, model.PatchGroups)
}

func TestUpdateOperatingSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inv := providertest.NewInvocation(provider.ActionUpdate, TypeName, mocks.NewMockSSMClient(ctrl))
	prev := baseline()
	prev.Id = aws.String(baselineID)
	model := baseline()
	model.OperatingSystem = aws.String("UBUNTU")

	_, err := Update(context.Background(), inv, prev, model)
	code, _ := errorCodes.Classify(err)
	assert.Equal(t, cloudformation.HandlerErrorCodeNotUpdatable, code)
}

func TestUpdateUnsetDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: the baseline must be left untouched.
	inv := providertest.NewInvocation(provider.ActionUpdate, TypeName, mocks.NewMockSSMClient(ctrl))
	prev := baseline()
	prev.Id = aws.String(baselineID)
	prev.DefaultBaseline = aws.Bool(true)
	model := baseline()
	model.DefaultBaseline = aws.Bool(false)

	_, err := Update(context.Background(), inv, prev, model)
	code, message := errorCodes.Classify(err)
	assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, code)
	assert.Contains(t, message, "DefaultBaseline")
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deregisters groups first", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		gomock.InOrder(
			client.EXPECT().GetPatchBaseline(gomock.Any(), gomock.Any()).Return(&ssm.GetPatchBaselineOutput{
				BaselineId:  aws.String(baselineID),
				PatchGroups: []string{"web"},
			}, nil),
			client.EXPECT().DeregisterPatchBaselineForPatchGroup(gomock.Any(), gomock.Any()).Return(&ssm.DeregisterPatchBaselineForPatchGroupOutput{}, nil),
			client.EXPECT().DeletePatchBaseline(gomock.Any(), gomock.Any()).Return(&ssm.DeletePatchBaselineOutput{}, nil),
		)
		inv := providertest.NewInvocation(provider.ActionDelete, TypeName, client)

		event, err := Delete(context.Background(), inv, &types.PatchBaseline{}, &types.PatchBaseline{Id: aws.String(baselineID)})
		require.NoError(t, err)
		assert.Equal(t, handler.Success, event.OperationStatus)
	})

	t.Run("Baseline in use", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().GetPatchBaseline(gomock.Any(), gomock.Any()).Return(&ssm.GetPatchBaselineOutput{BaselineId: aws.String(baselineID)}, nil)
		client.EXPECT().DeletePatchBaseline(gomock.Any(), gomock.Any()).Return(nil, providertest.APIError("ResourceInUseException"))
		inv := providertest.NewInvocation(provider.ActionDelete, TypeName, client)

		_, err := Delete(context.Background(), inv, &types.PatchBaseline{}, &types.PatchBaseline{Id: aws.String(baselineID)})
		code, _ := errorCodes.Classify(err)
		assert.Equal(t, cloudformation.HandlerErrorCodeResourceConflict, code)
	})
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockSSMClient(ctrl)
	client.EXPECT().DescribePatchBaselines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *ssm.DescribePatchBaselinesInput, _ ...func(*ssm.Options)) (*ssm.DescribePatchBaselinesOutput, error) {
			assert.Equal(t, "OWNER", aws.ToString(in.Filters[0].Key))
			return &ssm.DescribePatchBaselinesOutput{BaselineIdentities: []ssmtypes.PatchBaselineIdentity{
				{BaselineId: aws.String(baselineID), DefaultBaseline: true},
			}}, nil
		})
	inv := providertest.NewInvocation(provider.ActionList, TypeName, client)

	event, err := List(context.Background(), inv, &types.PatchBaseline{}, &types.PatchBaseline{})
	require.NoError(t, err)
	require.Len(t, event.ResourceModels, 1)
	assert.True(t, aws.ToBool(event.ResourceModels[0].(types.PatchBaseline).DefaultBaseline))
}

func TestIsSameBaseline(t *testing.T) {
	assert.True(t, isSameBaseline("arn:aws:ssm:us-east-1:123456789012:patchbaseline/pb-1", "pb-1"))
	assert.True(t, isSameBaseline("pb-1", "pb-1"))
	assert.False(t, isSameBaseline("pb-1", "pb-2"))
	assert.False(t, isSameBaseline("", ""))
}
