// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package patchbaseline

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

const stringifiedBaseline = `{
	"Name": "linux-baseline",
	"OperatingSystem": "AMAZON_LINUX_2",
	"ApprovedPatchesEnableNonSecurity": "false",
	"ApprovalRules": {"PatchRules": [{
		"ApproveAfterDays": "7",
		"EnableNonSecurity": "true",
		"PatchFilterGroup": {"PatchFilters": [{"Key": "CLASSIFICATION", "Values": ["Security"]}]}
	}]},
	"PatchGroups": ["web"]
}`

func TestResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Create from stringified properties", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		client.EXPECT().CreatePatchBaseline(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in *ssm.CreatePatchBaselineInput, _ ...func(*ssm.Options)) (*ssm.CreatePatchBaselineOutput, error) {
				require.Len(t, in.ApprovalRules.PatchRules, 1)
				rule := in.ApprovalRules.PatchRules[0]
				assert.Equal(t, int32(7), aws.ToInt32(rule.ApproveAfterDays))
				assert.True(t, aws.ToBool(rule.EnableNonSecurity))
				assert.False(t, aws.ToBool(in.ApprovedPatchesEnableNonSecurity))
				assert.NotNil(t, in.ApprovedPatchesEnableNonSecurity)
				return &ssm.CreatePatchBaselineOutput{BaselineId: aws.String(baselineID)}, nil
			})
		client.EXPECT().RegisterPatchBaselineForPatchGroup(gomock.Any(), gomock.Any()).Return(&ssm.RegisterPatchBaselineForPatchGroupOutput{}, nil)
		expectRead(client, "pb-other", []string{"web"})
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Create(providertest.NewRequest("", stringifiedBaseline, nil))
		require.Equal(t, handler.Success, event.OperationStatus, event.Message)
	})

	t.Run("Unsetting the default baseline", func(t *testing.T) {
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: mocks.NewMockSSMClient(ctrl)}, providertest.Config())

		event := h.Update(providertest.NewRequest(
			`{"Id": "`+baselineID+`", "Name": "linux-baseline", "OperatingSystem": "AMAZON_LINUX_2", "DefaultBaseline": "true"}`,
			`{"Id": "`+baselineID+`", "Name": "linux-baseline", "OperatingSystem": "AMAZON_LINUX_2", "DefaultBaseline": "false"}`,
			nil))
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, event.HandlerErrorCode)
	})
}
