// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package document

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

func TestResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	create := map[string]struct {
		body    string
		content string
	}{
		"Object content": {
			body:    `{"Name": "my-doc", "DocumentType": "Command", "Content": {"schemaVersion": "2.2", "mainSteps": [{"action": "aws:runShellScript", "name": "run", "inputs": {"runCommand": ["echo hi"], "timeoutSeconds": "60"}}]}}`,
			content: `{"schemaVersion": "2.2", "mainSteps": [{"action": "aws:runShellScript", "name": "run", "inputs": {"runCommand": ["echo hi"], "timeoutSeconds": "60"}}]}`,
		},
		"String content": {
			body:    `{"Name": "my-doc", "DocumentType": "Command", "Content": "{\"schemaVersion\": \"2.2\"}"}`,
			content: `{"schemaVersion": "2.2"}`,
		},
	}
	for name, tc := range create {
		t.Run("Create with "+name, func(t *testing.T) {
			client := mocks.NewMockSSMClient(ctrl)
			client.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, in *ssm.CreateDocumentInput, _ ...func(*ssm.Options)) (*ssm.CreateDocumentOutput, error) {
					assert.Equal(t, "my-doc", aws.ToString(in.Name))
					assert.JSONEq(t, tc.content, aws.ToString(in.Content))
					return &ssm.CreateDocumentOutput{}, nil
				})
			h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

			event := h.Create(providertest.NewRequest("", tc.body, nil))
			assert.Equal(t, handler.InProgress, event.OperationStatus, event.Message)
			assert.Equal(t, "my-doc", event.CallbackContext["ResourceRef"])
		})
	}

	t.Run("Read", func(t *testing.T) {
		client := mocks.NewMockSSMClient(ctrl)
		expectRead(client)
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: client}, providertest.Config())

		event := h.Read(providertest.NewRequest("", `{"Name": "`+documentName+`"}`, nil))
		require.Equal(t, handler.Success, event.OperationStatus, event.Message)
		model := event.ResourceModel.(*types.Document)
		assert.Equal(t, map[string]interface{}{"schemaVersion": "2.2", "description": "run"}, model.Content)
	})

	t.Run("Replace update of content", func(t *testing.T) {
		h := provider.NewHandler(Resource(), providertest.Clients{SSM: mocks.NewMockSSMClient(ctrl)}, providertest.Config())

		event := h.Update(providertest.NewRequest(
			`{"Name": "my-doc", "Content": {"a": "1"}}`,
			`{"Name": "my-doc", "Content": {"a": "2"}, "Tags": [{"Key": "team", "Value": "ops"}]}`,
			nil))
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeNotUpdatable, event.HandlerErrorCode)
	})
}
