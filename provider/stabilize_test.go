// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStabilizerBegin(t *testing.T) {
	s := Stabilizer{DelaySeconds: 15, Retries: 40, Logger: zap.NewNop()}

	event := s.BeginStage("ref", "Delete", "model")
	assert.Equal(t, handler.InProgress, event.OperationStatus)
	assert.Equal(t, int64(15), event.CallbackDelaySeconds)
	assert.Equal(t, "model", event.ResourceModel)
	assert.Equal(t, 40, event.CallbackContext["RetriesRemaining"])
	assert.Equal(t, "Delete", event.CallbackContext["Stage"])

	event = s.WithRetries(3).Begin("ref", nil)
	assert.Equal(t, 3, event.CallbackContext["RetriesRemaining"])
	assert.Equal(t, 40, s.Retries)
}

func TestStabilizerStep(t *testing.T) {
	done := func(context.Context) (handler.ProgressEvent, error) {
		return Success("done", "Complete"), nil
	}

	tests := []struct {
		name      string
		retries   int
		result    PollResult
		pollErr   error
		status    handler.Status
		code      string
		remaining int
		wantErr   bool
		polled    bool
	}{
		{
			name:      "Pending",
			retries:   3,
			result:    Pending(),
			status:    handler.InProgress,
			remaining: 2,
			polled:    true,
		},
		{
			name:    "Stable",
			retries: 1,
			result:  Stable(),
			status:  handler.Success,
			polled:  true,
		},
		{
			name:    "Unstable",
			retries: 3,
			result:  Unstable("run failed"),
			status:  handler.Failed,
			code:    cloudformation.HandlerErrorCodeGeneralServiceException,
			polled:  true,
		},
		{
			name:    "Unstable with code",
			retries: 3,
			result:  PollResult{Phase: PhaseFailed, Reason: "gone", Code: cloudformation.HandlerErrorCodeNotFound},
			status:  handler.Failed,
			code:    cloudformation.HandlerErrorCodeNotFound,
			polled:  true,
		},
		{
			name:    "Exhausted",
			retries: 0,
			status:  handler.Failed,
			code:    cloudformation.HandlerErrorCodeNotStabilized,
		},
		{
			name:    "Poll error",
			retries: 3,
			pollErr: fmt.Errorf("boom"),
			wantErr: true,
			polled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stabilizer{DelaySeconds: 15, Retries: 40, Logger: zap.NewNop()}
			polled := false
			poll := func(_ context.Context, ref string) (PollResult, error) {
				polled = true
				assert.Equal(t, "ref", ref)
				return tt.result, tt.pollErr
			}

			event, err := s.Step(context.Background(), CallbackContext{ResourceRef: "ref", RetriesRemaining: tt.retries}, "model", poll, done)
			assert.Equal(t, tt.polled, polled)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, event.OperationStatus)
			assert.Equal(t, tt.code, event.HandlerErrorCode)
			if tt.status == handler.InProgress {
				assert.Equal(t, tt.remaining, event.CallbackContext["RetriesRemaining"])
				assert.Equal(t, "ref", event.CallbackContext["ResourceRef"])
			}
			if tt.status == handler.Success {
				assert.Equal(t, "done", event.ResourceModel)
			}
		})
	}
}
