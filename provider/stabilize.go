// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"context"
	"fmt"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"go.uber.org/zap"
)

// Phase is the state of an asynchronous operation.
type Phase string

const (
	PhaseNotStarted Phase = "NotStarted"
	PhaseInProgress Phase = "InProgress"
	PhaseSucceeded  Phase = "Succeeded"
	PhaseFailed     Phase = "Failed"
)

// PollResult is what a Poller observed about the resource.
type PollResult struct {
	Phase  Phase
	Reason string
	// Code overrides the handler error code reported for PhaseFailed.
	Code string
}

func Pending() PollResult {
	return PollResult{Phase: PhaseInProgress}
}

func Stable() PollResult {
	return PollResult{Phase: PhaseSucceeded}
}

func Unstable(reason string) PollResult {
	return PollResult{Phase: PhaseFailed, Reason: reason}
}

// Poller reads the current status of the resource identified by ref.
type Poller func(ctx context.Context, ref string) (PollResult, error)

// Completion builds the final event once the resource is stable, usually by
// reading it back.
type Completion func(ctx context.Context) (handler.ProgressEvent, error)

// Stabilizer drives the poll loop of asynchronous operations. Every
// invocation performs at most one poll; the framework re-invokes the handler
// after DelaySeconds while the resource is settling.
type Stabilizer struct {
	DelaySeconds int64
	Retries      int
	Logger       *zap.Logger
}

// WithRetries returns a copy of s with a different retry budget.
func (s Stabilizer) WithRetries(retries int) Stabilizer {
	s.Retries = retries
	return s
}

// Begin is called after the mutating call succeeded. It persists the
// resource reference and the full retry budget.
func (s Stabilizer) Begin(ref string, model interface{}) handler.ProgressEvent {
	return s.BeginStage(ref, "", model)
}

// BeginStage is Begin for multi-step operations.
func (s Stabilizer) BeginStage(ref, stage string, model interface{}) handler.ProgressEvent {
	s.Logger.Sugar().Infow("Stabilization Started", "ResourceRef", ref, "Stage", stage, "Retries", s.Retries)
	return InProgress(model, CallbackContext{ResourceRef: ref, RetriesRemaining: s.Retries, Stage: stage}, s.DelaySeconds)
}

// Step advances the loop by one poll. An exhausted budget fails with
// NotStabilized before polling. Poll errors are returned unchanged.
func (s Stabilizer) Step(ctx context.Context, cb CallbackContext, model interface{}, poll Poller, done Completion) (handler.ProgressEvent, error) {
	if cb.RetriesRemaining <= 0 {
		s.Logger.Sugar().Warnw("Stabilization Exhausted", "ResourceRef", cb.ResourceRef, "Stage", cb.Stage)
		return Failed(cloudformation.HandlerErrorCodeNotStabilized,
			fmt.Sprintf("%s did not stabilize within the allotted retries", cb.ResourceRef)), nil
	}
	cb.RetriesRemaining--
	result, err := poll(ctx, cb.ResourceRef)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	s.Logger.Sugar().Infow("Stabilization Polled", "ResourceRef", cb.ResourceRef, "Stage", cb.Stage, "Phase", result.Phase, "RetriesRemaining", cb.RetriesRemaining)
	switch result.Phase {
	case PhaseSucceeded:
		return done(ctx)
	case PhaseFailed:
		code := result.Code
		if code == "" {
			code = cloudformation.HandlerErrorCodeGeneralServiceException
		}
		return Failed(code, result.Reason), nil
	default:
		return InProgress(model, cb, s.DelaySeconds), nil
	}
}
