// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package association

import (
	"context"
	"math"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/pkg/errors"
)

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.Association) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		model.AssociationId = aws.String(inv.Callback.ResourceRef)
		return stabilize(ctx, inv, model)
	}
	if model.AssociationId != nil {
		return handler.ProgressEvent{}, provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "AssociationId is read-only")
	}

	inv.Logger.Sugar().Infow("Start Operation", "Name", "CreateAssociation", "DocumentName", aws.ToString(model.Name))
	out, err := inv.SSM.CreateAssociation(ctx, toCreateInput(model))
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	fromDescription(out.AssociationDescription, model)
	return settle(inv, model, "Create Complete"), nil
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.Association) (handler.ProgressEvent, error) {
	if model.AssociationId == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	if err := describe(ctx, inv, model); err != nil {
		return handler.ProgressEvent{}, err
	}
	return provider.Success(model, ""), nil
}

func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.Association) (handler.ProgressEvent, error) {
	if model.AssociationId == nil {
		model.AssociationId = prev.AssociationId
	}
	if inv.Callback != nil {
		model.AssociationId = aws.String(inv.Callback.ResourceRef)
		return stabilize(ctx, inv, model)
	}
	if model.AssociationId == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}

	inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdateAssociation", "AssociationId", aws.ToString(model.AssociationId))
	out, err := inv.SSM.UpdateAssociation(ctx, toUpdateInput(model))
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	fromDescription(out.AssociationDescription, model)
	return settle(inv, model, "Update Complete"), nil
}

func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.Association) (handler.ProgressEvent, error) {
	if model.AssociationId == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeleteAssociation", "AssociationId", aws.ToString(model.AssociationId))
	_, err := inv.SSM.DeleteAssociation(ctx, &ssm.DeleteAssociationInput{AssociationId: model.AssociationId})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return provider.Deleted(), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, _ *types.Association) (handler.ProgressEvent, error) {
	out, err := inv.SSM.ListAssociations(ctx, &ssm.ListAssociationsInput{NextToken: inv.NextToken()})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.Associations))
	for _, a := range out.Associations {
		models = append(models, fromSummary(a))
	}
	return provider.Listed(models, out.NextToken), nil
}

// settle returns right away unless the model asks to wait for the first
// successful run of the association.
func settle(inv *provider.Invocation, model *types.Association, message string) handler.ProgressEvent {
	if model.WaitForSuccessTimeoutSeconds == nil {
		return provider.Success(model, message)
	}
	return stabilizer(inv, model).Begin(aws.ToString(model.AssociationId), model)
}

// stabilizer sizes the retry budget so that polling lasts as long as the
// requested timeout.
func stabilizer(inv *provider.Invocation, model *types.Association) provider.Stabilizer {
	s := inv.Stabilizer
	if model.WaitForSuccessTimeoutSeconds == nil || s.DelaySeconds <= 0 {
		return s
	}
	retries := int(math.Ceil(float64(*model.WaitForSuccessTimeoutSeconds) / float64(s.DelaySeconds)))
	if retries < 1 {
		retries = 1
	}
	return s.WithRetries(retries)
}

func stabilize(ctx context.Context, inv *provider.Invocation, model *types.Association) (handler.ProgressEvent, error) {
	return stabilizer(inv, model).Step(ctx, *inv.Callback, model,
		func(ctx context.Context, ref string) (provider.PollResult, error) {
			out, err := inv.SSM.DescribeAssociation(ctx, &ssm.DescribeAssociationInput{AssociationId: aws.String(ref)})
			if err != nil {
				return provider.PollResult{}, errors.WithStack(err)
			}
			return pollStatus(out.AssociationDescription), nil
		},
		func(ctx context.Context) (handler.ProgressEvent, error) {
			if err := describe(ctx, inv, model); err != nil {
				return handler.ProgressEvent{}, err
			}
			return provider.Success(model, "Association Succeeded"), nil
		})
}

func pollStatus(d *ssmtypes.AssociationDescription) provider.PollResult {
	if d == nil || d.Overview == nil {
		return provider.Pending()
	}
	switch aws.ToString(d.Overview.Status) {
	case string(ssmtypes.AssociationStatusNameSuccess):
		return provider.Stable()
	case string(ssmtypes.AssociationStatusNameFailed):
		reason := aws.ToString(d.Overview.DetailedStatus)
		if reason == "" {
			reason = "association run failed"
		}
		return provider.Unstable(reason)
	default:
		return provider.Pending()
	}
}

func describe(ctx context.Context, inv *provider.Invocation, model *types.Association) error {
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DescribeAssociation", "AssociationId", aws.ToString(model.AssociationId))
	out, err := inv.SSM.DescribeAssociation(ctx, &ssm.DescribeAssociationInput{AssociationId: model.AssociationId})
	if err != nil {
		return errors.WithStack(err)
	}
	if out.AssociationDescription == nil {
		return provider.NotFound(TypeName, aws.ToString(model.AssociationId))
	}
	fromDescription(out.AssociationDescription, model)
	return nil
}
