// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package maintenancewindow

import (
	"context"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.MaintenanceWindow) (handler.ProgressEvent, error) {
	if model.WindowId != nil {
		return handler.ProgressEvent{}, provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "WindowId is read-only")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "CreateMaintenanceWindow", "WindowName", aws.ToString(model.Name))
	out, err := inv.SSM.CreateMaintenanceWindow(ctx, &ssm.CreateMaintenanceWindowInput{
		ClientToken:              aws.String(uuid.NewString()),
		Name:                     model.Name,
		Description:              model.Description,
		Schedule:                 model.Schedule,
		ScheduleTimezone:         model.ScheduleTimezone,
		ScheduleOffset:           provider.ToInt32(model.ScheduleOffset),
		Duration:                 provider.ToInt32(model.Duration),
		Cutoff:                   int32(aws.ToInt(model.Cutoff)),
		AllowUnassociatedTargets: aws.ToBool(model.AllowUnassociatedTargets),
		StartDate:                model.StartDate,
		EndDate:                  model.EndDate,
		Tags:                     provider.ToSSMTags(types.TagsToMap(model.Tags)),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	model.WindowId = out.WindowId
	return read(ctx, inv, model, "Create Complete")
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.MaintenanceWindow) (handler.ProgressEvent, error) {
	if model.WindowId == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	return read(ctx, inv, model, "")
}

func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.MaintenanceWindow) (handler.ProgressEvent, error) {
	if model.WindowId == nil {
		model.WindowId = prev.WindowId
	}
	if model.WindowId == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdateMaintenanceWindow", "WindowId", aws.ToString(model.WindowId))
	_, err := inv.SSM.UpdateMaintenanceWindow(ctx, &ssm.UpdateMaintenanceWindowInput{
		WindowId:                 model.WindowId,
		Replace:                  aws.Bool(true),
		Name:                     model.Name,
		Description:              model.Description,
		Schedule:                 model.Schedule,
		ScheduleTimezone:         model.ScheduleTimezone,
		ScheduleOffset:           provider.ToInt32(model.ScheduleOffset),
		Duration:                 provider.ToInt32(model.Duration),
		Cutoff:                   provider.ToInt32(model.Cutoff),
		AllowUnassociatedTargets: model.AllowUnassociatedTargets,
		StartDate:                model.StartDate,
		EndDate:                  model.EndDate,
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	err = inv.Tagger.Sync(ctx, ssmtypes.ResourceTypeForTaggingMaintenanceWindow, aws.ToString(model.WindowId),
		types.TagsToMap(prev.Tags), types.TagsToMap(model.Tags))
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	return read(ctx, inv, model, "Update Complete")
}

func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.MaintenanceWindow) (handler.ProgressEvent, error) {
	if model.WindowId == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	// DeleteMaintenanceWindow succeeds for unknown ids.
	if _, err := get(ctx, inv, model.WindowId); err != nil {
		return handler.ProgressEvent{}, err
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeleteMaintenanceWindow", "WindowId", aws.ToString(model.WindowId))
	if _, err := inv.SSM.DeleteMaintenanceWindow(ctx, &ssm.DeleteMaintenanceWindowInput{WindowId: model.WindowId}); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return provider.Deleted(), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, _ *types.MaintenanceWindow) (handler.ProgressEvent, error) {
	out, err := inv.SSM.DescribeMaintenanceWindows(ctx, &ssm.DescribeMaintenanceWindowsInput{NextToken: inv.NextToken()})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.WindowIdentities))
	for _, w := range out.WindowIdentities {
		models = append(models, types.MaintenanceWindow{
			WindowId:         w.WindowId,
			Name:             w.Name,
			Description:      w.Description,
			Schedule:         w.Schedule,
			ScheduleTimezone: w.ScheduleTimezone,
			ScheduleOffset:   provider.FromInt32(w.ScheduleOffset),
			Duration:         provider.FromInt32(w.Duration),
			Cutoff:           aws.Int(int(w.Cutoff)),
			StartDate:        w.StartDate,
			EndDate:          w.EndDate,
		})
	}
	return provider.Listed(models, out.NextToken), nil
}

func get(ctx context.Context, inv *provider.Invocation, id *string) (*ssm.GetMaintenanceWindowOutput, error) {
	inv.Logger.Sugar().Infow("Start Operation", "Name", "GetMaintenanceWindow", "WindowId", aws.ToString(id))
	out, err := inv.SSM.GetMaintenanceWindow(ctx, &ssm.GetMaintenanceWindowInput{WindowId: id})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

func read(ctx context.Context, inv *provider.Invocation, model *types.MaintenanceWindow, message string) (handler.ProgressEvent, error) {
	w, err := get(ctx, inv, model.WindowId)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Name = w.Name
	model.Description = w.Description
	model.Schedule = w.Schedule
	model.ScheduleTimezone = w.ScheduleTimezone
	model.ScheduleOffset = provider.FromInt32(w.ScheduleOffset)
	model.Duration = provider.FromInt32(w.Duration)
	model.Cutoff = aws.Int(int(w.Cutoff))
	model.AllowUnassociatedTargets = aws.Bool(w.AllowUnassociatedTargets)
	model.StartDate = w.StartDate
	model.EndDate = w.EndDate

	tags, err := inv.Tagger.List(ctx, ssmtypes.ResourceTypeForTaggingMaintenanceWindow, aws.ToString(model.WindowId))
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Tags = types.TagsFromMap(tags)
	return provider.Success(model, message), nil
}
