// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package resourcedatasync

import (
	"context"
	"reflect"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.ResourceDataSync) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		model.SyncName = aws.String(inv.Callback.ResourceRef)
		return inv.Stabilizer.Step(ctx, *inv.Callback, model, createdPoller(inv, model.Type()), func(ctx context.Context) (handler.ProgressEvent, error) {
			return read(ctx, inv, model, "Create Complete")
		})
	}
	if model.SyncName == nil {
		return handler.ProgressEvent{}, provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "SyncName is required")
	}

	in := &ssm.CreateResourceDataSyncInput{
		SyncName:   model.SyncName,
		SyncType:   aws.String(model.Type()),
		SyncSource: toSource(model.SyncSource),
	}
	if d := model.Destination(); d != nil {
		keyArn, err := newKmsKeyResolver(inv.KMS, inv.Logger).Resolve(ctx, aws.ToString(d.KMSKeyArn))
		if err != nil {
			return handler.ProgressEvent{}, err
		}
		in.S3Destination = toDestination(d, keyArn)
	}

	inv.Logger.Sugar().Infow("Start Operation", "Name", "CreateResourceDataSync", "SyncName", aws.ToString(model.SyncName), "SyncType", model.Type())
	if _, err := inv.SSM.CreateResourceDataSync(ctx, in); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return inv.Stabilizer.Begin(aws.ToString(model.SyncName), model), nil
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.ResourceDataSync) (handler.ProgressEvent, error) {
	if model.SyncName == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	return read(ctx, inv, model, "")
}

// Update can only change the source of a SyncFromSource sync. Every other
// property requires replacement.
func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.ResourceDataSync) (handler.ProgressEvent, error) {
	if model.SyncName == nil {
		model.SyncName = prev.SyncName
	}
	if model.SyncName == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	if prev.SyncName != nil && aws.ToString(prev.SyncName) != aws.ToString(model.SyncName) {
		return handler.ProgressEvent{}, provider.NotUpdatable("SyncName")
	}
	if prev.Type() != model.Type() {
		return handler.ProgressEvent{}, provider.NotUpdatable("SyncType")
	}
	if !reflect.DeepEqual(prev.Destination(), model.Destination()) {
		return handler.ProgressEvent{}, provider.NotUpdatable("S3Destination")
	}

	if model.Type() == types.SyncTypeFromSource && !reflect.DeepEqual(prev.SyncSource, model.SyncSource) {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdateResourceDataSync", "SyncName", aws.ToString(model.SyncName))
		_, err := inv.SSM.UpdateResourceDataSync(ctx, &ssm.UpdateResourceDataSyncInput{
			SyncName:   model.SyncName,
			SyncType:   aws.String(model.Type()),
			SyncSource: toSource(model.SyncSource),
		})
		if err != nil {
			return handler.ProgressEvent{}, errors.WithStack(err)
		}
	}
	return read(ctx, inv, model, "Update Complete")
}

// Delete keeps the model in flight so that re-invocations still know which
// sync type to list.
func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.ResourceDataSync) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		return inv.Stabilizer.Step(ctx, *inv.Callback, model, deletedPoller(inv, model.Type()), func(context.Context) (handler.ProgressEvent, error) {
			return provider.Deleted(), nil
		})
	}
	if model.SyncName == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeleteResourceDataSync", "SyncName", aws.ToString(model.SyncName))
	_, err := inv.SSM.DeleteResourceDataSync(ctx, &ssm.DeleteResourceDataSyncInput{
		SyncName: model.SyncName,
		SyncType: aws.String(model.Type()),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return inv.Stabilizer.BeginStage(aws.ToString(model.SyncName), stageDelete, model), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, model *types.ResourceDataSync) (handler.ProgressEvent, error) {
	out, err := inv.SSM.ListResourceDataSync(ctx, &ssm.ListResourceDataSyncInput{
		SyncType:  aws.String(model.Type()),
		NextToken: inv.NextToken(),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.ResourceDataSyncItems))
	for _, item := range out.ResourceDataSyncItems {
		m := types.ResourceDataSync{}
		fromItem(item, &m)
		models = append(models, m)
	}
	return provider.Listed(models, out.NextToken), nil
}

func createdPoller(inv *provider.Invocation, syncType string) provider.Poller {
	return func(ctx context.Context, name string) (provider.PollResult, error) {
		item, err := find(ctx, inv, name, syncType)
		if err != nil {
			return provider.PollResult{}, err
		}
		switch {
		case item == nil:
			return provider.Pending(), nil
		case item.LastStatus == ssmtypes.LastResourceDataSyncStatusFailed:
			return provider.Unstable(aws.ToString(item.LastSyncStatusMessage)), nil
		default:
			return provider.Stable(), nil
		}
	}
}

func deletedPoller(inv *provider.Invocation, syncType string) provider.Poller {
	return func(ctx context.Context, name string) (provider.PollResult, error) {
		item, err := find(ctx, inv, name, syncType)
		if err != nil {
			return provider.PollResult{}, err
		}
		if item != nil {
			return provider.Pending(), nil
		}
		return provider.Stable(), nil
	}
}

// find pages through the syncs of syncType and returns the one named name,
// nil when there is none.
func find(ctx context.Context, inv *provider.Invocation, name, syncType string) (*ssmtypes.ResourceDataSyncItem, error) {
	var token *string
	for {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "ListResourceDataSync", "SyncType", syncType)
		out, err := inv.SSM.ListResourceDataSync(ctx, &ssm.ListResourceDataSyncInput{
			SyncType:  aws.String(syncType),
			NextToken: token,
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		for i := range out.ResourceDataSyncItems {
			if aws.ToString(out.ResourceDataSyncItems[i].SyncName) == name {
				return &out.ResourceDataSyncItems[i], nil
			}
		}
		if out.NextToken == nil {
			return nil, nil
		}
		token = out.NextToken
	}
}

func read(ctx context.Context, inv *provider.Invocation, model *types.ResourceDataSync, message string) (handler.ProgressEvent, error) {
	item, err := lookup(ctx, inv, model)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	if item == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, aws.ToString(model.SyncName))
	}
	fromItem(*item, model)
	return provider.Success(model, message), nil
}

// lookup finds the sync of the model's type. A model that does not declare
// its type, such as one carrying only its SyncName, may name a sync of any
// type, so every type is searched.
func lookup(ctx context.Context, inv *provider.Invocation, model *types.ResourceDataSync) (*ssmtypes.ResourceDataSyncItem, error) {
	syncTypes := []string{model.Type()}
	if model.SyncType == nil {
		syncTypes = lo.Uniq(append(syncTypes, types.SyncTypeToDestination, types.SyncTypeFromSource))
	}
	for _, syncType := range syncTypes {
		item, err := find(ctx, inv, aws.ToString(model.SyncName), syncType)
		if err != nil || item != nil {
			return item, err
		}
	}
	return nil, nil
}
