// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package opsmetadata

import (
	"context"
	"sort"
	"strings"

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

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.OpsMetadata) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		model.OpsMetadataArn = aws.String(inv.Callback.ResourceRef)
		return inv.Stabilizer.Step(ctx, *inv.Callback, model, existsPoller(inv), func(ctx context.Context) (handler.ProgressEvent, error) {
			return read(ctx, inv, model, "Create Complete")
		})
	}
	if model.OpsMetadataArn != nil {
		return handler.ProgressEvent{}, provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "OpsMetadataArn is read-only")
	}

	inv.Logger.Sugar().Infow("Start Operation", "Name", "CreateOpsMetadata", "ResourceId", aws.ToString(model.ResourceId))
	out, err := inv.SSM.CreateOpsMetadata(ctx, &ssm.CreateOpsMetadataInput{
		ResourceId: model.ResourceId,
		Metadata:   toMetadata(model.Metadata),
		Tags:       provider.ToSSMTags(types.TagsToMap(model.Tags)),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	model.OpsMetadataArn = out.OpsMetadataArn
	return inv.Stabilizer.Begin(aws.ToString(model.OpsMetadataArn), model), nil
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.OpsMetadata) (handler.ProgressEvent, error) {
	if model.OpsMetadataArn == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	return read(ctx, inv, model, "")
}

func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.OpsMetadata) (handler.ProgressEvent, error) {
	if model.OpsMetadataArn == nil {
		model.OpsMetadataArn = prev.OpsMetadataArn
	}
	if model.OpsMetadataArn == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	if prev.ResourceId != nil && aws.ToString(prev.ResourceId) != aws.ToString(model.ResourceId) {
		return handler.ProgressEvent{}, provider.NotUpdatable("ResourceId")
	}

	toUpdate, toDelete := diffMetadata(prev.Metadata, model.Metadata)
	if len(toUpdate) > 0 || len(toDelete) > 0 {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdateOpsMetadata", "OpsMetadataArn", aws.ToString(model.OpsMetadataArn),
			"Updated", len(toUpdate), "Deleted", toDelete)
		_, err := inv.SSM.UpdateOpsMetadata(ctx, &ssm.UpdateOpsMetadataInput{
			OpsMetadataArn:   model.OpsMetadataArn,
			MetadataToUpdate: toMetadata(toUpdate),
			KeysToDelete:     toDelete,
		})
		if err != nil {
			return handler.ProgressEvent{}, errors.WithStack(err)
		}
	}

	err := inv.Tagger.Sync(ctx, ssmtypes.ResourceTypeForTaggingOpsmetadata, tagResourceID(aws.ToString(model.OpsMetadataArn)),
		types.TagsToMap(prev.Tags), types.TagsToMap(model.Tags))
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	return read(ctx, inv, model, "Update Complete")
}

func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.OpsMetadata) (handler.ProgressEvent, error) {
	if model.OpsMetadataArn == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeleteOpsMetadata", "OpsMetadataArn", aws.ToString(model.OpsMetadataArn))
	if _, err := inv.SSM.DeleteOpsMetadata(ctx, &ssm.DeleteOpsMetadataInput{OpsMetadataArn: model.OpsMetadataArn}); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return provider.Deleted(), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, _ *types.OpsMetadata) (handler.ProgressEvent, error) {
	out, err := inv.SSM.ListOpsMetadata(ctx, &ssm.ListOpsMetadataInput{NextToken: inv.NextToken()})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.OpsMetadataList))
	for _, o := range out.OpsMetadataList {
		models = append(models, types.OpsMetadata{OpsMetadataArn: o.OpsMetadataArn, ResourceId: o.ResourceId})
	}
	return provider.Listed(models, out.NextToken), nil
}

// diffMetadata returns the entries to put and the keys to delete to go from
// prev to cur.
func diffMetadata(prev, cur map[string]types.MetadataValue) (map[string]types.MetadataValue, []string) {
	toUpdate := lo.PickBy(cur, func(k string, v types.MetadataValue) bool {
		pv, ok := prev[k]
		return !ok || aws.ToString(pv.Value) != aws.ToString(v.Value)
	})
	toDelete := lo.Filter(lo.Keys(prev), func(k string, _ int) bool {
		_, ok := cur[k]
		return !ok
	})
	sort.Strings(toDelete)
	return toUpdate, toDelete
}

func toMetadata(m map[string]types.MetadataValue) map[string]ssmtypes.MetadataValue {
	if len(m) == 0 {
		return nil
	}
	return lo.MapValues(m, func(v types.MetadataValue, _ string) ssmtypes.MetadataValue {
		return ssmtypes.MetadataValue{Value: v.Value}
	})
}

func fromMetadata(m map[string]ssmtypes.MetadataValue) map[string]types.MetadataValue {
	if len(m) == 0 {
		return nil
	}
	return lo.MapValues(m, func(v ssmtypes.MetadataValue, _ string) types.MetadataValue {
		return types.MetadataValue{Value: v.Value}
	})
}

// tagResourceID derives the tagging id of an OpsMetadata object: the part of
// its ARN after "opsmetadata".
func tagResourceID(arn string) string {
	const marker = ":opsmetadata"
	if i := strings.Index(arn, marker); i >= 0 {
		return arn[i+len(marker):]
	}
	return arn
}

func existsPoller(inv *provider.Invocation) provider.Poller {
	return func(ctx context.Context, ref string) (provider.PollResult, error) {
		_, err := inv.SSM.GetOpsMetadata(ctx, &ssm.GetOpsMetadataInput{OpsMetadataArn: aws.String(ref)})
		if provider.Is(err, notFoundCode) {
			return provider.Pending(), nil
		}
		if err != nil {
			return provider.PollResult{}, errors.WithStack(err)
		}
		return provider.Stable(), nil
	}
}

func read(ctx context.Context, inv *provider.Invocation, model *types.OpsMetadata, message string) (handler.ProgressEvent, error) {
	arn := aws.ToString(model.OpsMetadataArn)
	metadata := map[string]ssmtypes.MetadataValue{}
	var token *string
	for {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "GetOpsMetadata", "OpsMetadataArn", arn)
		out, err := inv.SSM.GetOpsMetadata(ctx, &ssm.GetOpsMetadataInput{OpsMetadataArn: model.OpsMetadataArn, NextToken: token})
		if err != nil {
			return handler.ProgressEvent{}, errors.WithStack(err)
		}
		model.ResourceId = out.ResourceId
		for k, v := range out.Metadata {
			metadata[k] = v
		}
		if out.NextToken == nil {
			break
		}
		token = out.NextToken
	}
	model.Metadata = fromMetadata(metadata)

	tags, err := inv.Tagger.List(ctx, ssmtypes.ResourceTypeForTaggingOpsmetadata, tagResourceID(arn))
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Tags = types.TagsFromMap(tags)
	return provider.Success(model, message), nil
}
