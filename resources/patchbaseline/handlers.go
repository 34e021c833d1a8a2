// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package patchbaseline

import (
	"context"
	"strings"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.PatchBaseline) (handler.ProgressEvent, error) {
	if model.Id != nil {
		return handler.ProgressEvent{}, provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "Id is read-only")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "CreatePatchBaseline", "BaselineName", aws.ToString(model.Name))
	out, err := inv.SSM.CreatePatchBaseline(ctx, toCreateInput(model, uuid.NewString()))
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	model.Id = out.BaselineId

	if err := registerPatchGroups(ctx, inv, model.Id, model.PatchGroups); err != nil {
		return handler.ProgressEvent{}, err
	}
	if aws.ToBool(model.DefaultBaseline) {
		if err := registerDefault(ctx, inv, model.Id); err != nil {
			return handler.ProgressEvent{}, err
		}
	}
	return read(ctx, inv, model, "Create Complete")
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.PatchBaseline) (handler.ProgressEvent, error) {
	if model.Id == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	return read(ctx, inv, model, "")
}

func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.PatchBaseline) (handler.ProgressEvent, error) {
	if model.Id == nil {
		model.Id = prev.Id
	}
	if model.Id == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	if prev.OperatingSystem != nil && aws.ToString(prev.OperatingSystem) != aws.ToString(model.OperatingSystem) {
		return handler.ProgressEvent{}, provider.NotUpdatable("OperatingSystem")
	}
	// SSM has no call that unsets a default baseline; only registering another
	// baseline as the default for the operating system replaces it.
	if aws.ToBool(prev.DefaultBaseline) && !aws.ToBool(model.DefaultBaseline) {
		return handler.ProgressEvent{}, provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest,
			"DefaultBaseline cannot be changed from true to false; register another baseline as the default for %s instead",
			aws.ToString(model.OperatingSystem))
	}

	inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdatePatchBaseline", "BaselineId", aws.ToString(model.Id))
	if _, err := inv.SSM.UpdatePatchBaseline(ctx, toUpdateInput(model)); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}

	removed, added := lo.Difference(lo.Uniq(prev.PatchGroups), lo.Uniq(model.PatchGroups))
	if err := deregisterPatchGroups(ctx, inv, model.Id, removed); err != nil {
		return handler.ProgressEvent{}, err
	}
	if err := registerPatchGroups(ctx, inv, model.Id, added); err != nil {
		return handler.ProgressEvent{}, err
	}
	if aws.ToBool(model.DefaultBaseline) && !aws.ToBool(prev.DefaultBaseline) {
		if err := registerDefault(ctx, inv, model.Id); err != nil {
			return handler.ProgressEvent{}, err
		}
	}

	err := inv.Tagger.Sync(ctx, ssmtypes.ResourceTypeForTaggingPatchBaseline, aws.ToString(model.Id),
		types.TagsToMap(prev.Tags), types.TagsToMap(model.Tags))
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	return read(ctx, inv, model, "Update Complete")
}

func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.PatchBaseline) (handler.ProgressEvent, error) {
	if model.Id == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	// A baseline cannot be deleted while patch groups still point at it.
	b, err := get(ctx, inv, model.Id)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	if err := deregisterPatchGroups(ctx, inv, model.Id, b.PatchGroups); err != nil {
		return handler.ProgressEvent{}, err
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeletePatchBaseline", "BaselineId", aws.ToString(model.Id))
	if _, err := inv.SSM.DeletePatchBaseline(ctx, &ssm.DeletePatchBaselineInput{BaselineId: model.Id}); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return provider.Deleted(), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, _ *types.PatchBaseline) (handler.ProgressEvent, error) {
	out, err := inv.SSM.DescribePatchBaselines(ctx, &ssm.DescribePatchBaselinesInput{
		Filters: []ssmtypes.PatchOrchestratorFilter{
			{Key: aws.String("OWNER"), Values: []string{"Self"}},
		},
		NextToken: inv.NextToken(),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.BaselineIdentities))
	for _, b := range out.BaselineIdentities {
		models = append(models, types.PatchBaseline{
			Id:              b.BaselineId,
			Name:            b.BaselineName,
			Description:     b.BaselineDescription,
			OperatingSystem: provider.StringOrNil(string(b.OperatingSystem)),
			DefaultBaseline: aws.Bool(b.DefaultBaseline),
		})
	}
	return provider.Listed(models, out.NextToken), nil
}

func registerPatchGroups(ctx context.Context, inv *provider.Invocation, id *string, groups []string) error {
	for _, group := range groups {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "RegisterPatchBaselineForPatchGroup", "BaselineId", aws.ToString(id), "PatchGroup", group)
		_, err := inv.SSM.RegisterPatchBaselineForPatchGroup(ctx, &ssm.RegisterPatchBaselineForPatchGroupInput{
			BaselineId: id,
			PatchGroup: aws.String(group),
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func deregisterPatchGroups(ctx context.Context, inv *provider.Invocation, id *string, groups []string) error {
	for _, group := range groups {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "DeregisterPatchBaselineForPatchGroup", "BaselineId", aws.ToString(id), "PatchGroup", group)
		_, err := inv.SSM.DeregisterPatchBaselineForPatchGroup(ctx, &ssm.DeregisterPatchBaselineForPatchGroupInput{
			BaselineId: id,
			PatchGroup: aws.String(group),
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func registerDefault(ctx context.Context, inv *provider.Invocation, id *string) error {
	inv.Logger.Sugar().Infow("Start Operation", "Name", "RegisterDefaultPatchBaseline", "BaselineId", aws.ToString(id))
	if _, err := inv.SSM.RegisterDefaultPatchBaseline(ctx, &ssm.RegisterDefaultPatchBaselineInput{BaselineId: id}); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func get(ctx context.Context, inv *provider.Invocation, id *string) (*ssm.GetPatchBaselineOutput, error) {
	inv.Logger.Sugar().Infow("Start Operation", "Name", "GetPatchBaseline", "BaselineId", aws.ToString(id))
	out, err := inv.SSM.GetPatchBaseline(ctx, &ssm.GetPatchBaselineInput{BaselineId: id})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

func read(ctx context.Context, inv *provider.Invocation, model *types.PatchBaseline, message string) (handler.ProgressEvent, error) {
	b, err := get(ctx, inv, model.Id)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	fromBaseline(b, model)

	inv.Logger.Sugar().Infow("Start Operation", "Name", "GetDefaultPatchBaseline", "OperatingSystem", string(b.OperatingSystem))
	def, err := inv.SSM.GetDefaultPatchBaseline(ctx, &ssm.GetDefaultPatchBaselineInput{OperatingSystem: b.OperatingSystem})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	model.DefaultBaseline = aws.Bool(isSameBaseline(aws.ToString(def.BaselineId), aws.ToString(model.Id)))

	tags, err := inv.Tagger.List(ctx, ssmtypes.ResourceTypeForTaggingPatchBaseline, aws.ToString(model.Id))
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Tags = types.TagsFromMap(tags)
	return provider.Success(model, message), nil
}

// isSameBaseline compares baseline references. The default baseline may be
// reported as an ARN while handlers work with plain ids.
func isSameBaseline(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || lastSegment(a) == lastSegment(b)
}

func lastSegment(s string) string {
	return s[strings.LastIndex(s, "/")+1:]
}
