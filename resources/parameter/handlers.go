// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package parameter

import (
	"context"
	"encoding/json"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/pkg/errors"
)

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.Parameter) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		model.Name = aws.String(inv.Callback.ResourceRef)
		return inv.Stabilizer.Step(ctx, *inv.Callback, model, existsPoller(inv), func(ctx context.Context) (handler.ProgressEvent, error) {
			return read(ctx, inv, model, "Create Complete")
		})
	}

	if model.Name == nil {
		model.Name = aws.String(provider.GenerateName(inv.StackID(), inv.LogicalResourceID(), maxNameLength))
	}
	in := toPutInput(model)
	in.Overwrite = aws.Bool(false)
	in.Tags = provider.ToSSMTags(model.Tags)
	inv.Logger.Sugar().Infow("Start Operation", "Name", "PutParameter", "ParameterName", aws.ToString(model.Name))
	if _, err := inv.SSM.PutParameter(ctx, in); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}

	// AMI parameters are validated asynchronously and only become readable
	// once the image id has been checked.
	if aws.ToString(model.DataType) == types.ParameterDataTypeEC2Image {
		return inv.Stabilizer.Begin(aws.ToString(model.Name), model), nil
	}
	return read(ctx, inv, model, "Create Complete")
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.Parameter) (handler.ProgressEvent, error) {
	if model.Name == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	return read(ctx, inv, model, "")
}

func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.Parameter) (handler.ProgressEvent, error) {
	if model.Name == nil {
		model.Name = prev.Name
	}
	if model.Name == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	if prev.Name != nil && aws.ToString(prev.Name) != aws.ToString(model.Name) {
		return handler.ProgressEvent{}, provider.NotUpdatable("Name")
	}

	// PutParameter with Overwrite would silently recreate a deleted parameter.
	if _, err := get(ctx, inv, aws.ToString(model.Name)); err != nil {
		return handler.ProgressEvent{}, err
	}
	in := toPutInput(model)
	in.Overwrite = aws.Bool(true)
	inv.Logger.Sugar().Infow("Start Operation", "Name", "PutParameter", "ParameterName", aws.ToString(model.Name), "Overwrite", true)
	if _, err := inv.SSM.PutParameter(ctx, in); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	if err := inv.Tagger.Sync(ctx, ssmtypes.ResourceTypeForTaggingParameter, aws.ToString(model.Name), prev.Tags, model.Tags); err != nil {
		return handler.ProgressEvent{}, err
	}
	return read(ctx, inv, model, "Update Complete")
}

func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.Parameter) (handler.ProgressEvent, error) {
	if model.Name == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeleteParameter", "ParameterName", aws.ToString(model.Name))
	if _, err := inv.SSM.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: model.Name}); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return provider.Deleted(), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, _ *types.Parameter) (handler.ProgressEvent, error) {
	out, err := inv.SSM.DescribeParameters(ctx, &ssm.DescribeParametersInput{NextToken: inv.NextToken()})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.Parameters))
	for _, p := range out.Parameters {
		m := types.Parameter{Name: p.Name}
		fromMetadata(p, &m)
		models = append(models, m)
	}
	return provider.Listed(models, out.NextToken), nil
}

func toPutInput(m *types.Parameter) *ssm.PutParameterInput {
	return &ssm.PutParameterInput{
		Name:           m.Name,
		Value:          m.Value,
		Type:           ssmtypes.ParameterType(aws.ToString(m.Type)),
		Description:    m.Description,
		AllowedPattern: m.AllowedPattern,
		Tier:           ssmtypes.ParameterTier(aws.ToString(m.Tier)),
		Policies:       m.Policies,
		DataType:       m.DataType,
	}
}

func fromMetadata(p ssmtypes.ParameterMetadata, m *types.Parameter) {
	m.Type = provider.StringOrNil(string(p.Type))
	m.Description = p.Description
	m.AllowedPattern = p.AllowedPattern
	m.Tier = provider.StringOrNil(string(p.Tier))
	m.DataType = p.DataType
	if policies := policiesJSON(p.Policies); policies != nil {
		m.Policies = policies
	}
}

// policiesJSON renders the attached policies in the JSON array form the
// model uses.
func policiesJSON(policies []ssmtypes.ParameterInlinePolicy) *string {
	if len(policies) == 0 {
		return nil
	}
	raw := make([]json.RawMessage, 0, len(policies))
	for _, p := range policies {
		if p.PolicyText != nil {
			raw = append(raw, json.RawMessage(*p.PolicyText))
		}
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	return aws.String(string(buf))
}

func existsPoller(inv *provider.Invocation) provider.Poller {
	return func(ctx context.Context, ref string) (provider.PollResult, error) {
		_, err := get(ctx, inv, ref)
		if provider.Is(err, "ParameterNotFound") {
			return provider.Pending(), nil
		}
		if err != nil {
			return provider.PollResult{}, err
		}
		return provider.Stable(), nil
	}
}

func get(ctx context.Context, inv *provider.Invocation, name string) (*ssmtypes.Parameter, error) {
	inv.Logger.Sugar().Infow("Start Operation", "Name", "GetParameter", "ParameterName", name)
	out, err := inv.SSM.GetParameter(ctx, &ssm.GetParameterInput{Name: aws.String(name)})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if out.Parameter == nil {
		return nil, provider.NotFound(TypeName, name)
	}
	return out.Parameter, nil
}

func read(ctx context.Context, inv *provider.Invocation, model *types.Parameter, message string) (handler.ProgressEvent, error) {
	name := aws.ToString(model.Name)
	p, err := get(ctx, inv, name)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Value = p.Value
	model.Type = provider.StringOrNil(string(p.Type))
	model.DataType = p.DataType

	inv.Logger.Sugar().Infow("Start Operation", "Name", "DescribeParameters", "ParameterName", name)
	out, err := inv.SSM.DescribeParameters(ctx, &ssm.DescribeParametersInput{
		ParameterFilters: []ssmtypes.ParameterStringFilter{
			{Key: aws.String("Name"), Option: aws.String("Equals"), Values: []string{name}},
		},
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	if len(out.Parameters) > 0 {
		fromMetadata(out.Parameters[0], model)
	}

	tags, err := inv.Tagger.List(ctx, ssmtypes.ResourceTypeForTaggingParameter, name)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Tags = tags
	return provider.Success(model, message), nil
}
