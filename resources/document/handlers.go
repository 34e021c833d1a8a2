// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package document

import (
	"context"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/pkg/errors"
)

func Create(ctx context.Context, inv *provider.Invocation, _, model *types.Document) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		model.Name = aws.String(inv.Callback.ResourceRef)
		return inv.Stabilizer.Step(ctx, *inv.Callback, model, statusPoller(inv, nil), func(ctx context.Context) (handler.ProgressEvent, error) {
			return read(ctx, inv, model, "Create Complete")
		})
	}

	if model.Name == nil {
		model.Name = aws.String(provider.GenerateName(inv.StackID(), inv.LogicalResourceID(), maxNameLength))
	}
	content, err := renderContent(model.Content, model.Format())
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "CreateDocument", "DocumentName", aws.ToString(model.Name))
	if _, err := inv.SSM.CreateDocument(ctx, toCreateInput(model, content)); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return inv.Stabilizer.BeginStage(aws.ToString(model.Name), stageCreate, model), nil
}

func Read(ctx context.Context, inv *provider.Invocation, _, model *types.Document) (handler.ProgressEvent, error) {
	if model.Name == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	return read(ctx, inv, model, "")
}

func Update(ctx context.Context, inv *provider.Invocation, prev, model *types.Document) (handler.ProgressEvent, error) {
	if model.Name == nil {
		model.Name = prev.Name
	}
	if model.Name == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	if inv.Callback != nil {
		return finishVersionUpdate(ctx, inv, model)
	}
	if prev.Name != nil && aws.ToString(prev.Name) != aws.ToString(model.Name) {
		return handler.ProgressEvent{}, provider.NotUpdatable("Name")
	}
	if prev.DocumentType != nil && aws.ToString(prev.DocumentType) != aws.ToString(model.DocumentType) {
		return handler.ProgressEvent{}, provider.NotUpdatable("DocumentType")
	}

	changed, err := versionChanged(prev, model)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	// Replace means a content change needs a new resource; nothing is touched.
	if changed && model.Method() != types.DocumentUpdateMethodNewVersion {
		return handler.ProgressEvent{}, provider.NotUpdatable("Content")
	}

	name := aws.ToString(model.Name)
	if _, err := describe(ctx, inv, name, nil); err != nil {
		return handler.ProgressEvent{}, err
	}
	if err := inv.Tagger.Sync(ctx, ssmtypes.ResourceTypeForTaggingDocument, name, types.TagsToMap(prev.Tags), types.TagsToMap(model.Tags)); err != nil {
		return handler.ProgressEvent{}, err
	}
	if !changed {
		return read(ctx, inv, model, "Update Complete")
	}

	content, err := renderContent(model.Content, model.Format())
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdateDocument", "DocumentName", name)
	if _, err := inv.SSM.UpdateDocument(ctx, toUpdateInput(model, content)); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return inv.Stabilizer.BeginStage(name, stageUpdate, model), nil
}

// finishVersionUpdate waits for the new $LATEST version to become active
// and then makes it the default version.
func finishVersionUpdate(ctx context.Context, inv *provider.Invocation, model *types.Document) (handler.ProgressEvent, error) {
	var version *string
	poll := statusPoller(inv, func(d *ssmtypes.DocumentDescription) {
		version = d.DocumentVersion
		if version == nil {
			version = d.LatestVersion
		}
	})
	return inv.Stabilizer.Step(ctx, *inv.Callback, model, poll, func(ctx context.Context) (handler.ProgressEvent, error) {
		inv.Logger.Sugar().Infow("Start Operation", "Name", "UpdateDocumentDefaultVersion", "DocumentName", aws.ToString(model.Name), "DocumentVersion", aws.ToString(version))
		_, err := inv.SSM.UpdateDocumentDefaultVersion(ctx, &ssm.UpdateDocumentDefaultVersionInput{
			Name:            model.Name,
			DocumentVersion: version,
		})
		if err != nil {
			return handler.ProgressEvent{}, errors.WithStack(err)
		}
		return read(ctx, inv, model, "Update Complete")
	})
}

func Delete(ctx context.Context, inv *provider.Invocation, _, model *types.Document) (handler.ProgressEvent, error) {
	if inv.Callback != nil {
		return inv.Stabilizer.Step(ctx, *inv.Callback, nil, deletePoller(inv), func(context.Context) (handler.ProgressEvent, error) {
			return provider.Deleted(), nil
		})
	}
	if model.Name == nil {
		return handler.ProgressEvent{}, provider.NotFound(TypeName, "")
	}
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DeleteDocument", "DocumentName", aws.ToString(model.Name))
	if _, err := inv.SSM.DeleteDocument(ctx, &ssm.DeleteDocumentInput{Name: model.Name}); err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	return inv.Stabilizer.BeginStage(aws.ToString(model.Name), stageDelete, nil), nil
}

func List(ctx context.Context, inv *provider.Invocation, _, _ *types.Document) (handler.ProgressEvent, error) {
	out, err := inv.SSM.ListDocuments(ctx, &ssm.ListDocumentsInput{
		Filters: []ssmtypes.DocumentKeyValuesFilter{
			{Key: aws.String("Owner"), Values: []string{"Self"}},
		},
		NextToken: inv.NextToken(),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	models := make([]interface{}, 0, len(out.DocumentIdentifiers))
	for _, d := range out.DocumentIdentifiers {
		models = append(models, fromIdentifier(d))
	}
	return provider.Listed(models, out.NextToken), nil
}

// versionChanged reports whether the update needs a new document version.
func versionChanged(prev, cur *types.Document) (bool, error) {
	if prev.Format() != cur.Format() ||
		aws.ToString(prev.VersionName) != aws.ToString(cur.VersionName) ||
		aws.ToString(prev.TargetType) != aws.ToString(cur.TargetType) {
		return true, nil
	}
	if prev.Content == nil {
		return true, nil
	}
	same, err := sameContent(prev.Content, cur.Content, cur.Format())
	return !same, err
}

// statusPoller polls the $LATEST version of the document. seen, when set,
// observes every description returned.
func statusPoller(inv *provider.Invocation, seen func(*ssmtypes.DocumentDescription)) provider.Poller {
	return func(ctx context.Context, ref string) (provider.PollResult, error) {
		d, err := describe(ctx, inv, ref, aws.String(latestVersion))
		if err != nil {
			return provider.PollResult{}, err
		}
		if seen != nil {
			seen(d)
		}
		switch d.Status {
		case ssmtypes.DocumentStatusActive:
			return provider.Stable(), nil
		case ssmtypes.DocumentStatusFailed:
			return provider.Unstable(statusReason(d)), nil
		default:
			return provider.Pending(), nil
		}
	}
}

func deletePoller(inv *provider.Invocation) provider.Poller {
	return func(ctx context.Context, ref string) (provider.PollResult, error) {
		d, err := describe(ctx, inv, ref, nil)
		if provider.Is(err, "InvalidDocument") {
			return provider.Stable(), nil
		}
		if err != nil {
			return provider.PollResult{}, err
		}
		if d.Status == ssmtypes.DocumentStatusFailed {
			return provider.Unstable(statusReason(d)), nil
		}
		return provider.Pending(), nil
	}
}

func statusReason(d *ssmtypes.DocumentDescription) string {
	if d.StatusInformation != nil {
		return *d.StatusInformation
	}
	return "document " + aws.ToString(d.Name) + " is in status Failed"
}

func describe(ctx context.Context, inv *provider.Invocation, name string, version *string) (*ssmtypes.DocumentDescription, error) {
	inv.Logger.Sugar().Infow("Start Operation", "Name", "DescribeDocument", "DocumentName", name)
	out, err := inv.SSM.DescribeDocument(ctx, &ssm.DescribeDocumentInput{Name: aws.String(name), DocumentVersion: version})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if out.Document == nil {
		return nil, provider.NotFound(TypeName, name)
	}
	return out.Document, nil
}

func read(ctx context.Context, inv *provider.Invocation, model *types.Document, message string) (handler.ProgressEvent, error) {
	name := aws.ToString(model.Name)
	d, err := describe(ctx, inv, name, nil)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	fromDescription(d, model)

	inv.Logger.Sugar().Infow("Start Operation", "Name", "GetDocument", "DocumentName", name)
	out, err := inv.SSM.GetDocument(ctx, &ssm.GetDocumentInput{
		Name:           model.Name,
		DocumentFormat: ssmtypes.DocumentFormat(model.Format()),
	})
	if err != nil {
		return handler.ProgressEvent{}, errors.WithStack(err)
	}
	model.Content = parseContent(aws.ToString(out.Content), model.Format())

	tags, err := inv.Tagger.List(ctx, ssmtypes.ResourceTypeForTaggingDocument, name)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	model.Tags = types.TagsFromMap(tags)
	return provider.Success(model, message), nil
}
