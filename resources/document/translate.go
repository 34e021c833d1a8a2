// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package document

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

func toCreateInput(m *types.Document, content string) *ssm.CreateDocumentInput {
	return &ssm.CreateDocumentInput{
		Name:           m.Name,
		Content:        aws.String(content),
		DocumentFormat: ssmtypes.DocumentFormat(m.Format()),
		DocumentType:   ssmtypes.DocumentType(aws.ToString(m.DocumentType)),
		TargetType:     m.TargetType,
		VersionName:    m.VersionName,
		Attachments:    toAttachments(m.Attachments),
		Requires:       toRequires(m.Requires),
		Tags:           provider.ToSSMTags(types.TagsToMap(m.Tags)),
	}
}

func toUpdateInput(m *types.Document, content string) *ssm.UpdateDocumentInput {
	return &ssm.UpdateDocumentInput{
		Name:            m.Name,
		Content:         aws.String(content),
		DocumentFormat:  ssmtypes.DocumentFormat(m.Format()),
		DocumentVersion: aws.String(latestVersion),
		TargetType:      m.TargetType,
		VersionName:     m.VersionName,
		Attachments:     toAttachments(m.Attachments),
	}
}

func fromDescription(d *ssmtypes.DocumentDescription, m *types.Document) {
	m.Name = d.Name
	m.DocumentType = provider.StringOrNil(string(d.DocumentType))
	m.DocumentFormat = provider.StringOrNil(string(d.DocumentFormat))
	m.TargetType = d.TargetType
	m.VersionName = d.VersionName
	m.Requires = fromRequires(d.Requires)
}

func fromIdentifier(d ssmtypes.DocumentIdentifier) types.Document {
	return types.Document{
		Name:           d.Name,
		DocumentType:   provider.StringOrNil(string(d.DocumentType)),
		DocumentFormat: provider.StringOrNil(string(d.DocumentFormat)),
		TargetType:     d.TargetType,
		VersionName:    d.VersionName,
	}
}

func toAttachments(in []types.AttachmentsSource) []ssmtypes.AttachmentsSource {
	if len(in) == 0 {
		return nil
	}
	out := make([]ssmtypes.AttachmentsSource, 0, len(in))
	for _, a := range in {
		out = append(out, ssmtypes.AttachmentsSource{
			Key:    ssmtypes.AttachmentsSourceKey(aws.ToString(a.Key)),
			Values: a.Values,
			Name:   a.Name,
		})
	}
	return out
}

func toRequires(in []types.DocumentRequires) []ssmtypes.DocumentRequires {
	if len(in) == 0 {
		return nil
	}
	out := make([]ssmtypes.DocumentRequires, 0, len(in))
	for _, r := range in {
		out = append(out, ssmtypes.DocumentRequires{Name: r.Name, Version: r.Version})
	}
	return out
}

func fromRequires(in []ssmtypes.DocumentRequires) []types.DocumentRequires {
	if len(in) == 0 {
		return nil
	}
	out := make([]types.DocumentRequires, 0, len(in))
	for _, r := range in {
		out = append(out, types.DocumentRequires{Name: r.Name, Version: r.Version})
	}
	return out
}
