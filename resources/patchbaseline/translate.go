// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package patchbaseline

import (
	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

func toCreateInput(m *types.PatchBaseline, clientToken string) *ssm.CreatePatchBaselineInput {
	return &ssm.CreatePatchBaselineInput{
		ClientToken:                      aws.String(clientToken),
		Name:                             m.Name,
		Description:                      m.Description,
		OperatingSystem:                  ssmtypes.OperatingSystem(aws.ToString(m.OperatingSystem)),
		ApprovalRules:                    toRuleGroup(m.ApprovalRules),
		ApprovedPatches:                  m.ApprovedPatches,
		ApprovedPatchesComplianceLevel:   ssmtypes.PatchComplianceLevel(aws.ToString(m.ApprovedPatchesComplianceLevel)),
		ApprovedPatchesEnableNonSecurity: m.ApprovedPatchesEnableNonSecurity,
		GlobalFilters:                    toGlobalFilters(m.GlobalFilters),
		RejectedPatches:                  m.RejectedPatches,
		RejectedPatchesAction:            ssmtypes.PatchAction(aws.ToString(m.RejectedPatchesAction)),
		Sources:                          toSources(m.Sources),
		Tags:                             provider.ToSSMTags(types.TagsToMap(m.Tags)),
	}
}

func toUpdateInput(m *types.PatchBaseline) *ssm.UpdatePatchBaselineInput {
	return &ssm.UpdatePatchBaselineInput{
		BaselineId:                       m.Id,
		Replace:                          aws.Bool(true),
		Name:                             m.Name,
		Description:                      m.Description,
		ApprovalRules:                    toRuleGroup(m.ApprovalRules),
		ApprovedPatches:                  m.ApprovedPatches,
		ApprovedPatchesComplianceLevel:   ssmtypes.PatchComplianceLevel(aws.ToString(m.ApprovedPatchesComplianceLevel)),
		ApprovedPatchesEnableNonSecurity: m.ApprovedPatchesEnableNonSecurity,
		GlobalFilters:                    toGlobalFilters(m.GlobalFilters),
		RejectedPatches:                  m.RejectedPatches,
		RejectedPatchesAction:            ssmtypes.PatchAction(aws.ToString(m.RejectedPatchesAction)),
		Sources:                          toSources(m.Sources),
	}
}

func fromBaseline(b *ssm.GetPatchBaselineOutput, m *types.PatchBaseline) {
	m.Id = b.BaselineId
	m.Name = b.Name
	m.Description = b.Description
	m.OperatingSystem = provider.StringOrNil(string(b.OperatingSystem))
	m.ApprovalRules = fromRuleGroup(b.ApprovalRules)
	m.ApprovedPatches = b.ApprovedPatches
	m.ApprovedPatchesComplianceLevel = provider.StringOrNil(string(b.ApprovedPatchesComplianceLevel))
	m.ApprovedPatchesEnableNonSecurity = b.ApprovedPatchesEnableNonSecurity
	m.GlobalFilters = fromFilterGroup(b.GlobalFilters)
	m.RejectedPatches = b.RejectedPatches
	m.RejectedPatchesAction = provider.StringOrNil(string(b.RejectedPatchesAction))
	m.Sources = fromSources(b.Sources)
	m.PatchGroups = b.PatchGroups
}

func toRuleGroup(g *types.PatchRuleGroup) *ssmtypes.PatchRuleGroup {
	if g == nil {
		return nil
	}
	rules := make([]ssmtypes.PatchRule, 0, len(g.PatchRules))
	for _, r := range g.PatchRules {
		rules = append(rules, ssmtypes.PatchRule{
			ApproveAfterDays:  provider.ToInt32(r.ApproveAfterDays),
			ApproveUntilDate:  r.ApproveUntilDate,
			EnableNonSecurity: r.EnableNonSecurity,
			ComplianceLevel:   ssmtypes.PatchComplianceLevel(aws.ToString(r.ComplianceLevel)),
			PatchFilterGroup:  toFilterGroup(r.PatchFilterGroup),
		})
	}
	return &ssmtypes.PatchRuleGroup{PatchRules: rules}
}

func fromRuleGroup(g *ssmtypes.PatchRuleGroup) *types.PatchRuleGroup {
	if g == nil || len(g.PatchRules) == 0 {
		return nil
	}
	rules := make([]types.PatchRule, 0, len(g.PatchRules))
	for _, r := range g.PatchRules {
		rules = append(rules, types.PatchRule{
			ApproveAfterDays:  provider.FromInt32(r.ApproveAfterDays),
			ApproveUntilDate:  r.ApproveUntilDate,
			EnableNonSecurity: r.EnableNonSecurity,
			ComplianceLevel:   provider.StringOrNil(string(r.ComplianceLevel)),
			PatchFilterGroup:  fromFilterGroup(r.PatchFilterGroup),
		})
	}
	return &types.PatchRuleGroup{PatchRules: rules}
}

func toGlobalFilters(g *types.PatchFilterGroup) *ssmtypes.PatchFilterGroup {
	if g == nil {
		return nil
	}
	return toFilterGroup(g)
}

// toFilterGroup always returns a group: SSM requires one on every rule.
func toFilterGroup(g *types.PatchFilterGroup) *ssmtypes.PatchFilterGroup {
	out := &ssmtypes.PatchFilterGroup{PatchFilters: []ssmtypes.PatchFilter{}}
	if g == nil {
		return out
	}
	for _, f := range g.PatchFilters {
		out.PatchFilters = append(out.PatchFilters, ssmtypes.PatchFilter{
			Key:    ssmtypes.PatchFilterKey(aws.ToString(f.Key)),
			Values: f.Values,
		})
	}
	return out
}

func fromFilterGroup(g *ssmtypes.PatchFilterGroup) *types.PatchFilterGroup {
	if g == nil || len(g.PatchFilters) == 0 {
		return nil
	}
	out := &types.PatchFilterGroup{}
	for _, f := range g.PatchFilters {
		out.PatchFilters = append(out.PatchFilters, types.PatchFilter{
			Key:    provider.StringOrNil(string(f.Key)),
			Values: f.Values,
		})
	}
	return out
}

func toSources(in []types.PatchSource) []ssmtypes.PatchSource {
	if len(in) == 0 {
		return nil
	}
	out := make([]ssmtypes.PatchSource, 0, len(in))
	for _, s := range in {
		out = append(out, ssmtypes.PatchSource{Name: s.Name, Products: s.Products, Configuration: s.Configuration})
	}
	return out
}

func fromSources(in []ssmtypes.PatchSource) []types.PatchSource {
	if len(in) == 0 {
		return nil
	}
	out := make([]types.PatchSource, 0, len(in))
	for _, s := range in {
		out = append(out, types.PatchSource{Name: s.Name, Products: s.Products, Configuration: s.Configuration})
	}
	return out
}
