// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"context"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Keys under this prefix are owned by AWS and never added or removed by a
// handler.
const reservedTagPrefix = "aws:"

// ToSSMTags converts a tag map to the SDK shape. Keys are sorted so the
// requests are deterministic.
func ToSSMTags(m map[string]string) []ssmtypes.Tag {
	if len(m) == 0 {
		return nil
	}
	keys := lo.Keys(m)
	sort.Strings(keys)
	tags := make([]ssmtypes.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, ssmtypes.Tag{Key: aws.String(k), Value: aws.String(m[k])})
	}
	return tags
}

// FromSSMTags converts SDK tags to a map, dropping reserved keys.
func FromSSMTags(tags []ssmtypes.Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		k := aws.ToString(t.Key)
		if strings.HasPrefix(k, reservedTagPrefix) {
			continue
		}
		m[k] = aws.ToString(t.Value)
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// DiffTags returns the tags to put and the keys to remove to go from prev to
// cur. Reserved keys are ignored on both sides.
func DiffTags(prev, cur map[string]string) (map[string]string, []string) {
	toAdd := lo.PickBy(cur, func(k, v string) bool {
		if strings.HasPrefix(k, reservedTagPrefix) {
			return false
		}
		pv, ok := prev[k]
		return !ok || pv != v
	})
	toRemove := lo.Filter(lo.Keys(prev), func(k string, _ int) bool {
		if strings.HasPrefix(k, reservedTagPrefix) {
			return false
		}
		_, ok := cur[k]
		return !ok
	})
	sort.Strings(toRemove)
	return toAdd, toRemove
}

// Tagger reads and updates tags of taggable SSM resources.
type Tagger struct {
	client SSMClient
	logger *zap.Logger
}

func NewTagger(client SSMClient, logger *zap.Logger) *Tagger {
	return &Tagger{client: client, logger: logger}
}

// Sync removes stale tags before adding new ones so a changed value of a
// removed-then-readded key is not lost.
func (t *Tagger) Sync(ctx context.Context, resourceType ssmtypes.ResourceTypeForTagging, id string, prev, cur map[string]string) error {
	toAdd, toRemove := DiffTags(prev, cur)
	if len(toRemove) > 0 {
		t.logger.Sugar().Infow("Start Operation", "Name", "RemoveTagsFromResource", "ResourceId", id, "Keys", toRemove)
		_, err := t.client.RemoveTagsFromResource(ctx, &ssm.RemoveTagsFromResourceInput{
			ResourceId:   aws.String(id),
			ResourceType: resourceType,
			TagKeys:      toRemove,
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	if len(toAdd) > 0 {
		t.logger.Sugar().Infow("Start Operation", "Name", "AddTagsToResource", "ResourceId", id, "Count", len(toAdd))
		_, err := t.client.AddTagsToResource(ctx, &ssm.AddTagsToResourceInput{
			ResourceId:   aws.String(id),
			ResourceType: resourceType,
			Tags:         ToSSMTags(toAdd),
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// List returns the user tags of a resource.
func (t *Tagger) List(ctx context.Context, resourceType ssmtypes.ResourceTypeForTagging, id string) (map[string]string, error) {
	out, err := t.client.ListTagsForResource(ctx, &ssm.ListTagsForResourceInput{
		ResourceId:   aws.String(id),
		ResourceType: resourceType,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return FromSSMTags(out.TagList), nil
}
