// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import "sort"

// Tag is a key/value pair in the list form used by most SSM resource schemas.
type Tag struct {
	Key   *string `json:",omitempty"`
	Value *string `json:",omitempty"`
}

// TagsToMap flattens a tag list. Later duplicates win.
func TagsToMap(tags []Tag) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		if t.Key == nil {
			continue
		}
		v := ""
		if t.Value != nil {
			v = *t.Value
		}
		m[*t.Key] = v
	}
	return m
}

// TagsFromMap is the inverse of TagsToMap with keys in sorted order.
func TagsFromMap(m map[string]string) []Tag {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tags := make([]Tag, 0, len(keys))
	for _, k := range keys {
		k, v := k, m[k]
		tags = append(tags, Tag{Key: &k, Value: &v})
	}
	return tags
}

const tagSchema = `{
	"type": "object",
	"required": ["Key", "Value"],
	"properties": {
		"Key": {"type": "string", "minLength": 1, "maxLength": 128},
		"Value": {"type": "string", "maxLength": 256}
	},
	"additionalProperties": false
}`
