// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package document

import (
	"testing"

	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContent(t *testing.T) {
	type testCase struct {
		content  interface{}
		format   string
		expected string
		err      bool
	}
	object := map[string]interface{}{"schemaVersion": "2.2", "mainSteps": []interface{}{}}
	cases := map[string]testCase{
		"JSON object": {
			content:  object,
			format:   types.DocumentFormatJSON,
			expected: `{"mainSteps":[],"schemaVersion":"2.2"}`,
		},
		"YAML object": {
			content:  object,
			format:   types.DocumentFormatYAML,
			expected: "mainSteps: []\nschemaVersion: \"2.2\"\n",
		},
		"String passes through": {
			content:  "schemaVersion: '2.2'",
			format:   types.DocumentFormatYAML,
			expected: "schemaVersion: '2.2'",
		},
		"TEXT needs a string": {
			content: object,
			format:  types.DocumentFormatText,
			err:     true,
		},
		"Missing content": {
			format: types.DocumentFormatJSON,
			err:    true,
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := renderContent(c.content, c.format)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, out)
		})
	}
}

func TestParseContent(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"schemaVersion": "2.2"}, parseContent(`{"schemaVersion":"2.2"}`, types.DocumentFormatJSON))
	assert.Equal(t, map[string]interface{}{"schemaVersion": "2.2"}, parseContent("schemaVersion: '2.2'\n", types.DocumentFormatYAML))
	assert.Equal(t, "not json", parseContent("not json", types.DocumentFormatJSON))
	assert.Equal(t, "{}", parseContent("{}", types.DocumentFormatText))
}

func TestSameContent(t *testing.T) {
	same, err := sameContent(`{"b": 1, "a": 2}`, map[string]interface{}{"a": 2, "b": 1}, types.DocumentFormatJSON)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = sameContent(map[string]interface{}{"a": 1}, map[string]interface{}{"a": 2}, types.DocumentFormatYAML)
	require.NoError(t, err)
	assert.False(t, same)
}
