// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package document

import (
	"encoding/json"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// renderContent turns the model content into the document body sent to SSM.
// Strings are sent as written; objects are serialized in the declared format.
func renderContent(content interface{}, format string) (string, error) {
	if s, ok := content.(string); ok {
		return s, nil
	}
	if content == nil {
		return "", provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "Content is required")
	}
	switch format {
	case types.DocumentFormatYAML:
		buf, err := yaml.Marshal(content)
		if err != nil {
			return "", errors.Wrap(err, "cannot render YAML content")
		}
		return string(buf), nil
	case types.DocumentFormatText:
		return "", provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "TEXT documents take string content")
	default:
		buf, err := json.Marshal(content)
		if err != nil {
			return "", errors.Wrap(err, "cannot render JSON content")
		}
		return string(buf), nil
	}
}

// parseContent reads a document body back into an object. Bodies that do
// not parse in their declared format are returned as plain strings.
func parseContent(body, format string) interface{} {
	var out interface{}
	switch format {
	case types.DocumentFormatYAML:
		if err := yaml.Unmarshal([]byte(body), &out); err != nil {
			return body
		}
	case types.DocumentFormatText:
		return body
	default:
		if err := json.Unmarshal([]byte(body), &out); err != nil {
			return body
		}
	}
	return out
}

// sameContent compares two contents after normalizing them through the
// declared format, so key order and whitespace do not count as changes.
func sameContent(a, b interface{}, format string) (bool, error) {
	ra, err := normalize(a, format)
	if err != nil {
		return false, err
	}
	rb, err := normalize(b, format)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

func normalize(content interface{}, format string) (string, error) {
	if s, ok := content.(string); ok && format != types.DocumentFormatText {
		content = parseContent(s, format)
		if _, still := content.(string); still {
			return s, nil
		}
	}
	return renderContent(content, format)
}
