// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const randomSuffixLength = 12

var nameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)

// stackName extracts the stack name from a stack ARN of the form
// arn:aws:cloudformation:region:account:stack/name/guid. Anything else is
// returned unchanged.
func stackName(stackID string) string {
	parts := strings.Split(stackID, "/")
	if len(parts) == 3 && strings.HasPrefix(parts[0], "arn:") {
		return parts[1]
	}
	return stackID
}

// GenerateName builds a physical name for resources whose Name property was
// left empty: <stack>-<logicalId>-<random>, trimmed to maxLength. The random
// part keeps names unique across replacements of the same logical resource.
func GenerateName(stackID, logicalID string, maxLength int) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:randomSuffixLength]
	prefix := nameUnsafe.ReplaceAllString(fmt.Sprintf("%s-%s", stackName(stackID), logicalID), "")
	if budget := maxLength - randomSuffixLength - 1; len(prefix) > budget {
		if budget <= 0 {
			if maxLength < randomSuffixLength {
				return suffix[:maxLength]
			}
			return suffix
		}
		prefix = prefix[:budget]
	}
	if prefix == "" || prefix == "-" {
		return suffix
	}
	return fmt.Sprintf("%s-%s", prefix, suffix)
}
