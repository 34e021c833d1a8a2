// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import "github.com/aws/aws-sdk-go-v2/aws"

// Models use int for integer properties while the SDK uses int32.

func ToInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	return aws.Int32(int32(*v))
}

func FromInt32(v *int32) *int {
	if v == nil {
		return nil
	}
	return aws.Int(int(*v))
}

// StringOrNil maps the zero value of SDK enum strings to an absent property.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
