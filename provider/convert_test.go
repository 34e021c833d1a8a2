// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Nil(t, ToInt32(nil))
	assert.Equal(t, int32(7), aws.ToInt32(ToInt32(aws.Int(7))))
	assert.Nil(t, FromInt32(nil))
	assert.Equal(t, 7, aws.ToInt(FromInt32(aws.Int32(7))))
	assert.Nil(t, StringOrNil(""))
	assert.Equal(t, "Standard", aws.ToString(StringOrNil("Standard")))
}
