// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package resourcedatasync

import (
	"context"
	"strings"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type kmsKeyResolver struct {
	kmsClient provider.KmsClient
	logger    *zap.Logger
}

func newKmsKeyResolver(kmsClient provider.KmsClient, logger *zap.Logger) *kmsKeyResolver {
	return &kmsKeyResolver{
		kmsClient: kmsClient,
		logger:    logger,
	}
}

// Resource data syncs only accept a key ARN, while templates usually refer to
// keys by id or alias. Resolve returns key unchanged when it is empty or
// already a key ARN and asks KMS for the ARN otherwise.
func (r *kmsKeyResolver) Resolve(ctx context.Context, key string) (string, error) {
	if key == "" || isKeyArn(key) {
		return key, nil
	}
	if r.kmsClient == nil {
		return "", provider.NewHandlerError(cloudformation.HandlerErrorCodeInternalFailure, "no KMS client to resolve key %s", key)
	}
	r.logger.Sugar().Infow("Start Operation", "Name", "DescribeKey", "KeyId", key)
	out, err := r.kmsClient.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(key)})
	if err != nil {
		return "", errors.WithStack(err)
	}
	if out.KeyMetadata == nil || out.KeyMetadata.Arn == nil {
		return "", provider.NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "KMS key %s has no ARN", key)
	}
	return aws.ToString(out.KeyMetadata.Arn), nil
}

func isKeyArn(key string) bool {
	return strings.HasPrefix(key, "arn:") && strings.Contains(key, ":key/")
}
