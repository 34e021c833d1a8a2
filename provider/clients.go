// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	awsv1 "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
)

// Clients are the SDK clients a handler invocation talks to.
type Clients struct {
	SSM SSMClient
	KMS KmsClient
}

// ClientFactory builds SDK clients for one invocation. The framework hands
// every invocation a session carrying the caller's credentials.
type ClientFactory interface {
	NewClients(ctx context.Context, sess *session.Session) (*Clients, error)
}

// SessionClientFactory builds aws-sdk-go-v2 clients from the framework
// session.
type SessionClientFactory struct {
	maxAttempts int
}

func NewSessionClientFactory(cfg *Config) *SessionClientFactory {
	return &SessionClientFactory{maxAttempts: cfg.SDKMaxAttempts}
}

func (f *SessionClientFactory) NewClients(ctx context.Context, sess *session.Session) (*Clients, error) {
	if sess == nil || sess.Config == nil || sess.Config.Credentials == nil {
		return nil, errors.New("request does not carry caller credentials")
	}
	opts := []func(*config.LoadOptions) error{
		config.WithCredentialsProvider(aws.NewCredentialsCache(&sessionCredentials{sess: sess})),
		config.WithRetryMaxAttempts(f.maxAttempts),
	}
	if region := awsv1.StringValue(sess.Config.Region); region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Clients{
		SSM: ssm.NewFromConfig(cfg),
		KMS: kms.NewFromConfig(cfg),
	}, nil
}

// sessionCredentials adapts the v1 session credentials to the v2
// CredentialsProvider interface.
type sessionCredentials struct {
	sess *session.Session
}

func (c *sessionCredentials) Retrieve(ctx context.Context) (aws.Credentials, error) {
	v, err := c.sess.Config.Credentials.GetWithContext(ctx)
	if err != nil {
		return aws.Credentials{}, errors.WithStack(err)
	}
	return aws.Credentials{
		AccessKeyID:     v.AccessKeyID,
		SecretAccessKey: v.SecretAccessKey,
		SessionToken:    v.SessionToken,
		Source:          v.ProviderName,
	}, nil
}
