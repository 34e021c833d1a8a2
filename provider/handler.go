// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"context"
	"fmt"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn"
	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Action is the CloudFormation handler action being served.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionList   Action = "LIST"
)

// Invocation is everything a resource function needs for one handler call.
type Invocation struct {
	Action   Action
	TypeName string
	Request  handler.Request
	// Callback is nil until the operation has started stabilizing.
	Callback   *CallbackContext
	SSM        SSMClient
	KMS        KmsClient
	Logger     *zap.Logger
	Stabilizer Stabilizer
	Tagger     *Tagger
}

func (inv *Invocation) StackID() string {
	return inv.Request.RequestContext.StackID
}

func (inv *Invocation) LogicalResourceID() string {
	return inv.Request.LogicalResourceID
}

// NextToken returns the List pagination token, nil on the first page.
func (inv *Invocation) NextToken() *string {
	if inv.Request.RequestContext.NextToken == "" {
		return nil
	}
	token := inv.Request.RequestContext.NextToken
	return &token
}

// Func implements one action for a model type M. prev is the model before an
// update and is zero valued for the other actions.
type Func[M any] func(ctx context.Context, inv *Invocation, prev, cur *M) (handler.ProgressEvent, error)

// Resource describes a resource type: its name, its action functions and the
// SSM error codes specific to it.
type Resource[M any] struct {
	TypeName   string
	Create     Func[M]
	Read       Func[M]
	Update     Func[M]
	Delete     Func[M]
	List       Func[M]
	ErrorCodes ErrorCodes
}

type validator interface {
	Validate() error
}

// Handler adapts a Resource to the CloudFormation plugin handler interface.
type Handler[M any] struct {
	resource Resource[M]
	clients  ClientFactory
	config   *Config
	decode   func(req handler.Request, prev, cur *M) error
}

var _ cfn.Handler = (*Handler[struct{}])(nil)

func NewHandler[M any](resource Resource[M], clients ClientFactory, config *Config) *Handler[M] {
	return &Handler[M]{
		resource: resource,
		clients:  clients,
		config:   config,
		decode:   decodeRequest[M],
	}
}

func (h *Handler[M]) Create(req handler.Request) handler.ProgressEvent {
	return h.invoke(req, ActionCreate, h.resource.Create)
}

func (h *Handler[M]) Read(req handler.Request) handler.ProgressEvent {
	return h.invoke(req, ActionRead, h.resource.Read)
}

func (h *Handler[M]) Update(req handler.Request) handler.ProgressEvent {
	return h.invoke(req, ActionUpdate, h.resource.Update)
}

func (h *Handler[M]) Delete(req handler.Request) handler.ProgressEvent {
	return h.invoke(req, ActionDelete, h.resource.Delete)
}

func (h *Handler[M]) List(req handler.Request) handler.ProgressEvent {
	return h.invoke(req, ActionList, h.resource.List)
}

func (h *Handler[M]) invoke(req handler.Request, action Action, f Func[M]) (event handler.ProgressEvent) {
	ctx := context.Background()
	logger := h.initializeLogger(req, action)
	defer logger.Sync()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Handler Panicked", zap.Any("Panic", r), zap.Stack("Stack"))
			event = Failed(cloudformation.HandlerErrorCodeInternalFailure, fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	if f == nil {
		return Failed(cloudformation.HandlerErrorCodeInvalidRequest, fmt.Sprintf("%s does not support %s", h.resource.TypeName, action))
	}
	event, err := h.run(ctx, req, action, f, logger)
	if err != nil {
		code, message := h.resource.ErrorCodes.Classify(err)
		h.logAndEchoError(err, code, logger)
		return Failed(code, message)
	}
	logger.Info("Finish",
		zap.String("OperationStatus", string(event.OperationStatus)),
		zap.String("HandlerErrorCode", event.HandlerErrorCode),
		zap.String("Message", event.Message))
	return event
}

func (h *Handler[M]) run(ctx context.Context, req handler.Request, action Action, f Func[M], logger *zap.Logger) (handler.ProgressEvent, error) {
	prev, cur := new(M), new(M)
	if err := h.decode(req, prev, cur); err != nil {
		if action != ActionList {
			return handler.ProgressEvent{}, NewHandlerError(cloudformation.HandlerErrorCodeInvalidRequest, "cannot decode resource model: %v", err)
		}
		// List requests may arrive without a desired state.
		logger.Debug("List request without model", zap.Error(err))
	}
	cb, err := DecodeCallbackContext(req.CallbackContext)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	logger.Info("Start", zap.Any("ResourceModel", cur), zap.Any("PreviousResourceModel", prev), zap.Any("CallbackContext", cb))

	if action == ActionCreate || action == ActionUpdate {
		if v, ok := any(cur).(validator); ok {
			if err := v.Validate(); err != nil {
				return handler.ProgressEvent{}, err
			}
		}
	}

	clients, err := h.clients.NewClients(ctx, req.Session)
	if err != nil {
		return handler.ProgressEvent{}, err
	}
	inv := &Invocation{
		Action:   action,
		TypeName: h.resource.TypeName,
		Request:  req,
		Callback: cb,
		SSM:      clients.SSM,
		KMS:      clients.KMS,
		Logger:   logger,
		Stabilizer: Stabilizer{
			DelaySeconds: h.config.CallbackDelaySeconds,
			Retries:      h.config.StabilizationRetries,
			Logger:       logger,
		},
		Tagger: NewTagger(clients.SSM, logger),
	}
	return f(ctx, inv, prev, cur)
}

func (h *Handler[M]) logAndEchoError(err error, code string, logger *zap.Logger) {
	logger.Error("Failed to process request", zap.String("HandlerErrorCode", code), zap.Error(err))
	// Log more information if this is an error caused by an AWS SDK operation
	var oerr *smithy.OperationError
	if errors.As(err, &oerr) {
		logger.Error("Smithy Operation Error",
			zap.String("Service", oerr.Service()),
			zap.String("Operation", oerr.Operation()),
			zap.Error(oerr.Unwrap()))
	}
}

func (h *Handler[M]) initializeLogger(req handler.Request, action Action) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = h.config.LogLevel
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.With(
		zap.String("TypeName", h.resource.TypeName),
		zap.String("Action", string(action)),
		zap.String("StackID", req.RequestContext.StackID),
		zap.String("LogicalResourceID", req.LogicalResourceID),
	)
}
