// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package provider

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws-samples/amazon-ssm-resource-providers/provider/mocks"
	"github.com/aws-samples/amazon-ssm-resource-providers/types"

	"github.com/aws-cloudformation/cloudformation-cli-go-plugin/cfn/handler"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string
	Valid bool
}

func (w *widget) Validate() error {
	if !w.Valid {
		return &types.ValidationError{Message: "widget is invalid"}
	}
	return nil
}

type staticClients struct {
	clients *Clients
	err     error
}

func (f staticClients) NewClients(context.Context, *session.Session) (*Clients, error) {
	return f.clients, f.err
}

func newTestHandler(ctrl *gomock.Controller, resource Resource[widget], cur widget) *Handler[widget] {
	h := NewHandler(resource, staticClients{clients: &Clients{
		SSM: mocks.NewMockSSMClient(ctrl),
		KMS: mocks.NewMockKmsClient(ctrl),
	}}, DefaultConfig())
	h.decode = func(_ handler.Request, prev, m *widget) error {
		*m = cur
		return nil
	}
	return h
}

func TestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Create: func(_ context.Context, inv *Invocation, _, cur *widget) (handler.ProgressEvent, error) {
				assert.Equal(t, ActionCreate, inv.Action)
				assert.Equal(t, "Test::Widget", inv.TypeName)
				assert.Nil(t, inv.Callback)
				assert.NotNil(t, inv.SSM)
				assert.NotNil(t, inv.KMS)
				assert.Equal(t, DefaultConfig().StabilizationRetries, inv.Stabilizer.Retries)
				return Success(cur, "Create Complete"), nil
			},
		}
		h := newTestHandler(ctrl, resource, widget{Name: "w", Valid: true})

		event := h.Create(handler.Request{})
		assert.Equal(t, handler.Success, event.OperationStatus)
		assert.Equal(t, &widget{Name: "w", Valid: true}, event.ResourceModel)
	})

	t.Run("Framework request", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Update: func(_ context.Context, _ *Invocation, prev, cur *widget) (handler.ProgressEvent, error) {
				assert.Equal(t, &widget{Name: "old", Valid: true}, prev)
				return Success(cur, "Update Complete"), nil
			},
		}
		h := NewHandler(resource, staticClients{clients: &Clients{SSM: mocks.NewMockSSMClient(ctrl)}}, DefaultConfig())

		event := h.Update(handler.NewRequest("Widget", nil, handler.RequestContext{}, nil,
			[]byte(`{"Name": "old", "Valid": "true"}`), []byte(`{"Name": "new", "Valid": "true"}`), nil))
		assert.Equal(t, handler.Success, event.OperationStatus)
		assert.Equal(t, &widget{Name: "new", Valid: true}, event.ResourceModel)
	})

	t.Run("Undecodable request", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Create: func(context.Context, *Invocation, *widget, *widget) (handler.ProgressEvent, error) {
				t.Fatal("create must not run for an undecodable model")
				return handler.ProgressEvent{}, nil
			},
		}
		h := NewHandler(resource, staticClients{clients: &Clients{SSM: mocks.NewMockSSMClient(ctrl)}}, DefaultConfig())

		event := h.Create(handler.NewRequest("Widget", nil, handler.RequestContext{}, nil, nil, []byte(`{"Valid": "maybe"}`), nil))
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, event.HandlerErrorCode)
	})

	t.Run("Invalid model", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Update: func(context.Context, *Invocation, *widget, *widget) (handler.ProgressEvent, error) {
				t.Fatal("update must not run for an invalid model")
				return handler.ProgressEvent{}, nil
			},
		}
		h := newTestHandler(ctrl, resource, widget{Name: "w"})

		event := h.Update(handler.Request{})
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, event.HandlerErrorCode)
		assert.Equal(t, "widget is invalid", event.Message)
	})

	t.Run("Read skips validation", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Read: func(_ context.Context, _ *Invocation, _, cur *widget) (handler.ProgressEvent, error) {
				return Success(cur, ""), nil
			},
		}
		h := newTestHandler(ctrl, resource, widget{Name: "w"})

		event := h.Read(handler.Request{})
		assert.Equal(t, handler.Success, event.OperationStatus)
	})

	t.Run("Callback context", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Delete: func(_ context.Context, inv *Invocation, _, _ *widget) (handler.ProgressEvent, error) {
				require.NotNil(t, inv.Callback)
				assert.Equal(t, "w-1", inv.Callback.ResourceRef)
				assert.Equal(t, 4, inv.Callback.RetriesRemaining)
				return Deleted(), nil
			},
		}
		h := newTestHandler(ctrl, resource, widget{Name: "w"})

		event := h.Delete(handler.Request{CallbackContext: map[string]interface{}{
			"ResourceRef":      "w-1",
			"RetriesRemaining": float64(4),
		}})
		assert.Equal(t, handler.Success, event.OperationStatus)
	})

	t.Run("Service error", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName:   "Test::Widget",
			ErrorCodes: ErrorCodes{"WidgetMissing": cloudformation.HandlerErrorCodeNotFound},
			Read: func(context.Context, *Invocation, *widget, *widget) (handler.ProgressEvent, error) {
				return handler.ProgressEvent{}, apiError("WidgetMissing")
			},
		}
		h := newTestHandler(ctrl, resource, widget{})

		event := h.Read(handler.Request{})
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeNotFound, event.HandlerErrorCode)
	})

	t.Run("Unsupported action", func(t *testing.T) {
		h := newTestHandler(ctrl, Resource[widget]{TypeName: "Test::Widget"}, widget{})

		event := h.List(handler.Request{})
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInvalidRequest, event.HandlerErrorCode)
	})

	t.Run("No credentials", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Read: func(context.Context, *Invocation, *widget, *widget) (handler.ProgressEvent, error) {
				t.Fatal("read must not run without clients")
				return handler.ProgressEvent{}, nil
			},
		}
		h := newTestHandler(ctrl, resource, widget{})
		h.clients = staticClients{err: fmt.Errorf("request does not carry caller credentials")}

		event := h.Read(handler.Request{})
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInternalFailure, event.HandlerErrorCode)
	})

	t.Run("Panic", func(t *testing.T) {
		resource := Resource[widget]{
			TypeName: "Test::Widget",
			Read: func(context.Context, *Invocation, *widget, *widget) (handler.ProgressEvent, error) {
				panic("nil map")
			},
		}
		h := newTestHandler(ctrl, resource, widget{})

		event := h.Read(handler.Request{})
		assert.Equal(t, handler.Failed, event.OperationStatus)
		assert.Equal(t, cloudformation.HandlerErrorCodeInternalFailure, event.HandlerErrorCode)
	})
}
