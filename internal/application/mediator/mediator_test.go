package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
)

type pingQuery struct{ Value string }

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return "pong:" + request.(*pingQuery).Value, nil
}

func TestMediator_SendDispatchesToHandler(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &pingHandler{}))

	// Act
	response, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:a", response)
}

func TestMediator_MiddlewaresRunInRegistrationOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &pingHandler{}))

	var calls []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			response, err := next(ctx, request)
			calls = append(calls, name+":after")
			return response, err
		}
	}
	m.RegisterMiddleware(trace("outer"))
	m.RegisterMiddleware(trace("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

func TestMediator_MiddlewareCanShortCircuit(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &pingHandler{}))
	m.RegisterMiddleware(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		return "cached", nil
	})

	// Act
	response, err := m.Send(context.Background(), &pingQuery{Value: "a"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "cached", response)
}

func TestMediator_Errors(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, &pingHandler{}))

	t.Run("duplicate registration", func(t *testing.T) {
		err := mediator.RegisterHandler[*pingQuery](m, &pingHandler{})
		assert.ErrorContains(t, err, "handler already registered")
	})

	t.Run("nil handler", func(t *testing.T) {
		type otherQuery struct{}
		err := mediator.RegisterHandler[*otherQuery](m, nil)
		assert.EqualError(t, err, "handler cannot be nil")
	})

	t.Run("nil request", func(t *testing.T) {
		_, err := m.Send(context.Background(), nil)
		assert.EqualError(t, err, "request cannot be nil")
	})

	t.Run("unregistered request", func(t *testing.T) {
		_, err := m.Send(context.Background(), &struct{ X int }{})
		assert.ErrorContains(t, err, "no handler registered")
	})
}
