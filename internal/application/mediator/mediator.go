package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Request is a command or query struct, sent by pointer
type Request interface{}

// Response is whatever a handler returns for its request
type Response interface{}

// RequestHandler serves one or more request types
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a function to the handler call shape used by middlewares
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware wraps every dispatch. Calling next continues the chain; returning
// without calling it short-circuits the handler.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// Mediator routes requests to the handler registered for their concrete type
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	RegisterMiddleware(middleware Middleware)
}

type mediator struct {
	mu          sync.RWMutex
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

// NewMediator creates an empty mediator
func NewMediator() Mediator {
	return &mediator{handlers: make(map[reflect.Type]RequestHandler)}
}

func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return errors.New("request type cannot be nil")
	}
	if handler == nil {
		return fmt.Errorf("nil handler for %s", RequestName(reflect.Zero(requestType).Interface()))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}
	m.handlers[requestType] = handler
	return nil
}

// RegisterMiddleware appends a middleware. The first registered runs outermost.
func (m *mediator) RegisterMiddleware(middleware Middleware) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.middlewares = append(m.middlewares, middleware)
}

func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}

	m.mu.RLock()
	handler, ok := m.handlers[reflect.TypeOf(request)]
	chain := m.middlewares
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no handler registered for type %T", request)
	}

	var dispatch func(i int) HandlerFunc
	dispatch = func(i int) HandlerFunc {
		if i == len(chain) {
			return handler.Handle
		}
		return func(ctx context.Context, request Request) (Response, error) {
			return chain[i](ctx, request, dispatch(i+1))
		}
	}
	return dispatch(0)(ctx, request)
}

// RegisterHandler registers handler for the request type T
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	return m.Register(reflect.TypeFor[T](), handler)
}

// RequestName is the bare type name of a request ("EndTurnCommand"), used as a
// label in logs and metrics
func RequestName(request Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	name := reflect.TypeOf(request).String()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}
