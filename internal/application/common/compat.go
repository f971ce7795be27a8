package common

import (
	"github.com/andrescamacho/starlanes-go/internal/application/logging"
	"github.com/andrescamacho/starlanes-go/internal/application/mediator"
)

// Aliases so handler packages depend on common alone
type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
	HandlerLogger  = logging.HandlerLogger
)

var (
	WithLogger        = logging.WithLogger
	LoggerFromContext = logging.LoggerFromContext
)
