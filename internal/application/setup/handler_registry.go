package setup

import (
	"reflect"

	"github.com/andrescamacho/starlanes-go/internal/application/common"
	fleetCommands "github.com/andrescamacho/starlanes-go/internal/application/fleet/commands"
	fleetQueries "github.com/andrescamacho/starlanes-go/internal/application/fleet/queries"
	gameCommands "github.com/andrescamacho/starlanes-go/internal/application/game/commands"
	gameQueries "github.com/andrescamacho/starlanes-go/internal/application/game/queries"
	"github.com/andrescamacho/starlanes-go/internal/application/mediator"
	turnCommands "github.com/andrescamacho/starlanes-go/internal/application/turn/commands"
	"github.com/andrescamacho/starlanes-go/internal/domain/galaxy"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	repo    galaxy.GameRepository
	store   *common.GameStore
	engines *common.Engines
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(repo galaxy.GameRepository, engines *common.Engines) *HandlerRegistry {
	return &HandlerRegistry{
		repo:    repo,
		store:   common.NewGameStore(repo),
		engines: engines,
	}
}

// RegisterGameHandlers registers game setup and inspection handlers
//
// This method registers:
//   - NewGameCommand → NewGameHandler
//   - GetGameQuery, ListGamesQuery → GameQueryHandler
func (r *HandlerRegistry) RegisterGameHandlers(m mediator.Mediator) error {
	newGameHandler := gameCommands.NewNewGameHandler(r.repo, r.engines.Fleets, r.engines.Governor)
	if err := m.Register(reflect.TypeOf(&gameCommands.NewGameCommand{}), newGameHandler); err != nil {
		return err
	}

	queryHandler := gameQueries.NewGameQueryHandler(r.repo)
	if err := m.Register(reflect.TypeOf(&gameQueries.GetGameQuery{}), queryHandler); err != nil {
		return err
	}
	return m.Register(reflect.TypeOf(&gameQueries.ListGamesQuery{}), queryHandler)
}

// RegisterFleetHandlers registers every fleet command and query handler.
// Handlers that serve several request types are shared across their registrations.
func (r *HandlerRegistry) RegisterFleetHandlers(m mediator.Mediator) error {
	orders := fleetCommands.NewFleetOrdersHandler(r.store, r.engines.Fleets)
	cargoTransfer := fleetCommands.NewCargoTransferHandler(r.store, r.engines.Cargo)
	reorganize := fleetCommands.NewReorganizeFleetsHandler(r.store, r.engines.Fleets)

	registrations := []struct {
		request common.Request
		handler common.RequestHandler
	}{
		{&fleetCommands.CreateFleetCommand{}, fleetCommands.NewCreateFleetHandler(r.store, r.engines.Fleets)},
		{&fleetCommands.AddShipCommand{}, fleetCommands.NewAddShipHandler(r.store, r.engines.Fleets)},
		{&fleetCommands.IssueFleetOrderCommand{}, orders},
		{&fleetCommands.SetFleetOrdersCommand{}, orders},
		{&fleetCommands.ColonizeNowCommand{}, fleetCommands.NewColonizeNowHandler(r.store, r.engines.Colonizer)},
		{&fleetCommands.LoadCargoCommand{}, cargoTransfer},
		{&fleetCommands.UnloadCargoCommand{}, cargoTransfer},
		{&fleetCommands.TransferCommand{}, reorganize},
		{&fleetCommands.SplitFleetCommand{}, reorganize},
		{&fleetCommands.SeparateFleetCommand{}, reorganize},
		{&fleetCommands.MergeFleetsCommand{}, reorganize},
		{&fleetCommands.DecommissionFleetCommand{}, reorganize},
		{&fleetQueries.ListFleetsQuery{}, fleetQueries.NewListFleetsHandler(r.store)},
		{&fleetQueries.EvaluateMovementQuery{}, fleetQueries.NewEvaluateMovementHandler(r.store, r.engines.EngineTable)},
	}
	for _, reg := range registrations {
		if err := m.Register(reflect.TypeOf(reg.request), reg.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterTurnHandlers registers the end-of-turn handler
func (r *HandlerRegistry) RegisterTurnHandlers(m mediator.Mediator) error {
	endTurnHandler := turnCommands.NewEndTurnHandler(r.store, r.engines.Turns)
	return m.Register(reflect.TypeOf(&turnCommands.EndTurnCommand{}), endTurnHandler)
}

// CreateConfiguredMediator creates a mediator with every handler registered.
//
// Middlewares are installed in the given order, the first one running outermost.
// Request validation always runs innermost, right before the handler.
func (r *HandlerRegistry) CreateConfiguredMediator(middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	for _, mw := range middlewares {
		m.RegisterMiddleware(mw)
	}
	m.RegisterMiddleware(common.ValidationMiddleware())

	if err := r.RegisterGameHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterFleetHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterTurnHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}
