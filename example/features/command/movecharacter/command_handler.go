package movecharacter

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/dispatch/behaviors"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Store defines the repository operations needed by the CommandHandler.
type Store interface {
	CharacterByID(ctx context.Context, id core.CharacterID) (core.Character, error)
	UpdateCharacter(ctx context.Context, character core.Character) error
}

// CommandHandler runs the Load -> Decide -> Save workflow for Command and rolls for encounters.
type CommandHandler struct {
	store   Store
	roller  core.Roller
	maxStep float64
}

// NewCommandHandler creates a new CommandHandler.
// maxStep is the largest distance a character can travel with one command.
func NewCommandHandler(store Store, roller core.Roller, maxStep float64) CommandHandler {
	return CommandHandler{
		store:   store,
		roller:  roller,
		maxStep: maxStep,
	}
}

// Handle moves the character and reports where it arrived.
func (h CommandHandler) Handle(ctx context.Context, command Command) (outcome.Of[MoveResult], error) {
	characterExists := true

	character, err := h.store.CharacterByID(ctx, command.CharacterID)
	if errors.Is(err, core.ErrNotFound) {
		characterExists = false
	} else if err != nil {
		return outcome.Of[MoveResult]{}, err
	}

	result := Decide(characterExists, character, command, h.maxStep)
	if result.IsFailure() {
		return outcome.FailureOf[MoveResult](result.Reason), nil
	}

	if !result.HasChangeToSave() {
		return outcome.SuccessOf(h.arrivedAt(character.Position, false))
	}

	if err = h.store.UpdateCharacter(ctx, result.Change); err != nil {
		return outcome.Of[MoveResult]{}, err
	}

	return outcome.SuccessOf(h.arrivedAt(result.Change.Position, true))
}

func (h CommandHandler) arrivedAt(p core.Position, roll bool) MoveResult {
	moved := MoveResult{Position: p}

	if region, ok := core.RegionAt(p); ok {
		moved.Region = region.Code
	}

	if roll {
		moved.Encounter = core.RollEncounter(h.roller, core.EncounterChanceAt(p))
	}

	return moved
}

// Module registers the handler and its input validation.
func Module(handler CommandHandler) dispatch.Module {
	return dispatch.ModuleFunc(func(b *dispatch.Builder) error {
		dispatch.RegisterCommandResultHandler[Command, MoveResult](b, handler)
		dispatch.RegisterCommandResultBehavior[Command, MoveResult](b, behaviors.ValidateRequest[Command, MoveResult](NewValidator()))

		return nil
	})
}
