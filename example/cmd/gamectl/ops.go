package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/example/app"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/additem"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/createcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/movecharacter"
	"github.com/AntonStoeckl/game-platform-go/example/features/command/registeraccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/accountbyid"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/charactersbyaccount"
	"github.com/AntonStoeckl/game-platform-go/example/features/query/inventoryofcharacter"
	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
)

func register(ctx context.Context, bus *dispatch.CommandBus, f flags) response {
	command := registeraccount.BuildCommand(f.username, f.email, f.password, time.Now())
	return fromOutcomeOf(dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, bus, command))
}

func createCharacter(ctx context.Context, bus *dispatch.CommandBus, f flags) (response, error) {
	accountID, err := parseID("account", f.accountID)
	if err != nil {
		return response{}, err
	}

	command := createcharacter.BuildCommand(accountID, f.name, f.class, time.Now())

	return fromOutcomeOf(dispatch.SendWithResult[createcharacter.Command, uuid.UUID](ctx, bus, command)), nil
}

func addItem(ctx context.Context, bus *dispatch.CommandBus, f flags) (response, error) {
	characterID, err := parseID("character", f.characterID)
	if err != nil {
		return response{}, err
	}

	return fromOutcome(bus.Send(ctx, additem.BuildCommand(characterID, f.item, f.quantity, f.properties))), nil
}

func move(ctx context.Context, bus *dispatch.CommandBus, f flags) (response, error) {
	characterID, err := parseID("character", f.characterID)
	if err != nil {
		return response{}, err
	}

	command := movecharacter.BuildCommand(characterID, f.x, f.y)

	return fromOutcomeOf(dispatch.SendWithResult[movecharacter.Command, movecharacter.MoveResult](ctx, bus, command)), nil
}

func account(ctx context.Context, bus *dispatch.QueryBus, f flags) (response, error) {
	accountID, err := parseID("account", f.accountID)
	if err != nil {
		return response{}, err
	}

	query := accountbyid.BuildQuery(accountID)

	return fromOutcomeOf(dispatch.Ask[accountbyid.Query, accountbyid.AccountView](ctx, bus, query)), nil
}

func characters(ctx context.Context, bus *dispatch.QueryBus, f flags) (response, error) {
	accountID, err := parseID("account", f.accountID)
	if err != nil {
		return response{}, err
	}

	query := charactersbyaccount.BuildQuery(accountID)

	return fromOutcomeOf(dispatch.Ask[charactersbyaccount.Query, charactersbyaccount.Characters](ctx, bus, query)), nil
}

func inventory(ctx context.Context, bus *dispatch.QueryBus, f flags) (response, error) {
	characterID, err := parseID("character", f.characterID)
	if err != nil {
		return response{}, err
	}

	query := inventoryofcharacter.BuildQuery(characterID)

	return fromOutcomeOf(dispatch.Ask[inventoryofcharacter.Query, inventoryofcharacter.InventoryView](ctx, bus, query)), nil
}

type playReport struct {
	AccountID   uuid.UUID                          `json:"accountId"`
	CharacterID uuid.UUID                          `json:"characterId"`
	Moves       []movecharacter.MoveResult         `json:"moves"`
	Inventory   inventoryofcharacter.InventoryView `json:"inventory"`
}

// play registers an account, creates a character, hands out a starter kit and walks from
// Haven towards Greenwood. It stops at the first failure.
func play(ctx context.Context, a *app.App) response {
	accountResult := dispatch.SendWithResult[registeraccount.Command, uuid.UUID](ctx, a.Commands,
		registeraccount.BuildCommand("adventurer", "adventurer@example.com", "Sup3rSecret", time.Now()))
	if accountResult.IsFailure() {
		return fromOutcomeOf(accountResult)
	}

	characterResult := dispatch.SendWithResult[createcharacter.Command, uuid.UUID](ctx, a.Commands,
		createcharacter.BuildCommand(accountResult.MustValue(), "Wanderer", core.ClassRanger, time.Now()))
	if characterResult.IsFailure() {
		return fromOutcomeOf(characterResult)
	}

	characterID := characterResult.MustValue()

	for _, kit := range []additem.Command{
		additem.BuildCommand(characterID, "arrow", 120, nil),
		additem.BuildCommand(characterID, "bow", 1, map[string]string{"rarity": "common"}),
		additem.BuildCommand(characterID, "potion", 3, nil),
	} {
		if added := a.Commands.Send(ctx, kit); added.IsFailure() {
			return fromOutcome(added)
		}
	}

	report := playReport{
		AccountID:   accountResult.MustValue(),
		CharacterID: characterID,
		Moves:       make([]movecharacter.MoveResult, 0, 3),
	}

	for _, step := range []core.Position{{X: 8, Y: 2}, {X: 16, Y: 5}, {X: 24, Y: 8}} {
		moved := dispatch.SendWithResult[movecharacter.Command, movecharacter.MoveResult](ctx, a.Commands,
			movecharacter.BuildCommand(characterID, step.X, step.Y))
		if moved.IsFailure() {
			return fromOutcomeOf(moved)
		}

		report.Moves = append(report.Moves, moved.MustValue())
	}

	inventoryResult := dispatch.Ask[inventoryofcharacter.Query, inventoryofcharacter.InventoryView](ctx, a.Queries,
		inventoryofcharacter.BuildQuery(characterID))
	if inventoryResult.IsFailure() {
		return fromOutcomeOf(inventoryResult)
	}

	report.Inventory = inventoryResult.MustValue()

	return response{body: successBody{Status: "success", Value: report}}
}
