package character

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/totegamma/chronicle/core"
)

type service struct {
	repo Repository
}

// NewService creates a new character service
func NewService(repo Repository) core.CharacterService {
	return &service{repo}
}

func normalize(character core.Character) (core.Character, error) {
	if character.Type == "" {
		character.Type = core.CharacterTypeNPC
	}
	if !slices.Contains(core.CharacterTypes, character.Type) {
		return character, core.NewErrorInvalidArgument(fmt.Sprintf("unknown character type: %s", character.Type))
	}
	character.Tags = core.NormalizeTags(character.Tags)
	return character, nil
}

// Count returns the count number of characters
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

// List returns the whole roster
func (s *service) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.List")
	defer span.End()

	return s.repo.List(ctx)
}

// Create validates and stores a new character
func (s *service) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Create")
	defer span.End()

	character, err := normalize(character)
	if err != nil {
		return core.Character{}, err
	}

	return s.repo.Create(ctx, character)
}

// Update replaces an existing character
func (s *service) Update(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Update")
	defer span.End()

	character, err := normalize(character)
	if err != nil {
		return core.Character{}, err
	}

	return s.repo.Update(ctx, character)
}

// Delete deletes a character
func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Character.Service.Delete")
	defer span.End()

	return s.repo.Delete(ctx, id)
}
