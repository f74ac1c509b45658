package service

import (
	"context"
	"errors"

	"game-catalog/internal/domain"
	"game-catalog/internal/repository"
)

// ErrGameNotFound is returned for catalog lookups that match nothing.
var ErrGameNotFound = errors.New("game not found")

// GameService coordinates catalog operations backed by the game repository.
type GameService interface {
	CreateGame(ctx context.Context, game *domain.Game) (*domain.Game, error)
	GetGame(ctx context.Context, id int64) (*domain.Game, error)
	ListGames(ctx context.Context, page, pageSize int) ([]domain.Game, error)
	UpdateGame(ctx context.Context, game *domain.Game) (*domain.Game, error)
	DeleteGame(ctx context.Context, id int64) error
	SeedDefaults(ctx context.Context) error
}

type gameService struct {
	games repository.GameRepository
}

func NewGameService(games repository.GameRepository) GameService {
	return &gameService{games: games}
}

func (s *gameService) CreateGame(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if _, err := s.games.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *gameService) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	game, err := s.games.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

// ListGames returns one page of the catalog ordered by id. Pages are
// 1-based; page and pageSize below 1 are clamped to the defaults.
func (s *gameService) ListGames(ctx context.Context, page, pageSize int) ([]domain.Game, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.games.List(ctx, pageSize, (page-1)*pageSize)
}

func (s *gameService) UpdateGame(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	if err := s.games.Update(ctx, game); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id int64) error {
	if err := s.games.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	return nil
}

// SeedDefaults inserts the starter catalog on an empty table so a fresh
// deployment has data to browse.
func (s *gameService) SeedDefaults(ctx context.Context) error {
	count, err := s.games.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range defaultGames {
		game := defaultGames[i]
		if _, err := s.games.Create(ctx, &game); err != nil {
			return err
		}
	}
	return nil
}

var defaultGames = []domain.Game{
	{
		Title:         "Halo Infinite",
		Genre:         "FPS",
		Platform:      "Xbox, PC",
		ReleaseDate:   "2021-12-08",
		Developer:     "343 Industries",
		Publisher:     "Xbox Game Studios",
		Rating:        "M",
		Description:   "The legendary Halo series returns with the most expansive Master Chief campaign yet.",
		CoverImageURL: "https://upload.wikimedia.org/wikipedia/en/1/14/Halo_Infinite.png",
	},
	{
		Title:         "Mass Effect",
		Genre:         "Action RPG",
		Platform:      "Xbox 360, PC, PlayStation 3",
		ReleaseDate:   "2007-11-20",
		Developer:     "BioWare",
		Publisher:     "Microsoft Game Studios, Electronic Arts",
		Rating:        "M",
		Description:   "Mass Effect is a sci-fi action role-playing game where players assume the role of Commander Shepard, leading a team across the galaxy to stop an ancient threat known as the Reapers.",
		CoverImageURL: "https://upload.wikimedia.org/wikipedia/en/8/80/MassEffectCover.png",
	},
	{
		Title:         "The Witcher 3: Wild Hunt",
		Genre:         "Action RPG",
		Platform:      "PC, PlayStation 4, Xbox One, Nintendo Switch",
		ReleaseDate:   "2015-05-19",
		Developer:     "CD Projekt Red",
		Publisher:     "CD Projekt",
		Rating:        "M",
		Description:   "The Witcher 3: Wild Hunt is an open-world action RPG that follows Geralt of Rivia, a monster hunter, as he searches for his adopted daughter in a war-torn world filled with dangerous creatures and political intrigue.",
		CoverImageURL: "https://upload.wikimedia.org/wikipedia/en/0/0c/Witcher_3_cover_art.jpg",
	},
}
