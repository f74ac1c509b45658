package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"game-catalog/internal/domain"
	"game-catalog/internal/repository"
)

const createGamesTable = `
CREATE TABLE IF NOT EXISTS games (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL DEFAULT '',
	genre TEXT NOT NULL DEFAULT '',
	platform TEXT NOT NULL DEFAULT '',
	release_date TEXT NOT NULL DEFAULT '',
	developer TEXT NOT NULL DEFAULT '',
	publisher TEXT NOT NULL DEFAULT '',
	rating TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	cover_image_url TEXT NOT NULL DEFAULT ''
);
`

type GameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createGamesTable); err != nil {
		return fmt.Errorf("create games table: %w", err)
	}
	return nil
}

func (r *GameRepository) Create(ctx context.Context, game *domain.Game) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO games (title, genre, platform, release_date, developer, publisher, rating, description, cover_image_url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		game.Title,
		game.Genre,
		game.Platform,
		game.ReleaseDate,
		game.Developer,
		game.Publisher,
		game.Rating,
		game.Description,
		game.CoverImageURL,
	)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("game last insert id: %w", err)
	}
	game.ID = id
	return id, nil
}

func (r *GameRepository) Update(ctx context.Context, game *domain.Game) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE games
SET title = ?, genre = ?, platform = ?, release_date = ?, developer = ?, publisher = ?, rating = ?, description = ?, cover_image_url = ?
WHERE id = ?`,
		game.Title,
		game.Genre,
		game.Platform,
		game.ReleaseDate,
		game.Developer,
		game.Publisher,
		game.Rating,
		game.Description,
		game.CoverImageURL,
		game.ID,
	)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update game rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete game rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *GameRepository) Get(ctx context.Context, id int64) (*domain.Game, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, genre, platform, release_date, developer, publisher, rating, description, cover_image_url
FROM games
WHERE id = ?`,
		id,
	)

	var game domain.Game
	if err := scanGame(row.Scan, &game); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan game: %w", err)
	}
	return &game, nil
}

func (r *GameRepository) List(ctx context.Context, limit, offset int) ([]domain.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, genre, platform, release_date, developer, publisher, rating, description, cover_image_url
FROM games
ORDER BY id
LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var game domain.Game
		if err := scanGame(rows.Scan, &game); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return games, nil
}

func (r *GameRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return count, nil
}

func scanGame(scan func(dest ...any) error, game *domain.Game) error {
	return scan(
		&game.ID,
		&game.Title,
		&game.Genre,
		&game.Platform,
		&game.ReleaseDate,
		&game.Developer,
		&game.Publisher,
		&game.Rating,
		&game.Description,
		&game.CoverImageURL,
	)
}
