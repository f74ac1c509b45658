package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"game-catalog/internal/domain"
	"game-catalog/internal/repository"
)

const createAccountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	email TEXT NULL,
	full_name TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	disabled INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_email ON accounts(email) WHERE email IS NOT NULL;
`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAccountsTable); err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}
	return nil
}

// Create inserts the account. The unique index on username makes the
// check-then-write of registration atomic; the loser of a concurrent
// duplicate registration gets ErrDuplicate.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (int64, error) {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (username, email, full_name, password_hash, disabled, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.Username,
		nullableString(account.Email),
		account.FullName,
		account.PasswordHash,
		account.Disabled,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("insert account %q: %w", account.Username, repository.ErrDuplicate)
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("account last insert id: %w", err)
	}
	account.ID = id
	return id, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, email, full_name, password_hash, disabled, created_at, updated_at
FROM accounts
WHERE username = ?`,
		username,
	)
	return scanAccount(row)
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, email, full_name, password_hash, disabled, created_at, updated_at
FROM accounts
WHERE id = ?`,
		id,
	)
	return scanAccount(row)
}

func scanAccount(row interface {
	Scan(dest ...any) error
}) (*domain.Account, error) {
	var (
		account domain.Account
		email   sql.NullString
	)
	if err := row.Scan(
		&account.ID,
		&account.Username,
		&email,
		&account.FullName,
		&account.PasswordHash,
		&account.Disabled,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	account.Email = email.String
	return &account, nil
}

// nullableString maps empty strings to NULL so the partial unique index on
// email only applies to accounts that actually provided one.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
