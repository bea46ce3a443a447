package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/finflowhq/finflow_bot/internal/apperrors"
	"github.com/finflowhq/finflow_bot/internal/core/domain"
	portsrepo "github.com/finflowhq/finflow_bot/internal/core/ports/repositories"
	"github.com/finflowhq/finflow_bot/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:                   d.ID,
		Username:             strToPtr(d.Username),
		FirstName:            strToPtr(d.FirstName),
		Tier:                 string(d.Tier),
		TokensUsed:           d.TokensUsed,
		Currency:             d.Currency,
		Theme:                d.Theme,
		Phone:                strToPtr(d.Phone),
		Email:                strToPtr(d.Email),
		NotificationsEnabled: d.NotificationsEnabled,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:                   m.ID,
		Username:             ptrToStr(m.Username),
		FirstName:            ptrToStr(m.FirstName),
		Tier:                 domain.Tier(m.Tier),
		TokensUsed:           m.TokensUsed,
		Currency:             m.Currency,
		Theme:                m.Theme,
		Phone:                ptrToStr(m.Phone),
		Email:                ptrToStr(m.Email),
		NotificationsEnabled: m.NotificationsEnabled,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (r *PgxAccountRepository) EnsureAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO accounts (id, username, first_name, tier, tokens_used, currency, theme, phone, email, notifications_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.Username,
		m.FirstName,
		m.Tier,
		m.TokensUsed,
		m.Currency,
		m.Theme,
		m.Phone,
		m.Email,
		m.NotificationsEnabled,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure account %d: %w", account.ID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT id, username, first_name, tier, tokens_used, currency, theme, phone, email, notifications_enabled, created_at, updated_at
		FROM accounts
		WHERE id = $1;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&m.ID,
		&m.Username,
		&m.FirstName,
		&m.Tier,
		&m.TokensUsed,
		&m.Currency,
		&m.Theme,
		&m.Phone,
		&m.Email,
		&m.NotificationsEnabled,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}

	d := toDomainAccount(m)
	return &d, nil
}

func (r *PgxAccountRepository) UpdateSettings(ctx context.Context, accountID int64, update domain.SettingsUpdate) error {
	setClauses := make([]string, 0, 6)
	args := make([]any, 0, 7)
	argIdx := 1

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if update.Currency != nil {
		addSet("currency", *update.Currency)
	}
	if update.Theme != nil {
		addSet("theme", *update.Theme)
	}
	if update.Phone != nil {
		addSet("phone", *update.Phone)
	}
	if update.Email != nil {
		addSet("email", *update.Email)
	}
	if update.NotificationsEnabled != nil {
		addSet("notifications_enabled", *update.NotificationsEnabled)
	}
	if len(setClauses) == 0 {
		return nil
	}
	addSet("updated_at", time.Now().UTC())

	query := fmt.Sprintf("UPDATE accounts SET %s WHERE id = $%d;", strings.Join(setClauses, ", "), argIdx)
	args = append(args, accountID)

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update settings for account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) UpdateTier(ctx context.Context, accountID int64, tier domain.Tier) error {
	query := `
		UPDATE accounts
		SET tier = $1, updated_at = $2
		WHERE id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, string(tier), time.Now().UTC(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update tier for account %d: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccountRepository) FindAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, username, first_name, tier, tokens_used, currency, theme, phone, email, notifications_enabled, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, limit)
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.ID,
			&m.Username,
			&m.FirstName,
			&m.Tier,
			&m.TokensUsed,
			&m.Currency,
			&m.Theme,
			&m.Phone,
			&m.Email,
			&m.NotificationsEnabled,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}

func strToPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptrToStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
