package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/awards"
)

// AccountRepo implements awards.AccountRepo on PostgreSQL
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new awards account repository
func NewAccountRepo(db *sqlx.DB) awards.AccountRepo {
	return &AccountRepo{db: db}
}

// FindByClientID fetches the client's account, (nil, nil) when absent
func (r *AccountRepo) FindByClientID(ctx context.Context, clientID int64) (*models.AwardsAccount, error) {
	query := `
		SELECT id, client_id, is_active, transactions, date
		FROM awards_accounts
		WHERE client_id = $1
	`

	var account models.AwardsAccount
	err := r.db.GetContext(ctx, &account, query, clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query awards account: %w", err)
	}

	return &account, nil
}

// Save creates or updates the client's account
func (r *AccountRepo) Save(ctx context.Context, account *models.AwardsAccount) error {
	query := `
		INSERT INTO awards_accounts (client_id, is_active, transactions, date)
		VALUES (:client_id, :is_active, :transactions, :date)
		ON CONFLICT (client_id) DO UPDATE
		SET is_active = EXCLUDED.is_active, transactions = EXCLUDED.transactions
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, account)
	if err != nil {
		return fmt.Errorf("failed to save awards account: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&account.ID); err != nil {
			return fmt.Errorf("failed to scan awards account id: %w", err)
		}
	}

	return nil
}

// FindAllMilesBy lists the client's miles grants, oldest first
func (r *AccountRepo) FindAllMilesBy(ctx context.Context, clientID int64) ([]*models.AwardedMiles, error) {
	query := `
		SELECT id, account_id, client_id, transit_id, miles, date, expires_at, special
		FROM awarded_miles
		WHERE client_id = $1
		ORDER BY date, id
	`

	var result []*models.AwardedMiles
	if err := r.db.SelectContext(ctx, &result, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to query awarded miles: %w", err)
	}

	return result, nil
}

// SaveMiles stores a new miles grant
func (r *AccountRepo) SaveMiles(ctx context.Context, miles *models.AwardedMiles) error {
	query := `
		INSERT INTO awarded_miles (account_id, client_id, transit_id, miles, date, expires_at, special)
		VALUES (:account_id, :client_id, :transit_id, :miles, :date, :expires_at, :special)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, miles)
	if err != nil {
		return fmt.Errorf("failed to save awarded miles: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&miles.ID); err != nil {
			return fmt.Errorf("failed to scan awarded miles id: %w", err)
		}
	}

	return nil
}
