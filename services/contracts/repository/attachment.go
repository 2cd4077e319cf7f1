package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/backoffice/internal/pkg/models"
	"github.com/fleetdesk/backoffice/services/contracts"
)

// AttachmentRepo implements contracts.AttachmentRepo on PostgreSQL
type AttachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new contract attachment repository
func NewAttachmentRepo(db *sqlx.DB) contracts.AttachmentRepo {
	return &AttachmentRepo{db: db}
}

// FindByAttachmentNo fetches an attachment by its number, (nil, nil) when absent
func (r *AttachmentRepo) FindByAttachmentNo(ctx context.Context, attachmentNo string) (*models.ContractAttachment, error) {
	query := `
		SELECT id, contract_attachment_no, contract_id, status, accepted_at, rejected_at, change_date
		FROM contract_attachments
		WHERE contract_attachment_no = $1
	`

	var attachment models.ContractAttachment
	err := r.db.GetContext(ctx, &attachment, query, attachmentNo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contract attachment: %w", err)
	}

	return &attachment, nil
}

// Create stores a new attachment and fills in its generated id
func (r *AttachmentRepo) Create(ctx context.Context, attachment *models.ContractAttachment) error {
	query := `
		INSERT INTO contract_attachments (contract_attachment_no, contract_id, status)
		VALUES (:contract_attachment_no, :contract_id, :status)
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, attachment)
	if err != nil {
		return fmt.Errorf("failed to insert contract attachment: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&attachment.ID); err != nil {
			return fmt.Errorf("failed to scan attachment id: %w", err)
		}
	}

	return nil
}

// Update persists status fields after an acceptance transition
func (r *AttachmentRepo) Update(ctx context.Context, attachment *models.ContractAttachment) error {
	query := `
		UPDATE contract_attachments
		SET status = :status, accepted_at = :accepted_at,
			rejected_at = :rejected_at, change_date = :change_date
		WHERE id = :id
	`

	if _, err := r.db.NamedExecContext(ctx, query, attachment); err != nil {
		return fmt.Errorf("failed to update contract attachment: %w", err)
	}

	return nil
}

// ListByContract returns a contract's attachments in proposal order
func (r *AttachmentRepo) ListByContract(ctx context.Context, contractID int64) ([]*models.ContractAttachment, error) {
	query := `
		SELECT id, contract_attachment_no, contract_id, status, accepted_at, rejected_at, change_date
		FROM contract_attachments
		WHERE contract_id = $1
		ORDER BY id
	`

	var result []*models.ContractAttachment
	if err := r.db.SelectContext(ctx, &result, query, contractID); err != nil {
		return nil, fmt.Errorf("failed to query contract attachments: %w", err)
	}

	return result, nil
}
