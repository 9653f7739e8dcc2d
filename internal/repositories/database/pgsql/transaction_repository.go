package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackr/finance_tracker_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Kind:          string(d.Kind),
		Amount:        d.Amount,
		Category:      d.Category,
		OccurredAt:    d.OccurredAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Description != "" {
		m.Description = &d.Description
	}
	if d.Counterparty != "" {
		m.Counterparty = &d.Counterparty
	}
	return m
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        m.Amount,
		Category:      m.Category,
		OccurredAt:    m.OccurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	if m.Counterparty != nil {
		d.Counterparty = *m.Counterparty
	}
	return d
}

const transactionColumns = `transaction_id, user_id, kind, amount, category, description, counterparty,
		occurred_at, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, user_id, kind, amount, category, description, counterparty,
            occurred_at, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Category,
		modelTxn.Description,
		modelTxn.Counterparty,
		modelTxn.OccurredAt,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	var modelTxn models.Transaction
	err := r.db.QueryRow(ctx, query, transactionID, userID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.UserID,
		&modelTxn.Kind,
		&modelTxn.Amount,
		&modelTxn.Category,
		&modelTxn.Description,
		&modelTxn.Counterparty,
		&modelTxn.OccurredAt,
		&modelTxn.CreatedAt,
		&modelTxn.CreatedBy,
		&modelTxn.LastUpdatedAt,
		&modelTxn.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	domainTxn := toDomainTransaction(modelTxn)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND occurred_at <= $%d", len(args))
	}
	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}

	if filter.SortAscending {
		query += " ORDER BY occurred_at ASC, created_at ASC;"
	} else {
		query += " ORDER BY occurred_at DESC, created_at DESC;"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.UserID,
			&modelTxn.Kind,
			&modelTxn.Amount,
			&modelTxn.Category,
			&modelTxn.Description,
			&modelTxn.Counterparty,
			&modelTxn.OccurredAt,
			&modelTxn.CreatedAt,
			&modelTxn.CreatedBy,
			&modelTxn.LastUpdatedAt,
			&modelTxn.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, toDomainTransaction(modelTxn))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	return transactions, nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	// Hard delete: records have no correction/audit trail requirement.
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or not owned by user: %w", apperrors.ErrNotFound)
	}
	return nil
}
