// internal/repository/operation_repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fiscal-service/internal/database"
	"fiscal-service/internal/model"
)

// operationRepository implements OperationRepository
type operationRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *database.DB, logger *zap.Logger) OperationRepository {
	return &operationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new journal entry
func (r *operationRepository) Create(ctx context.Context, operation *model.PrinterOperation) error {
	query := `
		INSERT INTO printer_operations (
			id, operation_type, operation_data, status, started_at, request_id
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		operation.ID, operation.OperationType, operation.OperationData,
		operation.Status, operation.StartedAt, operation.RequestID,
	)

	if err != nil {
		r.logger.Error("Failed to create operation", zap.Error(err))
		return fmt.Errorf("failed to create operation: %w", err)
	}

	return nil
}

// Update stores the outcome of a journal entry
func (r *operationRepository) Update(ctx context.Context, operation *model.PrinterOperation) error {
	query := `
		UPDATE printer_operations SET
			status = $2, completed_at = $3, duration_ms = $4,
			error_message = $5, printer_code = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		operation.ID, operation.Status, operation.CompletedAt,
		operation.DurationMs, operation.ErrorMessage, operation.PrinterCode,
	)

	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("operation not found with id: %s", operation.ID)
	}

	return nil
}

// GetByID retrieves one journal entry
func (r *operationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PrinterOperation, error) {
	query := `
		SELECT id, operation_type, operation_data, status, started_at,
			   completed_at, duration_ms, error_message, printer_code,
			   request_id, created_at
		FROM printer_operations WHERE id = $1
	`

	operation := &model.PrinterOperation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&operation.ID, &operation.OperationType, &operation.OperationData,
		&operation.Status, &operation.StartedAt, &operation.CompletedAt,
		&operation.DurationMs, &operation.ErrorMessage, &operation.PrinterCode,
		&operation.RequestID, &operation.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("operation not found with id: %s", id)
		}
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	return operation, nil
}

// List returns recent journal entries, newest first
func (r *operationRepository) List(ctx context.Context, limit, offset int) ([]*model.PrinterOperation, error) {
	query := `
		SELECT id, operation_type, operation_data, status, started_at,
			   completed_at, duration_ms, error_message, printer_code,
			   request_id, created_at
		FROM printer_operations
		ORDER BY started_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var operations []*model.PrinterOperation
	for rows.Next() {
		operation := &model.PrinterOperation{}
		err := rows.Scan(
			&operation.ID, &operation.OperationType, &operation.OperationData,
			&operation.Status, &operation.StartedAt, &operation.CompletedAt,
			&operation.DurationMs, &operation.ErrorMessage, &operation.PrinterCode,
			&operation.RequestID, &operation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		operations = append(operations, operation)
	}

	return operations, rows.Err()
}

// DeleteOldOperations removes journal entries older than the given time
func (r *operationRepository) DeleteOldOperations(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM printer_operations WHERE started_at < $1`

	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old operations: %w", err)
	}

	return result.RowsAffected()
}
