// internal/repository/interfaces.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fiscal-service/internal/model"
)

// OperationRepository persists the printer operation journal
type OperationRepository interface {
	Create(ctx context.Context, operation *model.PrinterOperation) error
	Update(ctx context.Context, operation *model.PrinterOperation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.PrinterOperation, error)
	List(ctx context.Context, limit, offset int) ([]*model.PrinterOperation, error)
	DeleteOldOperations(ctx context.Context, before time.Time) (int64, error)
}
