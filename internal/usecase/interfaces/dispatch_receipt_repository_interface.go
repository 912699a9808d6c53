package interfaces

import (
	"context"

	"fieldops/internal/domain/entities"
)

// IDispatchReceiptRepository abstracts DynamoDB persistence for DispatchReceipt.
//
// Receipts are write-after-success audit records: the workflow writes one per
// successful dispatch and the dashboard reads them back per job.

type IDispatchReceiptRepository interface {
	Create(ctx context.Context, r entities.DispatchReceipt) (entities.DispatchReceipt, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.DispatchReceipt, error)
}
