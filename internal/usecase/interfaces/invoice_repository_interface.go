package interfaces

import (
	"context"

	"rockstar_services/internal/domain/entities"
)

// IInvoiceRepository is the submission collaborator: a fully-validated draft
// is handed over as an Invoice in a single attempt, and the same repository
// backs the dashboard invoice list.
//
// Create assigns the invoice number when the given ID is empty.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}
