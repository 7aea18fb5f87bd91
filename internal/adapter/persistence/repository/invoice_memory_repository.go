package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase/interfaces"
)

// InvoiceMemoryRepository is the in-process invoice store used when no
// DynamoDB backend is configured. It starts with the demo dataset the
// dashboard renders out of the box.
type InvoiceMemoryRepository struct {
	mu       sync.RWMutex
	invoices []entities.Invoice
	nextNum  int
}

var _ interfaces.IInvoiceRepository = (*InvoiceMemoryRepository)(nil)

func NewInvoiceMemoryRepository() *InvoiceMemoryRepository {
	seed := seedInvoices()
	return &InvoiceMemoryRepository{
		invoices: seed,
		nextNum:  firstInvoiceNumber + len(seed),
	}
}

// NewEmptyInvoiceMemoryRepository starts without seed data.
func NewEmptyInvoiceMemoryRepository() *InvoiceMemoryRepository {
	return &InvoiceMemoryRepository{nextNum: firstInvoiceNumber}
}

func (r *InvoiceMemoryRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inv.ID == "" {
		inv.ID = invoiceIDPrefix + strconv.Itoa(r.nextNum)
		r.nextNum++
	}
	r.invoices = append(r.invoices, inv)
	return inv, nil
}

func (r *InvoiceMemoryRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func seedInvoices() []entities.Invoice {
	day := func(d int) time.Time {
		return time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}
	rows := []struct {
		name   string
		days   int
		amount string
		status entities.InvoiceStatus
	}{
		{"John Carter", 0, "2450.00", entities.InvoiceStatusPaid},
		{"Maria Lopez", 2, "1780.50", entities.InvoiceStatusPending},
		{"Robert Chen", 4, "3920.00", entities.InvoiceStatusPaid},
		{"Linda Okafor", 6, "640.00", entities.InvoiceStatusDraft},
		{"James Whitfield", 9, "5100.00", entities.InvoiceStatusPending},
		{"Sofia Ramirez", 11, "2275.25", entities.InvoiceStatusPaid},
		{"David Kim", 13, "890.00", entities.InvoiceStatusPaid},
		{"Emily Novak", 15, "4310.00", entities.InvoiceStatusPending},
		{"Michael Brandt", 18, "1560.75", entities.InvoiceStatusDraft},
		{"Anna Petrova", 20, "2999.99", entities.InvoiceStatusPaid},
		{"Carlos Mendes", 23, "735.00", entities.InvoiceStatusPending},
		{"Grace Liu", 25, "6125.00", entities.InvoiceStatusPaid},
		{"Thomas Reed", 27, "1845.00", entities.InvoiceStatusPaid},
		{"Nadia Hassan", 30, "2580.40", entities.InvoiceStatusPending},
		{"Peter Vogel", 32, "950.00", entities.InvoiceStatusDraft},
		{"Olivia Bennett", 34, "3470.00", entities.InvoiceStatusPaid},
		{"Hiroshi Tanaka", 37, "1210.00", entities.InvoiceStatusPending},
		{"Fatima Alvi", 39, "4890.60", entities.InvoiceStatusPaid},
		{"George Mason", 41, "675.50", entities.InvoiceStatusPending},
		{"Isabella Rossi", 44, "2340.00", entities.InvoiceStatusPaid},
	}

	invoices := make([]entities.Invoice, 0, len(rows))
	for i, row := range rows {
		invoices = append(invoices, entities.Invoice{
			ID:           invoiceIDPrefix + strconv.Itoa(firstInvoiceNumber+i),
			CustomerName: row.name,
			Date:         day(row.days),
			Amount:       row.amount,
			Status:       row.status,
		})
	}
	return invoices
}
