package usecase

import (
	"context"
	"sort"
	"strings"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/domain/money"
	"rockstar_services/internal/usecase/interfaces"
)

// DefaultPageSize matches the dashboard tables' fixed page size.
const DefaultPageSize = 10

// ListQuery is the client-side table state: substring filter, sort column
// and direction, and a zero-based page index.
type ListQuery struct {
	Search string
	Sort   string
	Dir    string // "asc" or "desc"
	Page   int
}

type InvoicePage struct {
	Items     []entities.Invoice `json:"items"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PageCount int                `json:"pageCount"`
}

type UserPage struct {
	Items     []entities.User `json:"items"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	PageCount int             `json:"pageCount"`
}

// IDashboardUseCase serves the two administrative list views.

type IDashboardUseCase interface {
	ListInvoices(ctx context.Context, q ListQuery) (InvoicePage, error)
	ListUsers(ctx context.Context, q ListQuery) (UserPage, error)
}

type DashboardUseCase struct {
	invoices interfaces.IInvoiceRepository
	users    interfaces.IUserRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(invoices interfaces.IInvoiceRepository, users interfaces.IUserRepository) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, users: users}
}

func (u *DashboardUseCase) ListInvoices(ctx context.Context, q ListQuery) (InvoicePage, error) {
	all, err := u.invoices.List(ctx)
	if err != nil {
		return InvoicePage{}, err
	}

	filtered := all[:0:0]
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, inv := range all {
		if term == "" ||
			strings.Contains(strings.ToLower(inv.ID), term) ||
			strings.Contains(strings.ToLower(inv.CustomerName), term) {
			filtered = append(filtered, inv)
		}
	}

	sortInvoices(filtered, q.Sort, q.Dir)

	page, pageCount := clampPage(q.Page, len(filtered))
	return InvoicePage{
		Items:     pageSlice(filtered, page),
		Total:     len(filtered),
		Page:      page,
		PageCount: pageCount,
	}, nil
}

func (u *DashboardUseCase) ListUsers(ctx context.Context, q ListQuery) (UserPage, error) {
	all, err := u.users.List(ctx)
	if err != nil {
		return UserPage{}, err
	}

	filtered := all[:0:0]
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, usr := range all {
		if term == "" ||
			strings.Contains(strings.ToLower(usr.Name), term) ||
			strings.Contains(strings.ToLower(usr.Email), term) ||
			strings.Contains(strings.ToLower(string(usr.Role)), term) {
			filtered = append(filtered, usr)
		}
	}

	sortUsers(filtered, q.Sort, q.Dir)

	page, pageCount := clampPage(q.Page, len(filtered))
	return UserPage{
		Items:     pageSlice(filtered, page),
		Total:     len(filtered),
		Page:      page,
		PageCount: pageCount,
	}, nil
}

func sortInvoices(invs []entities.Invoice, column, dir string) {
	var less func(a, b entities.Invoice) bool
	switch column {
	case "id":
		less = func(a, b entities.Invoice) bool { return a.ID < b.ID }
	case "customerName":
		less = func(a, b entities.Invoice) bool { return a.CustomerName < b.CustomerName }
	case "date":
		less = func(a, b entities.Invoice) bool { return a.Date.Before(b.Date) }
	case "amount":
		less = func(a, b entities.Invoice) bool { return amountLess(a.Amount, b.Amount) }
	case "status":
		less = func(a, b entities.Invoice) bool { return a.Status < b.Status }
	default:
		return
	}
	sort.SliceStable(invs, func(i, j int) bool {
		if dir == "desc" {
			return less(invs[j], invs[i])
		}
		return less(invs[i], invs[j])
	})
}

func sortUsers(users []entities.User, column, dir string) {
	var less func(a, b entities.User) bool
	switch column {
	case "id":
		less = func(a, b entities.User) bool { return a.ID < b.ID }
	case "name":
		less = func(a, b entities.User) bool { return a.Name < b.Name }
	case "email":
		less = func(a, b entities.User) bool { return a.Email < b.Email }
	case "role":
		less = func(a, b entities.User) bool { return a.Role < b.Role }
	case "status":
		less = func(a, b entities.User) bool { return a.Status < b.Status }
	default:
		return
	}
	sort.SliceStable(users, func(i, j int) bool {
		if dir == "desc" {
			return less(users[j], users[i])
		}
		return less(users[i], users[j])
	})
}

func amountLess(a, b string) bool {
	da, okA := money.Parse(a)
	db, okB := money.Parse(b)
	if okA && okB {
		return da.LessThan(db)
	}
	return a < b
}

func clampPage(page, total int) (int, int) {
	pageCount := (total + DefaultPageSize - 1) / DefaultPageSize
	if page < 0 {
		page = 0
	}
	if pageCount > 0 && page >= pageCount {
		page = pageCount - 1
	}
	return page, pageCount
}

func pageSlice[T any](items []T, page int) []T {
	start := page * DefaultPageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+DefaultPageSize, len(items))
	return items[start:end]
}
