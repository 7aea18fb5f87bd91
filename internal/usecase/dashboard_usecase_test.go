package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"rockstar_services/internal/domain/entities"
	mock_interfaces "rockstar_services/internal/usecase/interfaces/mocks"
)

func seedInvoices(n int) []entities.Invoice {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	invs := make([]entities.Invoice, 0, n)
	for i := 0; i < n; i++ {
		invs = append(invs, entities.Invoice{
			ID:           fmt.Sprintf("INV-%d", 1000+i),
			CustomerName: fmt.Sprintf("Customer %d", i+1),
			Date:         base.AddDate(0, 0, -i),
			Amount:       fmt.Sprintf("%d.00", 500+i*10),
			Status:       []entities.InvoiceStatus{entities.InvoiceStatusPaid, entities.InvoiceStatusPending, entities.InvoiceStatusDraft}[i%3],
		})
	}
	return invs
}

func newDashboard(t *testing.T, invs []entities.Invoice, users []entities.User) *DashboardUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	invoiceRepo.EXPECT().List(gomock.Any()).Return(invs, nil).AnyTimes()
	userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
	userRepo.EXPECT().List(gomock.Any()).Return(users, nil).AnyTimes()
	return NewDashboardUseCase(invoiceRepo, userRepo)
}

func TestDashboardUseCase_ListInvoices(t *testing.T) {
	ctx := context.Background()

	t.Run("paginates at ten per page", func(t *testing.T) {
		uc := newDashboard(t, seedInvoices(20), nil)

		page, err := uc.ListInvoices(ctx, ListQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 20 || page.PageCount != 2 || len(page.Items) != 10 {
			t.Fatalf("unexpected page: total=%d pages=%d items=%d", page.Total, page.PageCount, len(page.Items))
		}
		if page.Items[0].ID != "INV-1000" {
			t.Fatalf("expected INV-1000 first, got %s", page.Items[0].ID)
		}

		second, err := uc.ListInvoices(ctx, ListQuery{Page: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(second.Items) != 10 || second.Items[0].ID != "INV-1010" {
			t.Fatalf("unexpected second page: %+v", second.Items[0])
		}
	})

	t.Run("filters by id and customer name", func(t *testing.T) {
		uc := newDashboard(t, seedInvoices(20), nil)

		byID, err := uc.ListInvoices(ctx, ListQuery{Search: "inv-1007"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if byID.Total != 1 || byID.Items[0].ID != "INV-1007" {
			t.Fatalf("unexpected result: %+v", byID)
		}

		byName, err := uc.ListInvoices(ctx, ListQuery{Search: "customer 2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// "Customer 2" and "Customer 20".
		if byName.Total != 2 {
			t.Fatalf("expected 2 matches, got %d", byName.Total)
		}
	})

	t.Run("sorts by amount descending", func(t *testing.T) {
		uc := newDashboard(t, seedInvoices(20), nil)

		page, err := uc.ListInvoices(ctx, ListQuery{Sort: "amount", Dir: "desc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Items[0].Amount != "690.00" {
			t.Fatalf("expected highest amount first, got %s", page.Items[0].Amount)
		}
	})

	t.Run("amount sorts numerically not lexically", func(t *testing.T) {
		uc := newDashboard(t, []entities.Invoice{
			{ID: "INV-1", Amount: "950.00"},
			{ID: "INV-2", Amount: "1000.00"},
		}, nil)

		page, err := uc.ListInvoices(ctx, ListQuery{Sort: "amount", Dir: "asc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Items[0].ID != "INV-1" {
			t.Fatalf("expected 950.00 before 1000.00, got %+v", page.Items)
		}
	})

	t.Run("page index clamps to last page", func(t *testing.T) {
		uc := newDashboard(t, seedInvoices(15), nil)
		page, err := uc.ListInvoices(ctx, ListQuery{Page: 99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Page != 1 || len(page.Items) != 5 {
			t.Fatalf("expected clamped last page, got page=%d items=%d", page.Page, len(page.Items))
		}
	})
}

func TestDashboardUseCase_ListUsers(t *testing.T) {
	ctx := context.Background()
	users := []entities.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: entities.UserRoleAdmin, Status: entities.UserStatusActive},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: entities.UserRoleEmployee, Status: entities.UserStatusInactive},
		{ID: 3, Name: "Carol", Email: "carol@example.com", Role: entities.UserRoleManager, Status: entities.UserStatusActive},
	}

	t.Run("filters across name email and role", func(t *testing.T) {
		uc := newDashboard(t, nil, users)

		byRole, err := uc.ListUsers(ctx, ListQuery{Search: "manager"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if byRole.Total != 1 || byRole.Items[0].Name != "Carol" {
			t.Fatalf("unexpected result: %+v", byRole)
		}
	})

	t.Run("sorts by name descending", func(t *testing.T) {
		uc := newDashboard(t, nil, users)

		page, err := uc.ListUsers(ctx, ListQuery{Sort: "name", Dir: "desc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Items[0].Name != "Carol" {
			t.Fatalf("expected Carol first, got %s", page.Items[0].Name)
		}
	})
}
