package response

import (
	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase"
)

type InvoiceResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:           inv.ID,
		CustomerName: inv.CustomerName,
		Date:         inv.Date.Format("2006-01-02"),
		Amount:       inv.Amount,
		Status:       string(inv.Status),
	}
}

type InvoiceListResponse struct {
	Items     []InvoiceResponse `json:"items"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	PageCount int               `json:"pageCount"`
}

func FromInvoicePage(p usecase.InvoicePage) InvoiceListResponse {
	items := make([]InvoiceResponse, 0, len(p.Items))
	for _, inv := range p.Items {
		items = append(items, FromInvoice(inv))
	}
	return InvoiceListResponse{Items: items, Total: p.Total, Page: p.Page, PageCount: p.PageCount}
}

type UserResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Status: string(u.Status),
	}
}

type UserListResponse struct {
	Items     []UserResponse `json:"items"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	PageCount int            `json:"pageCount"`
}

func FromUserPage(p usecase.UserPage) UserListResponse {
	items := make([]UserResponse, 0, len(p.Items))
	for _, u := range p.Items {
		items = append(items, FromUser(u))
	}
	return UserListResponse{Items: items, Total: p.Total, Page: p.Page, PageCount: p.PageCount}
}
