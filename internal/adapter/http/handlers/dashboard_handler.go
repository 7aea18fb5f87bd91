package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	response "rockstar_services/internal/adapter/http/dto/response"
	"rockstar_services/internal/usecase"
	"rockstar_services/pkg"
)

// DashboardHandler serves the administrative invoice and user tables.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) ListInvoices(c *gin.Context) {
	page, err := h.usecase.ListInvoices(c.Request.Context(), listQueryFrom(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoicePage(page))
}

func (h *DashboardHandler) ListUsers(c *gin.Context) {
	page, err := h.usecase.ListUsers(c.Request.Context(), listQueryFrom(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUserPage(page))
}

// listQueryFrom reads the table state from the query string. Bad page values
// fall back to the first page rather than erroring.
func listQueryFrom(c *gin.Context) usecase.ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	dir := strings.ToLower(c.DefaultQuery("dir", "asc"))
	if dir != "desc" {
		dir = "asc"
	}
	return usecase.ListQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Dir:    dir,
		Page:   page,
	}
}
