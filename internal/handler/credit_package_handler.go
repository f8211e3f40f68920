package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "coachhub/internal/errors"
	"coachhub/internal/service"
)

// CreditPackageHandler handles credit package catalog endpoints.
type CreditPackageHandler struct {
	packageService service.CreditPackageService
}

// NewCreditPackageHandler creates a credit package handler.
func NewCreditPackageHandler(packageService service.CreditPackageService) *CreditPackageHandler {
	return &CreditPackageHandler{packageService: packageService}
}

// CreateCreditPackageRequest represents a credit package creation request.
type CreateCreditPackageRequest struct {
	Name         string          `json:"name" validate:"required"`
	CreditAmount int             `json:"credit_amount" validate:"required,gt=0"`
	Price        decimal.Decimal `json:"price"`
}

// CreditPackageItem is the projected catalog listing entry.
type CreditPackageItem struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	CreditAmount int             `json:"credit_amount"`
	Price        decimal.Decimal `json:"price"`
}

// ListCreditPackages godoc
// @Summary List credit packages
// @Tags credit-package
// @Produce json
// @Success 200 {object} Response
// @Router /credit-package [get]
func (h *CreditPackageHandler) ListCreditPackages(c echo.Context) error {
	pkgs, err := h.packageService.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]CreditPackageItem, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, CreditPackageItem{
			ID:           p.ID,
			Name:         p.Name,
			CreditAmount: p.CreditAmount,
			Price:        p.Price,
		})
	}
	return c.JSON(http.StatusOK, success(items))
}

// CreateCreditPackage godoc
// @Summary Create a credit package
// @Tags credit-package
// @Accept json
// @Produce json
// @Param request body CreateCreditPackageRequest true "Credit package data"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /credit-package [post]
func (h *CreditPackageHandler) CreateCreditPackage(c echo.Context) error {
	var req CreateCreditPackageRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil || req.Price.IsNegative() {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	pkg, err := h.packageService.Create(c.Request().Context(), req.Name, req.CreditAmount, req.Price)
	if err != nil {
		if err == service.ErrDuplicateRecord {
			return apperrors.New(http.StatusConflict, "資料重複")
		}
		return err
	}

	return c.JSON(http.StatusOK, success(pkg))
}

// DeleteCreditPackage godoc
// @Summary Delete a credit package
// @Tags credit-package
// @Produce json
// @Param id path string true "Credit package ID"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string
// @Router /credit-package/{id} [delete]
func (h *CreditPackageHandler) DeleteCreditPackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.New(http.StatusBadRequest, "ID錯誤")
	}

	if err := h.packageService.Delete(c.Request().Context(), id); err != nil {
		if err == service.ErrRecordNotFound {
			return apperrors.New(http.StatusBadRequest, "ID錯誤")
		}
		return err
	}

	return c.JSON(http.StatusOK, success(nil))
}
