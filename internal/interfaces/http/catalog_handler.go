package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/usecase"
)

// CatalogHandler exposes companies, locations, categories, items, customers
// and suppliers.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	company, err := h.uc.CreateCompany(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCompanyResponse(company))
}

func (h *CatalogHandler) GetCompany(c *fiber.Ctx) error {
	company, err := h.uc.GetCompany(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCompanyResponse(company))
}

func (h *CatalogHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.uc.ListCompanies()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		out = append(out, dto.ToCompanyResponse(company))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	loc, err := h.uc.CreateLocation(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToLocationResponse(loc))
}

func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	locs, err := h.uc.ListLocations(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LocationResponse, 0, len(locs))
	for _, loc := range locs {
		out = append(out, dto.ToLocationResponse(loc))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	cat, err := h.uc.CreateCategory(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCategoryResponse(cat))
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.uc.ListCategories(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, dto.ToCategoryResponse(cat))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	item, err := h.uc.CreateItem(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemResponse(item))
}

func (h *CatalogHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToItemResponse(item))
}

func (h *CatalogHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	item, err := h.uc.UpdateItem(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToItemResponse(item))
}

func (h *CatalogHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.uc.ListItems(GetCompanyID(c), c.Query("category_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToItemResponse(item))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	cust, err := h.uc.CreateCustomer(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCustomerResponse(cust))
}

func (h *CatalogHandler) GetCustomer(c *fiber.Ctx) error {
	cust, err := h.uc.GetCustomer(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToCustomerResponse(cust))
}

func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	custs, err := h.uc.ListCustomers(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CustomerResponse, 0, len(custs))
	for _, cust := range custs {
		out = append(out, dto.ToCustomerResponse(cust))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sup, err := h.uc.CreateSupplier(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSupplierResponse(sup))
}

func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	sups, err := h.uc.ListSuppliers(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SupplierResponse, 0, len(sups))
	for _, sup := range sups {
		out = append(out, dto.ToSupplierResponse(sup))
	}
	return c.JSON(out)
}
