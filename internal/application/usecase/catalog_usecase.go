package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// Standard GST slabs.
var validGSTRates = map[string]bool{"0": true, "5": true, "12": true, "18": true, "28": true}

// CatalogUseCase implements CRUD over the master data: companies, locations,
// categories, items, customers and suppliers. Everything except companies is
// tenant-scoped.
type CatalogUseCase struct {
	companyRepo  repository.CompanyRepository
	locationRepo repository.LocationRepository
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
}

// NewCatalogUseCase builds the catalog use case.
func NewCatalogUseCase(
	companyRepo repository.CompanyRepository,
	locationRepo repository.LocationRepository,
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		companyRepo:  companyRepo,
		locationRepo: locationRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateCompany registers a new tenant. GSTIN must look like a 15-char GST id.
func (uc *CatalogUseCase) CreateCompany(req dto.CreateCompanyRequest) (*entity.Company, error) {
	if req.Name == "" || len(req.GSTIN) != 15 || req.State == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      req.Name,
		GSTIN:     req.GSTIN,
		PAN:       req.PAN,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// GetCompany returns one company.
func (uc *CatalogUseCase) GetCompany(id string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// ListCompanies returns all tenants (super admin only, enforced at the router).
func (uc *CatalogUseCase) ListCompanies() ([]*entity.Company, error) {
	return uc.companyRepo.List()
}

// CreateLocation adds a store or warehouse to the company.
func (uc *CatalogUseCase) CreateLocation(companyID string, req dto.CreateLocationRequest) (*entity.Location, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	loc := &entity.Location{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Phone:       req.Phone,
		IsWarehouse: req.IsWarehouse,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return loc, nil
}

// ListLocations returns the company's locations.
func (uc *CatalogUseCase) ListLocations(companyID string) ([]*entity.Location, error) {
	return uc.locationRepo.List(companyID)
}

// CreateCategory adds an item category. A parent, when given, must belong to
// the same company.
func (uc *CatalogUseCase) CreateCategory(companyID string, req dto.CreateCategoryRequest) (*entity.ItemCategory, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.ParentCategoryID != "" {
		parent, err := uc.categoryRepo.GetByID(req.ParentCategoryID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	cat := &entity.ItemCategory{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: req.ParentCategoryID,
		IsActive:         true,
		CreatedAt:        time.Now(),
	}
	if err := uc.categoryRepo.Create(cat); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

// ListCategories returns the company's categories.
func (uc *CatalogUseCase) ListCategories(companyID string) ([]*entity.ItemCategory, error) {
	return uc.categoryRepo.List(companyID)
}

// CreateItem adds an item to the catalog. SKU uniqueness per company is
// enforced by the store and surfaces as ErrDuplicate.
func (uc *CatalogUseCase) CreateItem(companyID string, req dto.CreateItemRequest) (*entity.Item, error) {
	if req.Name == "" || req.SKU == "" || !validGSTRates[req.GSTRate.String()] {
		return nil, domain.ErrInvalidInput
	}
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if req.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           req.Name,
		Description:    req.Description,
		SKU:            req.SKU,
		HSNCode:        req.HSNCode,
		CategoryID:     req.CategoryID,
		Unit:           req.Unit,
		GSTRate:        req.GSTRate,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		MinStockLevel:  req.MinStockLevel,
		MaxStockLevel:  req.MaxStockLevel,
		IsBatchTracked: req.IsBatchTracked,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// GetItem returns one item scoped to the company.
func (uc *CatalogUseCase) GetItem(companyID, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// UpdateItem patches the mutable item fields. SKU and batch tracking are
// immutable after creation; stock and movements reference them.
func (uc *CatalogUseCase) UpdateItem(companyID, id string, req dto.UpdateItemRequest) (*entity.Item, error) {
	item, err := uc.GetItem(companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.HSNCode != "" {
		item.HSNCode = req.HSNCode
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		item.CategoryID = req.CategoryID
	}
	if !req.GSTRate.IsZero() {
		if !validGSTRates[req.GSTRate.String()] {
			return nil, domain.ErrInvalidInput
		}
		item.GSTRate = req.GSTRate
	}
	if !req.PurchasePrice.IsZero() {
		if req.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.PurchasePrice = req.PurchasePrice
	}
	if !req.SellingPrice.IsZero() {
		if req.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.SellingPrice = req.SellingPrice
	}
	if !req.MinStockLevel.IsZero() {
		item.MinStockLevel = req.MinStockLevel
	}
	if !req.MaxStockLevel.IsZero() {
		item.MaxStockLevel = req.MaxStockLevel
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

// ListItems returns the company's items, optionally filtered by category.
func (uc *CatalogUseCase) ListItems(companyID, categoryID string) ([]*entity.Item, error) {
	return uc.itemRepo.List(repository.ItemFilter{CompanyID: companyID, CategoryID: categoryID})
}

// CreateCustomer adds a customer.
func (uc *CatalogUseCase) CreateCustomer(companyID string, req dto.CreateCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" || req.CreditLimit.IsNegative() || req.CreditDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		GSTIN:           req.GSTIN,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		State:           req.State,
		Pincode:         req.Pincode,
		CreditLimit:     req.CreditLimit,
		CreditDays:      req.CreditDays,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// GetCustomer returns one customer scoped to the company.
func (uc *CatalogUseCase) GetCustomer(companyID, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// ListCustomers returns the company's customers.
func (uc *CatalogUseCase) ListCustomers(companyID string) ([]*entity.Customer, error) {
	return uc.customerRepo.List(companyID)
}

// CreateSupplier adds a supplier.
func (uc *CatalogUseCase) CreateSupplier(companyID string, req dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		GSTIN:        req.GSTIN,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		PaymentTerms: req.PaymentTerms,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

// ListSuppliers returns the company's suppliers.
func (uc *CatalogUseCase) ListSuppliers(companyID string) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(companyID)
}
