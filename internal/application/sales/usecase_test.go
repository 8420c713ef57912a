package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	items map[string]*entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*entity.InventoryItem)}
}

func (r *fakeInventoryRepo) Create(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeInventoryRepo) GetByIDForUpdate(id string) (*entity.InventoryItem, error) {
	return r.GetByID(id)
}

func (r *fakeInventoryRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) Update(item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) UpdateQuantity(id string, quantity int64) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *fakeInventoryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeInventoryRepo) snapshot() map[string]*entity.InventoryItem {
	s := make(map[string]*entity.InventoryItem, len(r.items))
	for k, v := range r.items {
		cp := *v
		s[k] = &cp
	}
	return s
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	return r.sales, nil
}

func (r *fakeSaleRepo) ListByCompanyAndPeriod(companyName string, from, to *time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.CompanyName == companyName {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Stats() (*entity.SaleStats, error) {
	st := &entity.SaleStats{}
	for _, s := range r.sales {
		st.TotalSales = st.TotalSales.Add(s.TotalAmount)
		st.TotalTransactions++
		st.TotalQuantity += s.Quantity
	}
	return st, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error            { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) List() ([]*entity.Company, error)               { return nil, nil }
func (r *fakeCompanyRepo) Update(c *entity.Company) error                 { return nil }
func (r *fakeCompanyRepo) Delete(id string) error                         { return nil }

// fakeTxRunner emula la atomicidad: restaura el inventario y las ventas si
// el callback falla.
type fakeTxRunner struct {
	saleRepo      *fakeSaleRepo
	inventoryRepo *fakeInventoryRepo
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	itemsBefore := r.inventoryRepo.snapshot()
	salesBefore := len(r.saleRepo.sales)
	if err := fn(r.saleRepo, r.inventoryRepo); err != nil {
		r.inventoryRepo.items = itemsBefore
		r.saleRepo.sales = r.saleRepo.sales[:salesBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	sellerID  = "seller-1"
	companyID = "company-1"
	itemAID   = "item-a"
	itemBID   = "item-b"
)

type fixture struct {
	uc            *sales.SaleUseCase
	saleRepo      *fakeSaleRepo
	inventoryRepo *fakeInventoryRepo
}

func newFixture() *fixture {
	inventoryRepo := newFakeInventoryRepo()
	inventoryRepo.items[itemAID] = &entity.InventoryItem{
		ID: itemAID, Name: "Monitor 24\"", Quantity: 10,
		Price: decimal.NewFromInt(10), Status: entity.InventoryStatusActive,
	}
	inventoryRepo.items[itemBID] = &entity.InventoryItem{
		ID: itemBID, Name: "Teclado mecánico", Quantity: 2,
		Price: decimal.NewFromInt(25), Status: entity.InventoryStatusActive,
	}
	saleRepo := &fakeSaleRepo{}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		sellerID: {ID: sellerID, FirstName: "Valeria", LastName: "Vendedora", Role: entity.RoleSales},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		companyID: {ID: companyID, Name: "Acme S.A.", Status: entity.CompanyStatusActive},
	}}
	runner := &fakeTxRunner{saleRepo: saleRepo, inventoryRepo: inventoryRepo}
	return &fixture{
		uc:            sales.NewSaleUseCase(runner, userRepo, companyRepo, inventoryRepo, saleRepo),
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta simple
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaStockYCalculaTotal(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		InventoryID: itemAID,
		CompanyName: "Acme S.A.",
		Quantity:    3,
		UnitPrice:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	// Total en aritmética decimal: 3 × 10 = 30.
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(30)),
		"total esperado 30, obtenido %s", out.TotalAmount)
	assert.Equal(t, "Valeria Vendedora", out.UserFullName)
	assert.Equal(t, entity.SaleStatusPending, out.Status)

	item, _ := f.inventoryRepo.GetByID(itemAID)
	assert.EqualValues(t, 7, item.Quantity, "stock 10 − 3 = 7")
	assert.Len(t, f.saleRepo.sales, 1)
}

func TestCreateSale_StockInsuficiente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		InventoryID: itemBID,
		CompanyName: "Acme S.A.",
		Quantity:    5, // solo hay 2
		UnitPrice:   decimal.NewFromInt(25),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Teclado mecánico", stockErr.Item)
	assert.EqualValues(t, 2, stockErr.Available)
	assert.EqualValues(t, 5, stockErr.Requested)

	// Nada quedó escrito.
	item, _ := f.inventoryRepo.GetByID(itemBID)
	assert.EqualValues(t, 2, item.Quantity, "el stock no cambia")
	assert.Empty(t, f.saleRepo.sales, "no se crea la venta")
}

func TestCreateSale_ArticuloInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		InventoryID: "no-existe",
		CompanyName: "Acme S.A.",
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.saleRepo.sales)
}

func TestCreateSale_VendedorInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), "fantasma", dto.CreateSaleRequest{
		InventoryID: itemAID,
		CompanyName: "Acme S.A.",
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta múltiple (todo o nada)
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBulkSale_TodasLasLineas(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateBulkSale(context.Background(), sellerID, dto.BulkSaleRequest{
		CompanyID:     companyID,
		PaymentMethod: entity.PaymentTransfer,
		Items: []dto.BulkSaleItem{
			{InventoryID: itemAID, Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{InventoryID: itemBID, Quantity: 1, UnitPrice: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Acme S.A.", out[0].CompanyName, "nombre de empresa desnormalizado")
	assert.Equal(t, entity.PaymentTransfer, out[0].PaymentMethod)

	itemA, _ := f.inventoryRepo.GetByID(itemAID)
	itemB, _ := f.inventoryRepo.GetByID(itemBID)
	assert.EqualValues(t, 8, itemA.Quantity)
	assert.EqualValues(t, 1, itemB.Quantity)
}

// Si una línea intermedia falla, el lote entero se revierte: ninguna venta
// queda escrita y el stock de las líneas anteriores se restaura.
func TestCreateBulkSale_AtomicidadAnteFalloIntermedio(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateBulkSale(context.Background(), sellerID, dto.BulkSaleRequest{
		CompanyID:     companyID,
		PaymentMethod: entity.PaymentCash,
		Items: []dto.BulkSaleItem{
			{InventoryID: itemAID, Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			{InventoryID: itemBID, Quantity: 99, UnitPrice: decimal.NewFromInt(25)}, // falla
			{InventoryID: itemAID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, f.saleRepo.sales, "ninguna venta del lote sobrevive")
	itemA, _ := f.inventoryRepo.GetByID(itemAID)
	itemB, _ := f.inventoryRepo.GetByID(itemBID)
	assert.EqualValues(t, 10, itemA.Quantity, "el stock de la línea 1 se restaura")
	assert.EqualValues(t, 2, itemB.Quantity)
}

func TestCreateBulkSale_MetodoPagoInvalido(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateBulkSale(context.Background(), sellerID, dto.BulkSaleRequest{
		CompanyID:     companyID,
		PaymentMethod: "trueque",
		Items: []dto.BulkSaleItem{
			{InventoryID: itemAID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateBulkSale_EmpresaInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateBulkSale(context.Background(), sellerID, dto.BulkSaleRequest{
		CompanyID:     "no-existe",
		PaymentMethod: entity.PaymentCash,
		Items: []dto.BulkSaleItem{
			{InventoryID: itemAID, Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregados
// ──────────────────────────────────────────────────────────────────────────────

func TestStats(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		InventoryID: itemAID, CompanyName: "Acme S.A.",
		Quantity: 3, UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = f.uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		InventoryID: itemBID, CompanyName: "Acme S.A.",
		Quantity: 2, UnitPrice: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	stats, err := f.uc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.TotalSales.Equal(decimal.NewFromInt(80)), "30 + 50 = 80")
	assert.EqualValues(t, 2, stats.TotalTransactions)
	assert.EqualValues(t, 5, stats.TotalQuantity)
}
