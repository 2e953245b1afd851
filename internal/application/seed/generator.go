// Package seed puebla el catálogo de ventas con datos de demostración: categorías,
// productos y clientes fijos (se reutilizan si ya existen) más ventas aleatorias
// de los últimos días (siempre nuevas).
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/application/sales"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
	"github.com/jhoicas/product-management/internal/domain/repository"
	"github.com/jhoicas/product-management/pkg/logger"
)

// Rangos de generación (inclusivos).
const (
	DefaultDays     = 6
	minSalesPerDay  = 3
	maxSalesPerDay  = 7
	minItemsPerSale = 1
	maxItemsPerSale = 5
	minQuantity     = 1
	maxQuantity     = 3
)

var statuses = entity.AllSaleStatuses()

// Options controla la aleatoriedad y el reloj. Los campos vacíos toman valores por defecto.
type Options struct {
	Rand     *rand.Rand
	Now      func() time.Time
	Days     int
	Location *time.Location // zona en la que se cortan los días
}

// Report resumen de una ejecución.
type Report struct {
	CategoriesCreated int
	CategoriesReused  int
	ProductsCreated   int
	ProductsReused    int
	CustomersCreated  int
	CustomersReused   int
	SalesCreated      int
	SaleItemsCreated  int
	Revenue           decimal.Decimal // suma de los totales creados en esta ejecución
	TotalSales        int             // ventas en el store al terminar
	Days              int
}

// Generator ejecuta el seed sobre los repositorios dados.
type Generator struct {
	repos   repository.Repositories
	creator *sales.CreateSaleUseCase
	log     *logger.Logger
	rnd     *rand.Rand
	now     func() time.Time
	days    int
	loc     *time.Location
}

// NewGenerator construye el generador. Las ventas se crean con creator, igual que por la API.
func NewGenerator(repos repository.Repositories, creator *sales.CreateSaleUseCase, log *logger.Logger, opts Options) *Generator {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Days <= 0 {
		opts.Days = DefaultDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		repos:   repos,
		creator: creator,
		log:     log,
		rnd:     opts.Rand,
		now:     opts.Now,
		days:    opts.Days,
		loc:     opts.Location,
	}
}

// Run crea o reutiliza el catálogo fijo y agrega ventas nuevas.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	rep := &Report{Revenue: decimal.Zero, Days: g.days}

	cats, err := g.ensureCategories(ctx, rep)
	if err != nil {
		return nil, err
	}
	prods, err := g.ensureProducts(ctx, cats, rep)
	if err != nil {
		return nil, err
	}
	custs, err := g.ensureCustomers(ctx, rep)
	if err != nil {
		return nil, err
	}
	if err := g.generateSales(ctx, prods, custs, rep); err != nil {
		return nil, err
	}

	total, err := g.repos.Sales.Count(ctx, repository.SaleFilter{})
	if err != nil {
		return nil, fmt.Errorf("seed: contar ventas: %w", err)
	}
	rep.TotalSales = total
	return rep, nil
}

func (g *Generator) ensureCategories(ctx context.Context, rep *Report) (map[string]*entity.Category, error) {
	out := make(map[string]*entity.Category, len(categories))
	for _, s := range categories {
		c, created, err := getOrCreate(
			func() (*entity.Category, error) { return g.repos.Categories.GetByName(ctx, s.Name) },
			func() (*entity.Category, error) {
				now := g.now().UTC()
				c := &entity.Category{ID: uuid.New().String(), Name: s.Name, Description: s.Description, CreatedAt: now, UpdatedAt: now}
				return c, g.repos.Categories.Create(ctx, c)
			})
		if err != nil {
			return nil, fmt.Errorf("seed: categoría %q: %w", s.Name, err)
		}
		count(created, &rep.CategoriesCreated, &rep.CategoriesReused)
		g.log.Debug().Str("category", c.Name).Bool("created", created).Msg("categoría lista")
		out[s.Name] = c
	}
	return out, nil
}

func (g *Generator) ensureProducts(ctx context.Context, cats map[string]*entity.Category, rep *Report) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(products))
	for _, s := range products {
		p, created, err := getOrCreate(
			func() (*entity.Product, error) { return g.repos.Products.GetByName(ctx, s.Name) },
			func() (*entity.Product, error) {
				now := g.now().UTC()
				p := &entity.Product{
					ID:          uuid.New().String(),
					Name:        s.Name,
					Description: s.Description,
					CategoryID:  cats[s.Category].ID,
					Price:       s.Price,
					Stock:       s.Stock,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				return p, g.repos.Products.Create(ctx, p)
			})
		if err != nil {
			return nil, fmt.Errorf("seed: producto %q: %w", s.Name, err)
		}
		count(created, &rep.ProductsCreated, &rep.ProductsReused)
		g.log.Debug().Str("product", p.Name).Bool("created", created).Msg("producto listo")
		out = append(out, p)
	}
	return out, nil
}

func (g *Generator) ensureCustomers(ctx context.Context, rep *Report) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(customers))
	for _, s := range customers {
		c, created, err := getOrCreate(
			func() (*entity.Customer, error) { return g.repos.Customers.GetByEmail(ctx, s.Email) },
			func() (*entity.Customer, error) {
				now := g.now().UTC()
				c := &entity.Customer{
					ID:        uuid.New().String(),
					Name:      s.Name,
					Email:     s.Email,
					Phone:     s.Phone,
					Address:   s.Address,
					CreatedAt: now,
					UpdatedAt: now,
				}
				return c, g.repos.Customers.Create(ctx, c)
			})
		if err != nil {
			return nil, fmt.Errorf("seed: cliente %q: %w", s.Email, err)
		}
		count(created, &rep.CustomersCreated, &rep.CustomersReused)
		g.log.Debug().Str("customer", c.Email).Bool("created", created).Msg("cliente listo")
		out = append(out, c)
	}
	return out, nil
}

// getOrCreate busca por clave única y crea si no existe. Un ErrDuplicate al crear
// significa que otro proceso la creó antes: se vuelve a buscar.
func getOrCreate[T any](get func() (*T, error), create func() (*T, error)) (*T, bool, error) {
	found, err := get()
	if err != nil {
		return nil, false, err
	}
	if found != nil {
		return found, false, nil
	}
	created, err := create()
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return nil, false, err
	}
	found, err = get()
	if err != nil {
		return nil, false, err
	}
	if found == nil {
		return nil, false, fmt.Errorf("duplicado sin fila existente: %w", domain.ErrConflict)
	}
	return found, false, nil
}

func count(created bool, c, r *int) {
	if created {
		*c++
		return
	}
	*r++
}

func (g *Generator) generateSales(ctx context.Context, prods []*entity.Product, custs []*entity.Customer, rep *Report) error {
	now := g.now().In(g.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, g.loc)
	yen := message.NewPrinter(language.Japanese)

	for day := 0; day < g.days; day++ {
		start := today.AddDate(0, 0, -day)
		n := between(g.rnd, minSalesPerDay, maxSalesPerDay)
		for range n {
			customer := custs[g.rnd.IntN(len(custs))]
			status := statuses[g.rnd.IntN(len(statuses))]
			saleDate := g.randomTimeIn(start, now)

			lines := between(g.rnd, minItemsPerSale, maxItemsPerSale)
			items := make([]dto.SaleItemInput, 0, lines)
			for range lines {
				items = append(items, dto.SaleItemInput{
					ProductID: prods[g.rnd.IntN(len(prods))].ID,
					Quantity:  between(g.rnd, minQuantity, maxQuantity),
				})
			}

			sale, err := g.creator.Create(ctx, dto.CreateSaleRequest{
				CustomerID: customer.ID,
				Status:     string(status),
				SaleDate:   &saleDate,
				Items:      items,
			})
			if err != nil {
				return fmt.Errorf("seed: crear venta: %w", err)
			}
			rep.SalesCreated++
			rep.SaleItemsCreated += len(sale.Items)
			rep.Revenue = rep.Revenue.Add(sale.TotalAmount)
			g.log.Info().
				Str("customer", customer.Name).
				Str("status", string(status)).
				Str("total", FormatYen(yen, sale.TotalAmount)).
				Time("sale_date", saleDate).
				Msg("venta creada")
		}
	}
	return nil
}

// randomTimeIn elige hora y minuto dentro del día que empieza en start, sin pasar de now.
func (g *Generator) randomTimeIn(start, now time.Time) time.Time {
	limit := 24 * 60
	if elapsed := int(now.Sub(start) / time.Minute); elapsed < limit {
		limit = elapsed + 1
	}
	return start.Add(time.Duration(g.rnd.IntN(limit)) * time.Minute)
}

func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// FormatYen formatea un importe con separador de miles, ej: ¥1,234,500.
func FormatYen(p *message.Printer, amount decimal.Decimal) string {
	return p.Sprintf("¥%d", amount.Round(0).IntPart())
}

// Summary líneas legibles del resumen.
func (r *Report) Summary() []string {
	p := message.NewPrinter(language.Japanese)
	return []string{
		p.Sprintf("categorías: %d creadas, %d reutilizadas", r.CategoriesCreated, r.CategoriesReused),
		p.Sprintf("productos: %d creados, %d reutilizados", r.ProductsCreated, r.ProductsReused),
		p.Sprintf("clientes: %d creados, %d reutilizados", r.CustomersCreated, r.CustomersReused),
		p.Sprintf("ventas: %d creadas con %d líneas, total %s", r.SalesCreated, r.SaleItemsCreated, FormatYen(p, r.Revenue)),
		p.Sprintf("ventas en el sistema: %d (últimos %d días)", r.TotalSales, r.Days),
	}
}
