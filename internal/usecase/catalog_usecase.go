package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		now:         time.Now,
	}
}

type CatalogFilter struct {
	Category string
	City     string
}

// ListProducts returns one catalog page, products with a live boost
// window first. Boostedness is evaluated against the current clock,
// so an expired boost drops out of the top section on the next read
// without any background sweep.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, filter CatalogFilter, page, pageSize int) ([]*entity.Product, int64, error) {
	repoFilter := make(map[string]interface{})
	if filter.Category != "" {
		repoFilter["category"] = filter.Category
	}
	if filter.City != "" {
		repoFilter["city"] = filter.City
	}

	products, err := uc.productRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	ranked := rankBoostedFirst(products, uc.now())
	total := int64(len(ranked))

	return paginate(ranked, page, pageSize), total, nil
}

// SearchProducts matches the query case-insensitively against product
// names. Firestore has no substring operator, so matching happens
// here after the fetch.
func (uc *CatalogUseCase) SearchProducts(ctx context.Context, query string, page, pageSize int) ([]*entity.Product, int64, error) {
	products, err := uc.productRepo.List(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var matched []*entity.Product
	for _, product := range products {
		if needle == "" || strings.Contains(strings.ToLower(product.Name), needle) {
			matched = append(matched, product)
		}
	}

	ranked := rankBoostedFirst(matched, uc.now())
	total := int64(len(ranked))

	return paginate(ranked, page, pageSize), total, nil
}

func (uc *CatalogUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// View counting must not delay or fail the read.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = uc.productRepo.IncrementViews(ctx, id)
	}()

	return product, nil
}

// rankBoostedFirst partitions boosted products ahead of the rest,
// keeping the incoming newest-first order within each section.
func rankBoostedFirst(products []*entity.Product, now time.Time) []*entity.Product {
	ranked := make([]*entity.Product, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Boosted(now) && !ranked[j].Boosted(now)
	})

	return ranked
}

func paginate(products []*entity.Product, page, pageSize int) []*entity.Product {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	if start >= len(products) {
		return nil
	}

	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	return products[start:end]
}
