package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/model"
	"github.com/TuringTechX/openfoodnetwork/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrNoProductsAvailable marks a misconfigured request: the hub or cycle is
// missing or unknown. A legitimately empty catalog is NOT this error; it
// resolves to an empty page, and callers must be able to tell the two apart.
var ErrNoProductsAvailable = errors.New("no products available")

// CatalogService resolves the purchasable catalog of a hub for a cycle:
// availability, visibility, ordering, filter combination, pagination and
// variant grouping. Stateless; every call is independent.
type CatalogService interface {
	Resolve(ctx context.Context, hubID int64, q dto.CatalogQuery) (*dto.CatalogPageResponse, error)
}

type catalogService struct {
	hubs       repository.HubRepository
	cycles     repository.CycleRepository
	variants   repository.VariantRepository
	products   repository.ProductRepository
	visibility VisibilityFilter
	attrFilter AttributeFilter
	cache      *repository.CatalogCache // nil disables caching
	perPage    int
}

func NewCatalogService(
	hubs repository.HubRepository,
	cycles repository.CycleRepository,
	variants repository.VariantRepository,
	products repository.ProductRepository,
	visibility VisibilityFilter,
	attrFilter AttributeFilter,
	cache *repository.CatalogCache,
	defaultPerPage int,
) CatalogService {
	if defaultPerPage < 1 {
		defaultPerPage = DefaultPerPage
	}
	return &catalogService{
		hubs:       hubs,
		cycles:     cycles,
		variants:   variants,
		products:   products,
		visibility: visibility,
		attrFilter: attrFilter,
		cache:      cache,
		perPage:    defaultPerPage,
	}
}

func (s *catalogService) Resolve(ctx context.Context, hubID int64, q dto.CatalogQuery) (*dto.CatalogPageResponse, error) {
	if hubID <= 0 || q.CycleID <= 0 {
		return nil, ErrNoProductsAvailable
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.Key(hubID, q)
		if page := s.cache.Get(ctx, cacheKey); page != nil {
			return page, nil
		}
	}

	hub, err := s.hubs.FindByID(ctx, hubID)
	if err != nil {
		return nil, asNoProducts(err, "hub")
	}
	if _, err := s.cycles.FindByID(ctx, q.CycleID); err != nil {
		return nil, asNoProducts(err, "cycle")
	}

	var customer *model.Customer
	if q.CustomerID > 0 {
		// An unknown customer browses anonymously rather than erroring.
		if c, err := s.hubs.FindCustomer(ctx, q.CustomerID); err == nil {
			customer = c
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load customer: %w", err)
		}
	}

	candidates, err := s.variants.DistributedVariants(ctx, q.CycleID, hubID)
	if err != nil {
		return nil, fmt.Errorf("distributed variants: %w", err)
	}
	candidates, err = s.visibility.FilterVisible(ctx, hub, customer, candidates)
	if err != nil {
		return nil, fmt.Errorf("visibility filter: %w", err)
	}

	page, perPage := q.Page, q.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.perPage
	}

	if len(candidates) == 0 {
		return s.finish(ctx, cacheKey, emptyPage(page, perPage))
	}

	productIDs, variantIDs := projectIDs(candidates)

	ordering := OrderingFor(hub)
	rows, err := s.products.CatalogProducts(ctx, productIDs, variantIDs, ordering.OrderBySQL())
	if err != nil {
		return nil, fmt.Errorf("catalog products: %w", err)
	}

	attrSet := s.attrFilter.Apply(ctx, rows, q)

	propRequested := len(q.SupplierPropertyIDs) > 0
	var propSet []model.CatalogProduct
	if propRequested {
		supplierIDs, err := s.products.SupplierIDsWithProperties(ctx, q.SupplierPropertyIDs)
		if err != nil {
			return nil, fmt.Errorf("supplier properties: %w", err)
		}
		propSet = productsOfSuppliers(rows, supplierIDs)
	}

	combined := Combine(attrSet, propSet, propRequested, q.WithProperties)
	if combined.UsedFallback {
		log.Warn().
			Int64("hub_id", hubID).
			Int64("cycle_id", q.CycleID).
			Ints64("property_ids", q.SupplierPropertyIDs).
			Msg("supplier property filter matched nothing, returning attribute results")
	}

	pageRows := Page(combined.Products, page, perPage)

	resp := &dto.CatalogPageResponse{
		Products:               make([]dto.CatalogProductResponse, 0, len(pageRows)),
		VariantsByProduct:      make(map[int64][]dto.CatalogVariantResponse, len(pageRows)),
		TotalAvailable:         int64(len(combined.Products)),
		Page:                   page,
		PerPage:                perPage,
		PropertyFilterFallback: combined.UsedFallback,
	}

	onPage := make(map[int64]struct{}, len(pageRows))
	for _, p := range pageRows {
		onPage[p.ID] = struct{}{}
		resp.Products = append(resp.Products, dto.CatalogProductResponse{
			ID:         p.ID,
			Name:       p.Name,
			SupplierID: p.FirstSupplierID,
			TaxonID:    p.FirstTaxonID,
		})
	}

	// Variants are scoped to the hub only for rendering; the stored rows
	// keep their raw stock state.
	scoped := make([]model.Variant, 0, len(candidates))
	for _, vo := range candidates {
		if _, ok := onPage[vo.Variant.ProductID]; !ok {
			continue
		}
		scoped = append(scoped, ScopeVariantToHub(vo.Variant, vo.Override))
	}
	for productID, group := range GroupByProduct(scoped) {
		rendered := make([]dto.CatalogVariantResponse, 0, len(group))
		for _, v := range group {
			rendered = append(rendered, dto.CatalogVariantResponse{
				ID:          v.ID,
				ProductID:   v.ProductID,
				SupplierID:  v.SupplierID,
				TaxonID:     v.TaxonID,
				OnDemand:    v.OnDemand,
				CountOnHand: v.CountOnHand,
				Price:       v.Price,
			})
		}
		resp.VariantsByProduct[productID] = rendered
	}

	return s.finish(ctx, cacheKey, resp)
}

func (s *catalogService) finish(ctx context.Context, cacheKey string, resp *dto.CatalogPageResponse) (*dto.CatalogPageResponse, error) {
	if s.cache != nil && cacheKey != "" {
		s.cache.Set(ctx, cacheKey, resp)
	}
	return resp, nil
}

func emptyPage(page, perPage int) *dto.CatalogPageResponse {
	return &dto.CatalogPageResponse{
		Products:          []dto.CatalogProductResponse{},
		VariantsByProduct: map[int64][]dto.CatalogVariantResponse{},
		Page:              page,
		PerPage:           perPage,
	}
}

// projectIDs extracts ordered distinct product ids and the variant id set
// from the visible candidates.
func projectIDs(candidates []model.VariantWithOverride) (productIDs, variantIDs []int64) {
	seen := make(map[int64]struct{}, len(candidates))
	variantIDs = make([]int64, 0, len(candidates))
	for _, vo := range candidates {
		variantIDs = append(variantIDs, vo.Variant.ID)
		if _, ok := seen[vo.Variant.ProductID]; !ok {
			seen[vo.Variant.ProductID] = struct{}{}
			productIDs = append(productIDs, vo.Variant.ProductID)
		}
	}
	return productIDs, variantIDs
}

func productsOfSuppliers(rows []model.CatalogProduct, supplierIDs []int64) []model.CatalogProduct {
	if len(supplierIDs) == 0 {
		return nil
	}
	allowed := make(map[int64]struct{}, len(supplierIDs))
	for _, id := range supplierIDs {
		allowed[id] = struct{}{}
	}
	var matched []model.CatalogProduct
	for _, p := range rows {
		if _, ok := allowed[p.FirstSupplierID]; ok {
			matched = append(matched, p)
		}
	}
	return matched
}

func asNoProducts(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoProductsAvailable
	}
	return fmt.Errorf("load %s: %w", what, err)
}
