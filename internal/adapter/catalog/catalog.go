package catalog

import (
	"context"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.CatalogBrowser = (*Catalog)(nil)
var _ port.ProductResolver = (*Catalog)(nil)

// Catalog serves read-only product snapshots from a fixed in-memory
// set. The remote catalog service is mocked: the storefront consumes
// snapshots as-is and never writes back.
type Catalog struct {
	categories []domain.Category
	products   []domain.Product
}

func New() Catalog {
	return Catalog{categories: seedCategories(), products: seedProducts()}
}

func (c Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "Catalog.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs := make([]domain.Category, len(c.categories))
	copy(cs, c.categories)
	return cs, nil
}

func (c Catalog) Products(
	ctx context.Context, categorySlug string,
) ([]domain.Product, error) {
	const op = "Catalog.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if categorySlug == "" {
		ps := make([]domain.Product, len(c.products))
		copy(ps, c.products)
		return ps, nil
	}

	var categoryID int
	for _, cat := range c.categories {
		if cat.Slug == categorySlug {
			categoryID = cat.ID
			break
		}
	}

	var ps []domain.Product
	for _, p := range c.products {
		if p.CategoryID == categoryID {
			ps = append(ps, p)
		}
	}
	return ps, nil
}

func (c Catalog) ProductBySlug(
	ctx context.Context, slug string,
) (domain.Product, error) {
	const op = "Catalog.ProductBySlug"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range c.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf(
		"%s: %q: %w", op, slug, domain.ErrProductNotFound,
	)
}

func (c Catalog) ProductByID(
	ctx context.Context, id int,
) (domain.Product, error) {
	const op = "Catalog.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf(
		"%s: %d: %w", op, id, domain.ErrProductNotFound,
	)
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Men's Clothing", Slug: "mens-clothing",
			Description: "Fashion for men"},
		{ID: 2, Name: "Women's Clothing", Slug: "womens-clothing",
			Description: "Fashion for women"},
		{ID: 3, Name: "Accessories", Slug: "accessories",
			Description: "Fashion accessories"},
		{ID: 4, Name: "Footwear", Slug: "footwear",
			Description: "Shoes and boots"},
	}
}

func seedProducts() []domain.Product {
	usd := func(amount string) domain.Money {
		return domain.Money{
			Amount:   decimal.RequireFromString(amount),
			Currency: "USD",
		}
	}

	return []domain.Product{
		{
			ID: 1, CategoryID: 1, CategoryName: "Men's Clothing",
			Name: "Classic White T-Shirt", Slug: "classic-white-t-shirt",
			Description: "A comfortable and versatile white t-shirt made from 100% cotton.",
			Price:       usd("29.99"),
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			Stock:       50, Available: true,
		},
		{
			ID: 2, CategoryID: 1, CategoryName: "Men's Clothing",
			Name: "Slim Fit Jeans", Slug: "slim-fit-jeans",
			Description: "Modern slim fit jeans in dark blue wash.",
			Price:       usd("79.99"),
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500",
			Stock:       30, Available: true,
		},
		{
			ID: 3, CategoryID: 2, CategoryName: "Women's Clothing",
			Name: "Floral Summer Dress", Slug: "floral-summer-dress",
			Description: "Light and breezy summer dress with floral pattern.",
			Price:       usd("89.99"),
			Image:       "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500",
			Stock:       25, Available: true,
		},
		{
			ID: 4, CategoryID: 2, CategoryName: "Women's Clothing",
			Name: "High-Waist Leggings", Slug: "high-waist-leggings",
			Description: "Comfortable high-waist leggings perfect for workout or casual wear.",
			Price:       usd("49.99"),
			Image:       "https://images.unsplash.com/photo-1539533113208-f6df8cc8b543?w=500",
			Stock:       40, Available: true,
		},
		{
			ID: 5, CategoryID: 3, CategoryName: "Accessories",
			Name: "Leather Belt", Slug: "leather-belt",
			Description: "Genuine leather belt with classic buckle.",
			Price:       usd("39.99"),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
			Stock:       60, Available: true,
		},
		{
			ID: 6, CategoryID: 3, CategoryName: "Accessories",
			Name: "Canvas Tote Bag", Slug: "canvas-tote-bag",
			Description: "Spacious canvas tote for everyday use.",
			Price:       usd("24.99"),
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?w=500",
			Stock:       0, Available: false,
		},
		{
			ID: 7, CategoryID: 4, CategoryName: "Footwear",
			Name: "White Sneakers", Slug: "white-sneakers",
			Description: "Minimalist white sneakers that go with everything.",
			Price:       usd("119.99"),
			Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
			Stock:       20, Available: true,
		},
		{
			ID: 8, CategoryID: 4, CategoryName: "Footwear",
			Name: "Leather Chelsea Boots", Slug: "leather-chelsea-boots",
			Description: "Timeless chelsea boots in brown leather.",
			Price:       usd("159.99"),
			Image:       "https://images.unsplash.com/photo-1638247025967-b4e38f787b76?w=500",
			Stock:       15, Available: true,
		},
	}
}
