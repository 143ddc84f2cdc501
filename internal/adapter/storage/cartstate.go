package storage

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/shopspring/decimal"
	"github.com/syndtr/goleveldb/leveldb"
)

var _ port.CartStateStorage = (*CartStateRepository)(nil)

const cartKeyPrefix = "cart:"

// CartStateRepository holds the durable copy of each owner's cart
// under one namespaced key. Concurrent writers of the same owner are
// last-writer-wins, there is no merge or lock.
type CartStateRepository struct {
	kvdb  kvdb
	serde schema.Serde
}

func NewCartStateRepository(kvdb kvdb, serde schema.Serde) CartStateRepository {
	return CartStateRepository{kvdb, serde}
}

func (r CartStateRepository) SaveCart(
	owner string, s domain.CartState,
) error {
	const op = "CartStateRepository.SaveCart"

	data, err := r.serde.Encode(toRecord(s))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.kvdb.Put(cartKey(owner), data, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LoadCart restores the owner's snapshot. A missing or corrupt entry
// degrades to the empty cart.
func (r CartStateRepository) LoadCart(owner string) domain.CartState {
	const op = "CartStateRepository.LoadCart"
	log := slog.With("op", op)

	data, err := r.kvdb.Get(cartKey(owner), nil)
	if err != nil {
		if !errors.Is(err, leveldb.ErrNotFound) {
			log.Warn("failed to read cart snapshot", "err", err)
		}
		return domain.EmptyCart()
	}

	var rec schema.CartStateV1
	if err := r.serde.Decode(data, &rec); err != nil {
		log.Warn("corrupt cart snapshot, starting empty", "err", err)
		return domain.EmptyCart()
	}

	s, err := toDomain(rec)
	if err != nil {
		log.Warn("corrupt cart snapshot, starting empty", "err", err)
		return domain.EmptyCart()
	}
	return s
}

func cartKey(owner string) []byte {
	return []byte(cartKeyPrefix + owner)
}

func toRecord(s domain.CartState) schema.CartStateV1 {
	items := make([]schema.CartItemV1, 0, len(s.Items))
	for _, it := range s.Items {
		p := it.Product
		items = append(items, schema.CartItemV1{
			Product: schema.ProductV1{
				ID:           p.ID,
				CategoryID:   p.CategoryID,
				CategoryName: p.CategoryName,
				Name:         p.Name,
				Slug:         p.Slug,
				Description:  p.Description,
				Price: schema.PriceV1{
					Amount:   p.Price.Amount.String(),
					Currency: p.Price.Currency,
				},
				Image:     p.Image,
				Stock:     p.Stock,
				Available: p.Available,
			},
			Quantity: it.Quantity,
		})
	}
	return schema.CartStateV1{Items: items, Total: s.Total.String()}
}

func toDomain(rec schema.CartStateV1) (domain.CartState, error) {
	items := make([]domain.CartItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		price, err := domain.NewMoney(
			it.Product.Price.Amount, it.Product.Price.Currency,
		)
		if err != nil {
			return domain.CartState{}, err
		}
		items = append(items, domain.CartItem{
			Product: domain.Product{
				ID:           it.Product.ID,
				CategoryID:   it.Product.CategoryID,
				CategoryName: it.Product.CategoryName,
				Name:         it.Product.Name,
				Slug:         it.Product.Slug,
				Description:  it.Product.Description,
				Price:        price,
				Image:        it.Product.Image,
				Stock:        it.Product.Stock,
				Available:    it.Product.Available,
			},
			Quantity: it.Quantity,
		})
	}

	total, err := decimal.NewFromString(rec.Total)
	if err != nil {
		return domain.CartState{}, err
	}
	return domain.CartState{Items: items, Total: total}, nil
}
