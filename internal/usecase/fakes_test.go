package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"velvet-vogue/internal/data/entity"

	"github.com/google/uuid"
)

// Map-backed fakes emulating the repository contracts, so the services can
// be exercised without a database.

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, user := range f.users {
		// case-sensitive exact match, like the SQL equality
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if product, ok := f.products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, category, search *string) ([]*entity.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []*entity.Product
	for _, product := range f.products {
		if category != nil && product.Category != *category {
			continue
		}
		if search != nil {
			needle := strings.ToLower(*search)
			name := strings.ToLower(product.Name)
			desc := strings.ToLower(product.Description)
			if !strings.Contains(name, needle) && !strings.Contains(desc, needle) {
				continue
			}
		}
		copied := *product
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeProductRepo) FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []*entity.Product
	for _, product := range f.products {
		if product.Featured {
			copied := *product
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeProductRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return f.FindAll(ctx, &category, nil)
}

func (f *fakeProductRepo) FindAllAdmin(ctx context.Context) ([]*entity.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []*entity.Product
	for _, product := range f.products {
		copied := *product
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.products[product.ID]
	if !ok {
		return false, nil
	}
	copied := *product
	copied.CreatedAt = existing.CreatedAt
	f.products[product.ID] = &copied
	return true, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeProductRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return int64(len(f.products)), nil
}

type fakeOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*entity.Order
	users  *fakeUserRepo
}

func newFakeOrderRepo(users *fakeUserRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		users:  users,
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderWithUser, error) {
	all, err := f.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []*entity.OrderWithUser
	for _, order := range all {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]*entity.OrderWithUser, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []*entity.OrderWithUser
	for _, order := range f.orders {
		joined := &entity.OrderWithUser{Order: *order}
		if f.users != nil {
			if user, _ := f.users.FindByID(ctx, order.UserID); user != nil {
				joined.UserName = user.Name
				joined.UserEmail = user.Email
			}
		}
		result = append(result, joined)
	}

	// newest first
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return false, nil
	}
	order.Status = status
	return true, nil
}

func (f *fakeOrderRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var count int64
	for _, order := range f.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) SumTotalByStatus(ctx context.Context, status entity.OrderStatus) (float64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var total float64
	for _, order := range f.orders {
		if order.Status == status {
			total += order.Total
		}
	}
	return total, nil
}
