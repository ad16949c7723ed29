package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"sombateka/internal/domain/entity"
	"sombateka/pkg/errors"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		r.nextID++
		product.ID = fmt.Sprintf("product-%d", r.nextID)
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, product := range r.products {
		if category, ok := filter["category"]; ok && product.Category != category {
			continue
		}
		if city, ok := filter["city"]; ok && product.City != city {
			continue
		}
		clone := *product
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeProductRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	all, _ := r.List(ctx, nil)
	var out []*entity.Product
	for _, product := range all {
		if product.SellerID == sellerID {
			out = append(out, product)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Views++
	return nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountPendingBoosts(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, product := range r.products {
		if product.PendingBoost != nil && product.PendingBoost.Status == entity.BoostStatusSubmitted {
			count++
		}
	}
	return count, nil
}

type fakeSellerRepo struct {
	mu            sync.Mutex
	sellers       map[string]*entity.Seller
	getByEmailErr error
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: make(map[string]*entity.Seller)}
}

func (r *fakeSellerRepo) Create(ctx context.Context, seller *entity.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *seller
	r.sellers[seller.ID] = &clone
	return nil
}

func (r *fakeSellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seller, ok := r.sellers[id]
	if !ok {
		return nil, errors.NotFound("Seller", nil)
	}
	clone := *seller
	return &clone, nil
}

func (r *fakeSellerRepo) GetByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getByEmailErr != nil {
		return nil, r.getByEmailErr
	}
	for _, seller := range r.sellers {
		if seller.Email == email {
			clone := *seller
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Seller", nil)
}

func (r *fakeSellerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Seller, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Seller
	for _, seller := range r.sellers {
		clone := *seller
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeSellerRepo) Update(ctx context.Context, seller *entity.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sellers[seller.ID]; !ok {
		return errors.NotFound("Seller", nil)
	}
	clone := *seller
	r.sellers[seller.ID] = &clone
	return nil
}

func (r *fakeSellerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sellers[id]; !ok {
		return errors.NotFound("Seller", nil)
	}
	delete(r.sellers, id)
	return nil
}

func (r *fakeSellerRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sellers)), nil
}

func (r *fakeSellerRepo) CountByActivationStatus(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, seller := range r.sellers {
		if seller.ActivationStatus == status {
			count++
		}
	}
	return count, nil
}

// fakeRequestRepo promotes into a fakeProductRepo the same way the
// Firestore adapter promotes into the products collection.
type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.Request
	products *fakeProductRepo
	nextID   int
}

func newFakeRequestRepo(products *fakeProductRepo) *fakeRequestRepo {
	return &fakeRequestRepo{
		requests: make(map[string]*entity.Request),
		products: products,
	}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *entity.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == "" {
		r.nextID++
		request.ID = fmt.Sprintf("request-%d", r.nextID)
	}
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	clone := *request
	return &clone, nil
}

func (r *fakeRequestRepo) List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Request
	for _, request := range r.requests {
		clone := *request
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[id]; !ok {
		return errors.NotFound("Request", nil)
	}
	delete(r.requests, id)
	return nil
}

func (r *fakeRequestRepo) Promote(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	request, ok := r.requests[id]
	if !ok {
		r.mu.Unlock()
		return nil, errors.Conflict("Request already approved or removed", nil)
	}
	product := request.ToProduct(time.Now())
	delete(r.requests, id)
	r.mu.Unlock()

	if err := r.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *fakeRequestRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.requests)), nil
}

type fakeAuthClient struct {
	mu       sync.Mutex
	users    map[string]string // uid -> email
	tokens   map[string]string // token -> uid
	nextUID  int
	failNext bool
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		users:  make(map[string]string),
		tokens: make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return "", fmt.Errorf("auth unavailable")
	}
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.users[uid] = email
	return uid, nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, uid)
	return nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	uid, ok := f.tokens[token]
	if !ok {
		return "", fmt.Errorf("invalid token")
	}
	return uid, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for uid, userEmail := range f.users {
		if userEmail == email {
			token := "token-" + uid
			f.tokens[token] = uid
			return token, nil
		}
	}
	return "", fmt.Errorf("user not found")
}

func (f *fakeAuthClient) SendPasswordResetEmail(email string) error {
	return nil
}

func (f *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[uid]; !ok {
		return fmt.Errorf("user not found")
	}
	return nil
}
