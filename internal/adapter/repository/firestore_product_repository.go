package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sombateka/internal/domain/entity"
	"sombateka/internal/domain/repository"
	"sombateka/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

func (r *firestoreProductRepository) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	return r.List(ctx, map[string]interface{}{"sellerId": sellerID})
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment views", err)
	}

	return nil
}

func (r *firestoreProductRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count products", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreProductRepository) CountPendingBoosts(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("products").Where("pendingBoost.status", "==", entity.BoostStatusSubmitted).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count pending boosts", err)
	}
	return int64(len(docs)), nil
}
