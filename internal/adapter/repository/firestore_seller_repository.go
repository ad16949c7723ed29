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

type firestoreSellerRepository struct {
	client *firestore.Client
}

func NewFirestoreSellerRepository(client *firestore.Client) repository.SellerRepository {
	return &firestoreSellerRepository{
		client: client,
	}
}

func (r *firestoreSellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	now := time.Now()
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = now
	}
	seller.UpdatedAt = now

	_, err := r.client.Collection("sellers").Doc(seller.ID).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to create seller", err)
	}

	return nil
}

func (r *firestoreSellerRepository) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	doc, err := r.client.Collection("sellers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Seller", err)
		}
		return nil, errors.Internal("Failed to get seller", err)
	}

	var seller entity.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}

	return &seller, nil
}

func (r *firestoreSellerRepository) GetByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	iter := r.client.Collection("sellers").Where("email", "==", email).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Seller", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query seller by email", err)
	}

	var seller entity.Seller
	if err := doc.DataTo(&seller); err != nil {
		return nil, errors.Internal("Failed to parse seller data", err)
	}

	return &seller, nil
}

func (r *firestoreSellerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Seller, int64, error) {
	query := r.client.Collection("sellers").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count sellers", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var sellers []*entity.Seller

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate sellers", err)
		}
		var seller entity.Seller
		if err := doc.DataTo(&seller); err != nil {
			return nil, 0, errors.Internal("Failed to parse seller data", err)
		}
		sellers = append(sellers, &seller)
	}

	return sellers, total, nil
}

func (r *firestoreSellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	seller.UpdatedAt = time.Now()

	_, err := r.client.Collection("sellers").Doc(seller.ID).Set(ctx, seller)
	if err != nil {
		return errors.Internal("Failed to update seller", err)
	}

	return nil
}

func (r *firestoreSellerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("sellers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete seller", err)
	}

	return nil
}

func (r *firestoreSellerRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("sellers").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count sellers", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreSellerRepository) CountByActivationStatus(ctx context.Context, status string) (int64, error) {
	docs, err := r.client.Collection("sellers").Where("activationStatus", "==", status).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count sellers by activation status", err)
	}
	return int64(len(docs)), nil
}
