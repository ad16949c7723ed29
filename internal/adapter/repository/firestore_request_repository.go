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

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{
		client: client,
	}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	if request.ID == "" {
		doc := r.client.Collection("requests").NewDoc()
		request.ID = doc.ID
	}

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	doc, err := r.client.Collection("requests").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get request", err)
	}

	var request entity.Request
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse request data", err)
	}

	return &request, nil
}

func (r *firestoreRequestRepository) List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	query := r.client.Collection("requests").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count requests", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var requests []*entity.Request

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate requests", err)
		}
		var request entity.Request
		if err := doc.DataTo(&request); err != nil {
			return nil, 0, errors.Internal("Failed to parse request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, total, nil
}

func (r *firestoreRequestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("requests").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete request", err)
	}

	return nil
}

// Promote runs the approve-and-copy as a single Firestore transaction:
// read the request, write the product under the same document ID,
// delete the request. A crash cannot leave both rows, and a second
// approval of the same request fails on the read instead of writing a
// duplicate product.
func (r *firestoreRequestRepository) Promote(ctx context.Context, id string) (*entity.Product, error) {
	var product *entity.Product

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		requestRef := r.client.Collection("requests").Doc(id)

		doc, err := tx.Get(requestRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.Conflict("Request already approved or removed", err)
			}
			return errors.Internal("Failed to get request", err)
		}

		var request entity.Request
		if err := doc.DataTo(&request); err != nil {
			return errors.Internal("Failed to parse request data", err)
		}

		product = request.ToProduct(time.Now())

		productRef := r.client.Collection("products").Doc(product.ID)
		if err := tx.Set(productRef, product); err != nil {
			return errors.Internal("Failed to create product", err)
		}

		if err := tx.Delete(requestRef); err != nil {
			return errors.Internal("Failed to delete request", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *firestoreRequestRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("requests").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count requests", err)
	}
	return int64(len(docs)), nil
}
