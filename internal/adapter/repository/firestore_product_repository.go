package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"devportal/internal/domain/entity"
	"devportal/internal/domain/repository"
	"devportal/pkg/errors"
)

// catalogColumns is the fixed projection the dashboard consumes.
var catalogColumns = []string{
	"id", "name", "category", "status", "visibility",
	"thumbnailUrl", "serviceEndpointUrl", "createdAt",
}

type firestoreProductRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreProductRepository(client *firestore.Client, collection string) repository.ProductRepository {
	return &firestoreProductRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	// Firestore's OrderBy drops documents that lack the ordering field,
	// so rows without a creation timestamp are sorted in memory instead.
	iter := r.client.Collection(r.collection).Select(catalogColumns...).Documents(ctx)

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
		if product.ID == "" {
			product.ID = doc.Ref.ID
		}
		products = append(products, &product)
	}

	// Creation time descending, rows without a timestamp last.
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i].CreatedAt, products[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return products, nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(r.collection).Doc(id).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.RemoteDelete("Failed to delete product", err)
	}

	return nil
}
