package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

// reviewRepository implements ReviewRepository against the "comments"
// collection. Ordering is always timestamp descending; ties keep the
// order the store returns.
type reviewRepository struct {
	client *firestore.Client
}

// NewReviewRepository creates a firestore-backed review repository
func NewReviewRepository(client *firestore.Client) ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) (string, error) {
	ref, _, err := r.client.Collection(CollectionReviews).Add(ctx, review)
	if err != nil {
		return "", err
	}

	review.ID = ref.ID

	return ref.ID, nil
}

func (r *reviewRepository) GetRecent(ctx context.Context, limit int) ([]models.Review, error) {
	query := r.client.Collection(CollectionReviews).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit)

	return collectReviews(query.Documents(ctx))
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	query := r.client.Collection(CollectionReviews).
		OrderBy("timestamp", firestore.Desc)

	return collectReviews(query.Documents(ctx))
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(CollectionReviews).Doc(id).Delete(ctx)

	return err
}

func collectReviews(iter *firestore.DocumentIterator) ([]models.Review, error) {
	defer iter.Stop()

	var reviews []models.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var review models.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, err
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, review)
	}

	return reviews, nil
}
