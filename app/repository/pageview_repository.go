package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

// pageViewRepository implements PageViewRepository against the "analytics"
// collection.
type pageViewRepository struct {
	client *firestore.Client
}

// NewPageViewRepository creates a firestore-backed view counter repository
func NewPageViewRepository(client *firestore.Client) PageViewRepository {
	return &pageViewRepository{client: client}
}

func (r *pageViewRepository) Create(ctx context.Context, view *models.PageView) (string, error) {
	ref, _, err := r.client.Collection(CollectionAnalytics).Add(ctx, view)
	if err != nil {
		return "", err
	}

	view.ID = ref.ID

	return ref.ID, nil
}

func (r *pageViewRepository) GetAll(ctx context.Context) ([]models.PageView, error) {
	// The dashboard sums over at most a handful of counter documents;
	// the cap matches the original query.
	iter := r.client.Collection(CollectionAnalytics).Limit(100).Documents(ctx)
	defer iter.Stop()

	var views []models.PageView
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var view models.PageView
		if err := doc.DataTo(&view); err != nil {
			return nil, err
		}
		view.ID = doc.Ref.ID
		views = append(views, view)
	}

	return views, nil
}

// Exists reports whether any counter document is present. The check is
// intentionally collection-wide, not per day: once a counter exists no
// further one is ever written (see models.PageView).
func (r *pageViewRepository) Exists(ctx context.Context) (bool, error) {
	iter := r.client.Collection(CollectionAnalytics).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
