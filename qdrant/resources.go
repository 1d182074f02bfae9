package qdrant

import (
	"context"
	"fmt"

	"github.com/SujayCh07/codelinc10-sub000/models"

	"github.com/qdrant/go-client/qdrant"
)

// The enrichment service indexes personalized resource embeddings into the
// benefit_resources collection, tagged with the owning user. The API only
// reads payloads back and cleans up on account deletion; it never writes
// vectors itself.

func userFilter(userID string) *qdrant.Filter {
	return &qdrant.Filter{
		Must: []*qdrant.Condition{
			{
				ConditionOneOf: &qdrant.Condition_Field{
					Field: &qdrant.FieldCondition{
						Key: "metadata.user_id",
						Match: &qdrant.Match{
							MatchValue: &qdrant.Match_Keyword{
								Keyword: userID,
							},
						},
					},
				},
			},
		},
	}
}

// GetResourcesByUserID returns any personalized resources the enrichment
// service has indexed for this user. An empty result is normal: the static
// theme library always covers the baseline.
func GetResourcesByUserID(ctx context.Context, userID string) ([]models.Resource, error) {
	if QdrantClient == nil {
		return nil, fmt.Errorf("QdrantClient is not initialized")
	}

	limit := uint32(10)
	points, err := QdrantClient.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: ResourcesCollection,
		Filter:         userFilter(userID),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources for user_id %s: %w", userID, err)
	}

	resources := make([]models.Resource, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		resources = append(resources, models.Resource{
			Title:       payload["title"].GetStringValue(),
			Description: payload["description"].GetStringValue(),
			URL:         payload["url"].GetStringValue(),
		})
	}
	return resources, nil
}

// DeleteResourcesByUserID deletes all personalized resources for a user.
func DeleteResourcesByUserID(userID string) error {
	if QdrantClient == nil {
		return fmt.Errorf("QdrantClient is not initialized")
	}

	waitBeforeReturning := false
	_, err := QdrantClient.Delete(context.Background(), &qdrant.DeletePoints{
		CollectionName: ResourcesCollection,
		Points:         qdrant.NewPointsSelectorFilter(userFilter(userID)),
		Wait:           &waitBeforeReturning,
	})
	if err != nil {
		return fmt.Errorf("failed to delete resources for user_id %s: %w", userID, err)
	}

	return nil
}
