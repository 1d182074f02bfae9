package mongodb

import (
	"context"
	"fmt"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SaveInsight stores the latest insight for a user, replacing any previous
// one. Insights are rebuilt wholesale, never patched.
func SaveInsight(ctx context.Context, insight *models.Insight) error {
	collection := MongoClient.Database(MongoDatabase).Collection(InsightCollection)
	filter := bson.M{"user_id": insight.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := collection.ReplaceOne(ctx, filter, insight, opts)
	if err != nil {
		return fmt.Errorf("error saving insight: %v", err)
	}
	return nil
}

func GetInsightByUserID(ctx context.Context, userID string) (*models.Insight, error) {
	collection := MongoClient.Database(MongoDatabase).Collection(InsightCollection)

	var insight models.Insight
	err := collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&insight)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching insight: %v", err)
	}
	return &insight, nil
}

func DeleteInsightsByUserID(ctx context.Context, userID string) error {
	collection := MongoClient.Database(MongoDatabase).Collection(InsightCollection)
	_, err := collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting insights: %v", err)
	}
	return nil
}
