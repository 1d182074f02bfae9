package mongodb

import (
	"context"
	"fmt"

	"github.com/SujayCh07/codelinc10-sub000/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ReplaceChatHistory rewrites a user's log in one shot. Used after a merge
// so the stored log matches the deduplicated result exactly.
func ReplaceChatHistory(ctx context.Context, userID string, entries []models.ChatEntry) error {
	collection := MongoClient.Database(MongoDatabase).Collection(ChatCollection)

	_, err := collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("error clearing chat history: %v", err)
	}
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i := range entries {
		entries[i].UserID = userID
		docs[i] = entries[i]
	}
	_, err = collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("error writing chat history: %v", err)
	}
	return nil
}

func GetChatHistoryByUserID(ctx context.Context, userID string) ([]models.ChatEntry, error) {
	collection := MongoClient.Database(MongoDatabase).Collection(ChatCollection)
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching chat history: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ChatEntry
	for cursor.Next(ctx) {
		var entry models.ChatEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("error decoding chat entry: %v", err)
		}
		entries = append(entries, entry)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return entries, nil
}

func DeleteChatHistory(ctx context.Context, userID string) error {
	collection := MongoClient.Database(MongoDatabase).Collection(ChatCollection)
	_, err := collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting chat history: %v", err)
	}
	return nil
}
