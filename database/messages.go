package database

import (
	"context"
	"fmt"
	"time"

	"chatapp/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageStore 負責 messages 集合的讀寫
type MessageStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMessageStore 建立 MessageStore
func NewMessageStore(m *Mongo) *MessageStore {
	return &MessageStore{coll: m.Collection(MessagesCollection), timeout: m.Timeout}
}

// Create 將新的聊天訊息插入到 MongoDB
func (s *MessageStore) Create(ctx context.Context, message *models.Message) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	message.ID = primitive.NewObjectID()
	message.CreatedAt = now
	message.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// FindByIDs 批次讀取訊息，找不到的 ID 直接略過
func (s *MessageStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Message, error) {
	if len(ids) == 0 {
		return []models.Message{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindByChat 獲取指定聊天的所有訊息，由舊到新
func (s *MessageStore) FindByChat(ctx context.Context, chatID primitive.ObjectID) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	return s.find(ctx, bson.M{"chat": chatID}, opts)
}

func (s *MessageStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Message, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	findOpts := []*options.FindOptions{}
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cursor, err := s.coll.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}
