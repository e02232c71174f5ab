package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chatapp/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatStore 負責 chats 集合的讀寫
type ChatStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewChatStore 建立 ChatStore
func NewChatStore(m *Mongo) *ChatStore {
	return &ChatStore{coll: m.Collection(ChatsCollection), timeout: m.Timeout}
}

// Create 新增聊天，會填入 ID 與時間戳
func (s *ChatStore) Create(ctx context.Context, chat *models.Chat) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	chat.ID = primitive.NewObjectID()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Users == nil {
		chat.Users = []primitive.ObjectID{}
	}

	if _, err := s.coll.InsertOne(ctx, chat); err != nil {
		return fmt.Errorf("insert chat: %w", err)
	}
	return nil
}

// FindByID 透過 ID 讀取聊天，找不到時回傳 models.ErrChatNotFound
func (s *ChatStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chat, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var chat models.Chat
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&chat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrChatNotFound
		}
		return nil, fmt.Errorf("find chat: %w", err)
	}
	return &chat, nil
}

// FindByIDs 批次讀取聊天，找不到的 ID 直接略過
func (s *ChatStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Chat, error) {
	if len(ids) == 0 {
		return []models.Chat{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// FindDirect 找出同時包含 a 與 b 的一對一聊天。
// 成員是包含關係而不是完全相等；依建立順序回傳。
func (s *ChatStore) FindDirect(ctx context.Context, a, b primitive.ObjectID) ([]models.Chat, error) {
	filter := bson.M{
		"isGroupChat": false,
		"users":       bson.M{"$all": bson.A{a, b}},
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

// FindForUser 回傳使用者所在的所有聊天，最近更新的在前
func (s *ChatStore) FindForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: -1}})
	return s.find(ctx, bson.M{"users": userID}, opts)
}

func (s *ChatStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Chat, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	findOpts := []*options.FindOptions{}
	if opts != nil {
		findOpts = append(findOpts, opts)
	}
	cursor, err := s.coll.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, fmt.Errorf("find chats: %w", err)
	}
	defer cursor.Close(ctx)

	chats := []models.Chat{}
	if err = cursor.All(ctx, &chats); err != nil {
		return nil, fmt.Errorf("decode chats: %w", err)
	}
	return chats, nil
}

// Rename 更新聊天名稱並回傳更新後的文件
func (s *ChatStore) Rename(ctx context.Context, chatID primitive.ObjectID, name string) (*models.Chat, error) {
	return s.update(ctx, chatID, bson.M{"$set": bson.M{"chatName": name}})
}

// AddMember 將 userID 加到 users 尾端。不檢查是否已存在，重複呼叫會產生重複成員。
func (s *ChatStore) AddMember(ctx context.Context, chatID, userID primitive.ObjectID) (*models.Chat, error) {
	return s.update(ctx, chatID, bson.M{"$push": bson.M{"users": userID}})
}

// RemoveMember 從 users 移除所有等於 userID 的項目
func (s *ChatStore) RemoveMember(ctx context.Context, chatID, userID primitive.ObjectID) (*models.Chat, error) {
	return s.update(ctx, chatID, bson.M{"$pull": bson.M{"users": userID}})
}

// SetLatestMessage 更新聊天的最新訊息
func (s *ChatStore) SetLatestMessage(ctx context.Context, chatID, messageID primitive.ObjectID) error {
	_, err := s.update(ctx, chatID, bson.M{"$set": bson.M{"latestMessage": messageID}})
	return err
}

// update 套用更新並刷新 updatedAt，回傳更新後的文件
func (s *ChatStore) update(ctx context.Context, chatID primitive.ObjectID, update bson.M) (*models.Chat, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
		update["$set"] = set
	}
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var chat models.Chat
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": chatID}, update, opts).Decode(&chat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrChatNotFound
		}
		return nil, fmt.Errorf("update chat: %w", err)
	}
	return &chat, nil
}
