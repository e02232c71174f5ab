package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"chatapp/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// summaryProjection 查詢時排除密碼欄位
var summaryProjection = bson.M{"password": 0}

// UserStore 負責 users 集合的讀寫
type UserStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserStore 建立 UserStore
func NewUserStore(m *Mongo) *UserStore {
	return &UserStore{coll: m.Collection(UsersCollection), timeout: m.Timeout}
}

// Create 新增使用者，Email 重複時回傳 models.ErrEmailTaken
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Pic == "" {
		user.Pic = models.DefaultPic
	}

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail 透過 Email 尋找使用者 (含密碼哈希，供登入比對)
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// FindByID 透過 ID 尋找使用者
func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var user models.User
	if err := s.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// FindSummariesByIDs 批次讀取使用者 (不含密碼)，找不到的 ID 直接略過
func (s *UserStore) FindSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error) {
	if len(ids) == 0 {
		return []models.UserSummary{}, nil
	}
	return s.findSummaries(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// Search 以名稱或 Email 模糊搜尋 (不分大小寫)，結果排除 exclude 本人
func (s *UserStore) Search(ctx context.Context, keyword string, exclude primitive.ObjectID) ([]models.UserSummary, error) {
	filter := bson.M{"_id": bson.M{"$ne": exclude}}
	if keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}
	}
	return s.findSummaries(ctx, filter)
}

func (s *UserStore) findSummaries(ctx context.Context, filter bson.M) ([]models.UserSummary, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetProjection(summaryProjection))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.UserSummary{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
