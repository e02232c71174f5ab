package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UsersCollection    = "users"
	ChatsCollection    = "chats"
	MessagesCollection = "messages"
)

// DefaultTimeout 單次資料庫操作的預設逾時
const DefaultTimeout = 5 * time.Second

// Mongo 持有 MongoDB 連線，由 main 建立後注入各個 store
type Mongo struct {
	Client  *mongo.Client
	DB      *mongo.Database
	Timeout time.Duration
}

// ConnectMongoDB 建立並初始化 MongoDB 連線
func ConnectMongoDB(ctx context.Context, uri, name string, timeout time.Duration) (*Mongo, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	clientOptions := options.Client().ApplyURI(uri)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	// Ping the primary to verify connection
	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Mongo{
		Client:  client,
		DB:      client.Database(name),
		Timeout: timeout,
	}, nil
}

// Collection 獲取指定的集合
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

// EnsureIndexes 建立查詢需要的索引，重複呼叫是安全的
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		ChatsCollection: {
			{Keys: bson.D{{Key: "users", Value: 1}, {Key: "updatedAt", Value: -1}}},
			{Keys: bson.D{{Key: "isGroupChat", Value: 1}, {Key: "users", Value: 1}}},
		},
		MessagesCollection: {
			{Keys: bson.D{{Key: "chat", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := m.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	return nil
}

// DisconnectMongoDB 關閉 MongoDB 連線
func (m *Mongo) DisconnectMongoDB(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// opContext 為單次操作加上逾時
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
