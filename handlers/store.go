package handlers

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"

	"chatapp/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore 是 handler 需要的使用者資料操作
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Search(ctx context.Context, keyword string, exclude primitive.ObjectID) ([]models.UserSummary, error)
}

// ChatStore 是 handler 需要的聊天資料操作
type ChatStore interface {
	Create(ctx context.Context, chat *models.Chat) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Chat, error)
	FindDirect(ctx context.Context, a, b primitive.ObjectID) ([]models.Chat, error)
	FindForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Chat, error)
	Rename(ctx context.Context, chatID primitive.ObjectID, name string) (*models.Chat, error)
	AddMember(ctx context.Context, chatID, userID primitive.ObjectID) (*models.Chat, error)
	RemoveMember(ctx context.Context, chatID, userID primitive.ObjectID) (*models.Chat, error)
	SetLatestMessage(ctx context.Context, chatID, messageID primitive.ObjectID) error
}

// MessageStore 是 handler 需要的訊息資料操作
type MessageStore interface {
	Create(ctx context.Context, message *models.Message) error
	FindByChat(ctx context.Context, chatID primitive.ObjectID) ([]models.Message, error)
}

// Populator 把參照展開成回傳給前端的資料
type Populator interface {
	PopulateChat(ctx context.Context, chat *models.Chat, opts models.PopulateOptions) (*models.ChatView, error)
	PopulateChats(ctx context.Context, chats []models.Chat, opts models.PopulateOptions) ([]models.ChatView, error)
	PopulateMessages(ctx context.Context, messages []models.Message) ([]models.MessageView, error)
}
