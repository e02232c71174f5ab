package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message 代表一個聊天訊息
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Sender    primitive.ObjectID `bson:"sender" json:"sender"`
	Content   string             `bson:"content" json:"content"`
	Chat      primitive.ObjectID `bson:"chat" json:"chat"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MessageView 是 populate 之後的訊息，sender 只含 name, pic, email
type MessageView struct {
	ID        primitive.ObjectID `json:"_id"`
	Sender    *SenderSummary     `json:"sender"`
	Content   string             `json:"content"`
	Chat      *ChatView          `json:"chat,omitempty"`
	ChatID    primitive.ObjectID `json:"-"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// SendMessageRequest 定義發送訊息的請求體
type SendMessageRequest struct {
	Content string `json:"content"`
	ChatID  string `json:"chatId"`
}
