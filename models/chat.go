package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DirectChatName 一對一聊天的預設名稱，前端會以對方名稱顯示
const DirectChatName = "sender"

// Chat 代表一個聊天串 (一對一或群組)
type Chat struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	ChatName      string               `bson:"chatName" json:"chatName"`
	IsGroupChat   bool                 `bson:"isGroupChat" json:"isGroupChat"`
	Users         []primitive.ObjectID `bson:"users" json:"users"` // 有序，可能含重複 (groupadd 不去重)
	GroupAdmin    *primitive.ObjectID  `bson:"groupAdmin,omitempty" json:"groupAdmin,omitempty"`
	LatestMessage *primitive.ObjectID  `bson:"latestMessage,omitempty" json:"latestMessage,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin 判斷 userID 是否為群組管理員
func (c *Chat) IsAdmin(userID primitive.ObjectID) bool {
	return c.IsGroupChat && c.GroupAdmin != nil && *c.GroupAdmin == userID
}

// ChatView 是 populate 之後回傳給前端的聊天資料
type ChatView struct {
	ID            primitive.ObjectID `json:"_id"`
	ChatName      string             `json:"chatName"`
	IsGroupChat   bool               `json:"isGroupChat"`
	Users         []UserSummary      `json:"users"`
	GroupAdmin    *UserSummary       `json:"groupAdmin,omitempty"`
	LatestMessage *MessageView       `json:"latestMessage,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// AccessChatRequest 定義一對一聊天的請求體
type AccessChatRequest struct {
	UserID string `json:"userId"`
}

// CreateGroupRequest 定義創建群組的請求體，users 是 JSON 陣列字串
type CreateGroupRequest struct {
	Users string `json:"users"`
	Name  string `json:"name"`
}

// RenameGroupRequest 定義群組改名的請求體
type RenameGroupRequest struct {
	ChatID   string `json:"chatId"`
	ChatName string `json:"chatName"`
}

// GroupMemberRequest 定義加入/移除群組成員的請求體
type GroupMemberRequest struct {
	ChatID string `json:"chatId"`
	UserID string `json:"userId"`
}

// PopulateOptions 決定 populate 時要展開哪些參照；users 一律展開
type PopulateOptions struct {
	GroupAdmin    bool
	LatestMessage bool
}
