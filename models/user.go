package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPic 使用者未提供頭像時的預設圖片
const DefaultPic = "https://icon-library.com/images/anonymous-avatar-icon/anonymous-avatar-icon-25.jpg"

// RegisterRequest 結構體用於處理註冊請求
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Pic      string `json:"pic"`
}

// LoginRequest 結構體用於處理登入請求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse 結構體用於返回 JSON 格式的錯誤訊息
type ErrorResponse struct {
	Message string `json:"message"`
}

// User 結構體定義了使用者資料的欄位
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"` // 唯一索引在 database.EnsureIndexes 建立
	Password  string             `bson:"password" json:"-"`  // 儲存哈希後的密碼，JSON 輸出時忽略
	Pic       string             `bson:"pic" json:"pic"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse 註冊與登入成功後回傳給前端的資料
type AuthResponse struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Pic   string             `json:"pic"`
	Token string             `json:"token"`
}

// UserSummary 是不含密碼的使用者資料，用於 populate 後的輸出
type UserSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Pic       string             `bson:"pic" json:"pic"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Summary 去掉密碼欄位
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Pic:       u.Pic,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// SenderSummary 訊息發送者只保留 name, pic, email
type SenderSummary struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Pic   string             `json:"pic"`
	Email string             `json:"email"`
}

// Sender 將 UserSummary 縮減為發送者資料
func (u UserSummary) Sender() SenderSummary {
	return SenderSummary{ID: u.ID, Name: u.Name, Pic: u.Pic, Email: u.Email}
}
