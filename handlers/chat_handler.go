package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"chatapp/backend/logger"
	"chatapp/backend/models"
	"chatapp/backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatHandler 處理一對一聊天與群組聊天
type ChatHandler struct {
	Chats     ChatStore
	Populator Populator
	Log       *logger.Logger

	// EnforceGroupAdmin 為 true 時，改名與成員異動只允許群組管理員
	EnforceGroupAdmin bool
}

var (
	directChatPopulate = models.PopulateOptions{LatestMessage: true}
	chatListPopulate   = models.PopulateOptions{GroupAdmin: true, LatestMessage: true}
	groupPopulate      = models.PopulateOptions{GroupAdmin: true}
)

// AccessChat 取得與 userId 的一對一聊天，不存在就建立
func (h *ChatHandler) AccessChat(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AccessChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		sendJSONError(w, "UserId param not sent with request", http.StatusBadRequest)
		return
	}
	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		sendJSONError(w, "Invalid user ID format", http.StatusBadRequest)
		return
	}

	existing, err := h.Chats.FindDirect(r.Context(), callerID, targetID)
	if err != nil {
		sendStoreError(w, r, h.Log, "find direct chat", err, http.StatusBadRequest)
		return
	}
	// 多筆時只取第一筆，不視為錯誤
	if len(existing) > 0 {
		view, err := h.Populator.PopulateChat(r.Context(), &existing[0], directChatPopulate)
		if err != nil {
			sendStoreError(w, r, h.Log, "populate direct chat", err, http.StatusBadRequest)
			return
		}
		sendJSON(w, http.StatusOK, view)
		return
	}

	chat := models.Chat{
		ChatName:    models.DirectChatName,
		IsGroupChat: false,
		Users:       []primitive.ObjectID{callerID, targetID},
	}
	if err := h.Chats.Create(r.Context(), &chat); err != nil {
		sendStoreError(w, r, h.Log, "create direct chat", err, http.StatusBadRequest)
		return
	}
	h.sendChat(w, r, chat.ID, models.PopulateOptions{})
}

// FetchChats 列出使用者所有聊天，最近更新的在前
func (h *ChatHandler) FetchChats(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	chats, err := h.Chats.FindForUser(r.Context(), callerID)
	if err != nil {
		sendStoreError(w, r, h.Log, "fetch chats", err, http.StatusBadRequest)
		return
	}
	views, err := h.Populator.PopulateChats(r.Context(), chats, chatListPopulate)
	if err != nil {
		sendStoreError(w, r, h.Log, "populate chats", err, http.StatusBadRequest)
		return
	}
	if views == nil {
		views = []models.ChatView{}
	}
	sendJSON(w, http.StatusOK, views)
}

// CreateGroupChat 建立群組，建立者會被加入成員並成為管理員
func (h *ChatHandler) CreateGroupChat(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Users == "" || req.Name == "" {
		sendJSONError(w, "Please Fill all the fields", http.StatusBadRequest)
		return
	}

	// users 是前端 JSON.stringify 後的字串
	var rawIDs []string
	if err := json.Unmarshal([]byte(req.Users), &rawIDs); err != nil {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rawIDs) < 2 {
		sendJSONError(w, "More than 2 users are required to create a group", http.StatusBadRequest)
		return
	}
	members, err := utils.ParseObjectIDs(rawIDs)
	if err != nil {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	members = append(members, callerID)

	admin := callerID
	chat := models.Chat{
		ChatName:    req.Name,
		IsGroupChat: true,
		Users:       members,
		GroupAdmin:  &admin,
	}
	if err := h.Chats.Create(r.Context(), &chat); err != nil {
		sendStoreError(w, r, h.Log, "create group chat", err, http.StatusBadRequest)
		return
	}
	h.sendChat(w, r, chat.ID, groupPopulate)
}

// RenameGroup 更新群組名稱
func (h *ChatHandler) RenameGroup(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RenameGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	chatID, err := primitive.ObjectIDFromHex(req.ChatID)
	if err != nil {
		sendJSONError(w, "Invalid chat ID format", http.StatusBadRequest)
		return
	}

	if err := h.authorizeAdmin(r.Context(), chatID, callerID); err != nil {
		sendStoreError(w, r, h.Log, "authorize rename", err, http.StatusBadRequest)
		return
	}

	updated, err := h.Chats.Rename(r.Context(), chatID, req.ChatName)
	if err != nil {
		sendStoreError(w, r, h.Log, "rename group", err, http.StatusBadRequest)
		return
	}
	h.sendPopulated(w, r, updated, groupPopulate)
}

// AddToGroup 將使用者加入群組。重複加入同一人不會被擋下。
func (h *ChatHandler) AddToGroup(w http.ResponseWriter, r *http.Request) {
	h.changeMembers(w, r, "add to group", h.Chats.AddMember)
}

// RemoveFromGroup 將使用者從群組移除
func (h *ChatHandler) RemoveFromGroup(w http.ResponseWriter, r *http.Request) {
	h.changeMembers(w, r, "remove from group", h.Chats.RemoveMember)
}

type memberUpdate func(ctx context.Context, chatID, userID primitive.ObjectID) (*models.Chat, error)

func (h *ChatHandler) changeMembers(w http.ResponseWriter, r *http.Request, op string, apply memberUpdate) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.GroupMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	chatID, err := primitive.ObjectIDFromHex(req.ChatID)
	if err != nil {
		sendJSONError(w, "Invalid chat ID format", http.StatusBadRequest)
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		sendJSONError(w, "Invalid user ID format", http.StatusBadRequest)
		return
	}

	if err := h.authorizeAdmin(r.Context(), chatID, callerID); err != nil {
		sendStoreError(w, r, h.Log, "authorize "+op, err, http.StatusBadRequest)
		return
	}

	updated, err := apply(r.Context(), chatID, userID)
	if err != nil {
		sendStoreError(w, r, h.Log, op, err, http.StatusBadRequest)
		return
	}
	h.sendPopulated(w, r, updated, groupPopulate)
}

// authorizeAdmin 只有開啟 EnforceGroupAdmin 時才檢查呼叫者是否為管理員
func (h *ChatHandler) authorizeAdmin(ctx context.Context, chatID, callerID primitive.ObjectID) error {
	if !h.EnforceGroupAdmin {
		return nil
	}
	chat, err := h.Chats.FindByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !chat.IsAdmin(callerID) {
		return models.ErrNotGroupAdmin
	}
	return nil
}

// sendChat 重新讀取剛建立的聊天並回傳 populate 後的結果
func (h *ChatHandler) sendChat(w http.ResponseWriter, r *http.Request, chatID primitive.ObjectID, opts models.PopulateOptions) {
	full, err := h.Chats.FindByID(r.Context(), chatID)
	if err != nil {
		sendStoreError(w, r, h.Log, "reload chat", err, http.StatusBadRequest)
		return
	}
	h.sendPopulated(w, r, full, opts)
}

func (h *ChatHandler) sendPopulated(w http.ResponseWriter, r *http.Request, chat *models.Chat, opts models.PopulateOptions) {
	view, err := h.Populator.PopulateChat(r.Context(), chat, opts)
	if err != nil {
		sendStoreError(w, r, h.Log, "populate chat", err, http.StatusBadRequest)
		return
	}
	sendJSON(w, http.StatusOK, view)
}

// callerFromRequest 取出驗證過的使用者 ID，失敗時直接回應 401
func callerFromRequest(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	callerID, err := utils.GetUserIDFromContext(r.Context())
	if err != nil {
		sendJSONError(w, "Not authorized", http.StatusUnauthorized)
		return primitive.NilObjectID, false
	}
	return callerID, true
}
