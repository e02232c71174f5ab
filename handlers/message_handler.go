package handlers

import (
	"encoding/json"
	"net/http"

	"chatapp/backend/logger"
	"chatapp/backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHandler 處理訊息的發送與讀取
type MessageHandler struct {
	Messages  MessageStore
	Chats     ChatStore
	Populator Populator
	Log       *logger.Logger
}

// SendMessage 在聊天中新增一則訊息，並更新聊天的 latestMessage
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Content == "" || req.ChatID == "" {
		sendJSONError(w, "Invalid data passed into request", http.StatusBadRequest)
		return
	}
	chatID, err := primitive.ObjectIDFromHex(req.ChatID)
	if err != nil {
		sendJSONError(w, "Invalid chat ID format", http.StatusBadRequest)
		return
	}

	if _, err := h.Chats.FindByID(r.Context(), chatID); err != nil {
		sendStoreError(w, r, h.Log, "find chat for message", err, http.StatusBadRequest)
		return
	}

	msg := models.Message{Sender: callerID, Content: req.Content, Chat: chatID}
	if err := h.Messages.Create(r.Context(), &msg); err != nil {
		sendStoreError(w, r, h.Log, "create message", err, http.StatusBadRequest)
		return
	}
	if err := h.Chats.SetLatestMessage(r.Context(), chatID, msg.ID); err != nil {
		sendStoreError(w, r, h.Log, "set latest message", err, http.StatusBadRequest)
		return
	}

	views, err := h.Populator.PopulateMessages(r.Context(), []models.Message{msg})
	if err != nil {
		sendStoreError(w, r, h.Log, "populate message", err, http.StatusBadRequest)
		return
	}
	if len(views) == 0 {
		sendJSONError(w, "Message could not be loaded", http.StatusInternalServerError)
		return
	}
	sendJSON(w, http.StatusOK, views[0])
}

// AllMessages 依時間先後列出聊天中的所有訊息
func (h *MessageHandler) AllMessages(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerFromRequest(w, r); !ok {
		return
	}

	chatID, err := primitive.ObjectIDFromHex(mux.Vars(r)["chatId"])
	if err != nil {
		sendJSONError(w, "Invalid chat ID format", http.StatusBadRequest)
		return
	}

	msgs, err := h.Messages.FindByChat(r.Context(), chatID)
	if err != nil {
		sendStoreError(w, r, h.Log, "fetch messages", err, http.StatusBadRequest)
		return
	}
	views, err := h.Populator.PopulateMessages(r.Context(), msgs)
	if err != nil {
		sendStoreError(w, r, h.Log, "populate messages", err, http.StatusBadRequest)
		return
	}
	if views == nil {
		views = []models.MessageView{}
	}
	sendJSON(w, http.StatusOK, views)
}
