package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatapp/backend/logger"
	"chatapp/backend/models"

	"go.uber.org/zap"
)

// sendJSON 統一發送 JSON 響應
func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// sendJSONError 統一發送 JSON 格式錯誤響應
func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, models.ErrorResponse{Message: message})
}

// sendStoreError 記錄錯誤並依錯誤類型決定狀態碼，其餘錯誤使用 fallback 並回傳原始訊息
func sendStoreError(w http.ResponseWriter, r *http.Request, log *logger.Logger, op string, err error, fallback int) {
	switch {
	case errors.Is(err, models.ErrChatNotFound):
		sendJSONError(w, "Chat Not Found", http.StatusNotFound)
	case errors.Is(err, models.ErrNotGroupAdmin):
		sendJSONError(w, "Only admins can modify the group", http.StatusForbidden)
	default:
		log.ErrorCtx(r.Context(), op+" failed", zap.Error(err))
		sendJSONError(w, err.Error(), fallback)
	}
}
