package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"chatapp/backend/logger"
	"chatapp/backend/models"
	"chatapp/backend/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt" // 用於密碼哈希
)

// UserHandler 處理註冊、登入與使用者搜尋
type UserHandler struct {
	Users     UserStore
	JWTSecret string
	JWTExpiry time.Duration
	Log       *logger.Logger
}

// RegisterUser 處理使用者註冊請求
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	// 基本的輸入驗證
	if req.Name == "" || req.Email == "" || req.Password == "" {
		sendJSONError(w, "Please Enter all the Fields", http.StatusBadRequest)
		return
	}

	// 先檢查 Email，如果存在則直接返回
	_, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err == nil {
		sendJSONError(w, "User already exists", http.StatusBadRequest)
		return
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		h.Log.ErrorCtx(r.Context(), "check existing email failed", zap.Error(err))
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.ErrorCtx(r.Context(), "hash password failed", zap.Error(err))
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Pic:      req.Pic,
	}
	if err := h.Users.Create(r.Context(), &user); err != nil {
		// 兩個請求同時註冊同一個 Email 時由唯一索引擋下
		if errors.Is(err, models.ErrEmailTaken) {
			sendJSONError(w, "User already exists", http.StatusBadRequest)
			return
		}
		h.Log.ErrorCtx(r.Context(), "insert user failed", zap.Error(err))
		sendJSONError(w, "Failed to Create the User", http.StatusBadRequest)
		return
	}

	h.sendAuth(w, r, http.StatusCreated, &user)
}

// LoginUser 處理使用者登入請求
func (h *UserHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendJSONError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			sendJSONError(w, "Invalid Email or Password", http.StatusUnauthorized)
			return
		}
		h.Log.ErrorCtx(r.Context(), "find user by email failed", zap.Error(err))
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// 比較哈希後的密碼
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		sendJSONError(w, "Invalid Email or Password", http.StatusUnauthorized)
		return
	}

	h.sendAuth(w, r, http.StatusOK, user)
}

// SearchUsers 以 ?search= 搜尋名稱或 Email，不含自己
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	callerID, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.Users.Search(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")), callerID)
	if err != nil {
		sendStoreError(w, r, h.Log, "search users", err, http.StatusBadRequest)
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	sendJSON(w, http.StatusOK, users)
}

func (h *UserHandler) sendAuth(w http.ResponseWriter, r *http.Request, status int, user *models.User) {
	token, err := utils.GenerateJWT(user.ID, h.JWTSecret, h.JWTExpiry)
	if err != nil {
		h.Log.ErrorCtx(r.Context(), "generate token failed", zap.Error(err))
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	sendJSON(w, status, models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Pic:   user.Pic,
		Token: token,
	})
}
