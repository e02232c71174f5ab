package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chatapp/backend/logger"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	router := mux.NewRouter()
	denyAll := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sendJSONError(w, "Not authorized, no token", http.StatusUnauthorized)
		})
	}
	log := logger.NewNop()
	RegisterRoutes(router, Routes{
		Users:    &UserHandler{Log: log},
		Chats:    &ChatHandler{Log: log},
		Messages: &MessageHandler{Log: log},
		Auth:     denyAll,
	})

	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/user", http.StatusUnauthorized},
		{http.MethodPost, "/api/chat", http.StatusUnauthorized},
		{http.MethodGet, "/api/chat", http.StatusUnauthorized},
		{http.MethodPost, "/api/chat/group", http.StatusUnauthorized},
		{http.MethodPut, "/api/chat/rename", http.StatusUnauthorized},
		{http.MethodPut, "/api/chat/groupadd", http.StatusUnauthorized},
		{http.MethodPut, "/api/chat/groupremove", http.StatusUnauthorized},
		{http.MethodPost, "/api/message", http.StatusUnauthorized},
		{http.MethodGet, "/api/message/abc", http.StatusUnauthorized},
		{http.MethodPost, "/api/chat/rename", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRegisterRoutesPublicLogin(t *testing.T) {
	router := mux.NewRouter()
	RegisterRoutes(router, Routes{
		Users:    &UserHandler{Log: logger.NewNop()},
		Chats:    &ChatHandler{},
		Messages: &MessageHandler{},
		Auth:     func(next http.Handler) http.Handler { return next },
	})

	// 登入不經過驗證，空的 body 直接回 400
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/user/login", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
