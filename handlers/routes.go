package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// Routes 集合所有 handler，供 RegisterRoutes 掛載
type Routes struct {
	Users    *UserHandler
	Chats    *ChatHandler
	Messages *MessageHandler

	// Auth 包住需要登入的路由
	Auth func(http.Handler) http.Handler
}

// RegisterRoutes 註冊 API 路由
func RegisterRoutes(router *mux.Router, rt Routes) {
	// 健康檢查路由
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Backend is running!")
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// 使用者
	api.HandleFunc("/user", rt.Users.RegisterUser).Methods(http.MethodPost)
	api.HandleFunc("/user/login", rt.Users.LoginUser).Methods(http.MethodPost)
	api.Handle("/user", rt.Auth(http.HandlerFunc(rt.Users.SearchUsers))).Methods(http.MethodGet)

	// 聊天
	protected := func(path string, h http.HandlerFunc, method string) {
		api.Handle(path, rt.Auth(h)).Methods(method)
	}
	protected("/chat", rt.Chats.AccessChat, http.MethodPost)
	protected("/chat", rt.Chats.FetchChats, http.MethodGet)
	protected("/chat/group", rt.Chats.CreateGroupChat, http.MethodPost)
	protected("/chat/rename", rt.Chats.RenameGroup, http.MethodPut)
	protected("/chat/groupadd", rt.Chats.AddToGroup, http.MethodPut)
	protected("/chat/groupremove", rt.Chats.RemoveFromGroup, http.MethodPut)

	// 訊息
	protected("/message", rt.Messages.SendMessage, http.MethodPost)
	protected("/message/{chatId}", rt.Messages.AllMessages, http.MethodGet)
}
