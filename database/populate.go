package database

import (
	"context"
	"fmt"

	"chatapp/backend/logger"
	"chatapp/backend/models"
	"chatapp/backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserSource 提供批次讀取使用者摘要
type UserSource interface {
	FindSummariesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.UserSummary, error)
}

// MessageSource 提供批次讀取訊息
type MessageSource interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Message, error)
}

// ChatSource 提供批次讀取聊天
type ChatSource interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Chat, error)
}

// UserCache 是使用者摘要的快取，nil 代表不使用快取
type UserCache interface {
	GetUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error)
	SetUsers(ctx context.Context, users []models.UserSummary) error
}

// Populator 把文件中的 ObjectID 參照換成實際的文件內容。
// 密碼欄位永遠不會被讀出；訊息的 sender 只保留 name, pic, email。
type Populator struct {
	users    UserSource
	messages MessageSource
	chats    ChatSource
	cache    UserCache
	log      *logger.Logger
}

// NewPopulator 建立 Populator，cache 可以是 nil
func NewPopulator(users UserSource, messages MessageSource, chats ChatSource, cache UserCache, log *logger.Logger) *Populator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Populator{users: users, messages: messages, chats: chats, cache: cache, log: log}
}

// PopulateChats 展開 users，並依 opts 展開 groupAdmin 與 latestMessage (含 sender)
func (p *Populator) PopulateChats(ctx context.Context, chats []models.Chat, opts models.PopulateOptions) ([]models.ChatView, error) {
	messagesByID := map[primitive.ObjectID]models.Message{}
	if opts.LatestMessage {
		var ids []primitive.ObjectID
		for _, c := range chats {
			if c.LatestMessage != nil {
				ids = append(ids, *c.LatestMessage)
			}
		}
		if len(ids) > 0 {
			messages, err := p.messages.FindByIDs(ctx, utils.UniqueObjectIDs(ids))
			if err != nil {
				return nil, fmt.Errorf("populate latestMessage: %w", err)
			}
			for _, m := range messages {
				messagesByID[m.ID] = m
			}
		}
	}

	var userIDs []primitive.ObjectID
	for _, c := range chats {
		userIDs = append(userIDs, c.Users...)
		if opts.GroupAdmin && c.GroupAdmin != nil {
			userIDs = append(userIDs, *c.GroupAdmin)
		}
	}
	for _, m := range messagesByID {
		userIDs = append(userIDs, m.Sender)
	}

	usersByID, err := p.lookupUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.ChatView, 0, len(chats))
	for _, c := range chats {
		views = append(views, buildChatView(c, usersByID, messagesByID, opts))
	}
	return views, nil
}

// PopulateChat 單一聊天的版本
func (p *Populator) PopulateChat(ctx context.Context, chat *models.Chat, opts models.PopulateOptions) (*models.ChatView, error) {
	views, err := p.PopulateChats(ctx, []models.Chat{*chat}, opts)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// PopulateMessages 展開訊息的 sender (name, pic, email) 與所屬聊天 (含 users)
func (p *Populator) PopulateMessages(ctx context.Context, messages []models.Message) ([]models.MessageView, error) {
	var chatIDs, senderIDs []primitive.ObjectID
	for _, m := range messages {
		chatIDs = append(chatIDs, m.Chat)
		senderIDs = append(senderIDs, m.Sender)
	}

	chatsByID := map[primitive.ObjectID]models.ChatView{}
	if len(chatIDs) > 0 {
		chats, err := p.chats.FindByIDs(ctx, utils.UniqueObjectIDs(chatIDs))
		if err != nil {
			return nil, fmt.Errorf("populate chat: %w", err)
		}
		views, err := p.PopulateChats(ctx, chats, models.PopulateOptions{})
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			chatsByID[v.ID] = v
		}
	}

	usersByID, err := p.lookupUsers(ctx, senderIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.MessageView, 0, len(messages))
	for _, m := range messages {
		view := buildMessageView(m, usersByID)
		if c, ok := chatsByID[m.Chat]; ok {
			view.Chat = &c
		}
		out = append(out, view)
	}
	return out, nil
}

// lookupUsers 先查快取，缺少的再從資料庫讀取並寫回快取
func (p *Populator) lookupUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	ids = utils.UniqueObjectIDs(ids)
	found := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	missing := ids
	if p.cache != nil {
		cached, err := p.cache.GetUsers(ctx, ids)
		if err != nil {
			p.log.ErrorCtx(ctx, "user cache read failed", zap.Error(err))
		} else {
			missing = nil
			for _, id := range ids {
				if u, ok := cached[id]; ok {
					found[id] = u
				} else {
					missing = append(missing, id)
				}
			}
		}
	}
	if len(missing) == 0 {
		return found, nil
	}

	users, err := p.users.FindSummariesByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("populate users: %w", err)
	}
	for _, u := range users {
		found[u.ID] = u
	}

	if p.cache != nil && len(users) > 0 {
		if err := p.cache.SetUsers(ctx, users); err != nil {
			p.log.ErrorCtx(ctx, "user cache write failed", zap.Error(err))
		}
	}
	return found, nil
}

func buildChatView(c models.Chat, users map[primitive.ObjectID]models.UserSummary, messages map[primitive.ObjectID]models.Message, opts models.PopulateOptions) models.ChatView {
	view := models.ChatView{
		ID:          c.ID,
		ChatName:    c.ChatName,
		IsGroupChat: c.IsGroupChat,
		Users:       make([]models.UserSummary, 0, len(c.Users)),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	// 每個出現的 ID 都展開一次，解析不到的參照直接略過
	for _, id := range c.Users {
		if u, ok := users[id]; ok {
			view.Users = append(view.Users, u)
		}
	}
	if opts.GroupAdmin && c.GroupAdmin != nil {
		if u, ok := users[*c.GroupAdmin]; ok {
			view.GroupAdmin = &u
		}
	}
	if opts.LatestMessage && c.LatestMessage != nil {
		if m, ok := messages[*c.LatestMessage]; ok {
			mv := buildMessageView(m, users)
			view.LatestMessage = &mv
		}
	}
	return view
}

func buildMessageView(m models.Message, users map[primitive.ObjectID]models.UserSummary) models.MessageView {
	view := models.MessageView{
		ID:        m.ID,
		Content:   m.Content,
		ChatID:    m.Chat,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if u, ok := users[m.Sender]; ok {
		sender := u.Sender()
		view.Sender = &sender
	}
	return view
}
