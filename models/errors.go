package models

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("user already exists")
	ErrChatNotFound  = errors.New("chat not found")
	ErrNotGroupAdmin = errors.New("only admins can modify the group")
)
