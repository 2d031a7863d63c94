package services

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrArticleNotFound  = errors.New("article not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrSelfFollow       = errors.New("a user cannot follow themselves")
)
