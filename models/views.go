package models

import "time"

// UserView is the client-facing user: no password, plus derived counts.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Biography *string   `json:"biography"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Articles  int64     `json:"articles"`
	Favorites int64     `json:"favorites"`
	Followers int64     `json:"followers"`
}

// ArticleView is an article annotated with its like count.
type ArticleView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Likes     int64     `json:"likes"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Article{}, &Like{}, &Follower{}}
}
