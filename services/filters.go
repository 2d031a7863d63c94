package services

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// OrderDescending reverses the default ascending sort.
	OrderDescending = "z-a"
)

// Pagination is 1-indexed: page 1 starts at offset 0.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) normalized() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns (Page-1)*Limit after applying defaults.
func (p Pagination) Offset() int {
	n := p.normalized()
	return (n.Page - 1) * n.Limit
}

// UserFilters narrows user listings. Find matches name or email, case-insensitively.
type UserFilters struct {
	Pagination
	Find  string
	Order string
}

// ArticleFilters narrows article listings. Find matches title or content; UserID scopes to one author.
type ArticleFilters struct {
	Pagination
	UserID string
	Find   string
	Order  string
}

// Page is one slice of a listing plus the total number of matching rows.
type Page[T any] struct {
	Rows  []T
	Count int64
}

func emptyPage[T any]() Page[T] {
	return Page[T]{Rows: []T{}}
}

// likeEscape must not be a backslash: MySQL treats it as a string-literal escape.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// containsPattern matches find literally, so % and _ in user input are not wildcards.
func containsPattern(find string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(find)) + "%"
}

// matchAny ORs a case-insensitive substring match over columns. LOWER(...) LIKE works on every dialect.
func matchAny(find string, columns ...string) func(*gorm.DB) *gorm.DB {
	find = strings.TrimSpace(find)
	return func(db *gorm.DB) *gorm.DB {
		if find == "" {
			return db
		}
		parts := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, c := range columns {
			parts[i] = "LOWER(" + c + ") LIKE ? ESCAPE '" + likeEscape + "'"
			args[i] = containsPattern(find)
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

func orderBy(column, order string) string {
	if order == OrderDescending {
		return column + " DESC"
	}
	return column + " ASC"
}

func paginate(p Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		n := p.normalized()
		return db.Offset(n.Offset()).Limit(n.Limit)
	}
}
