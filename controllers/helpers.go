package controllers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/inkpost/models"
	"github.com/cppla/inkpost/services"
	"github.com/cppla/inkpost/utils"
)

// Deps bundles the collaborators shared by every controller.
type Deps struct {
	Users      *services.UserService
	Articles   *services.ArticleService
	Likes      *services.LikeService
	Cache      *utils.Cache
	Events     utils.Publisher
	Tokens     *utils.TokenIssuer
	Blacklist  *utils.TokenBlacklist
	BcryptCost int
}

// parsePagination falls back to page 1 / limit 10 on bad input and caps limit at 100.
func parsePagination(pageStr, limitStr string) (int, int) {
	page := services.DefaultPage
	limit := services.DefaultLimit
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		limit = min(l, services.MaxLimit)
	}
	return page, limit
}

func userFilters(ctx *gin.Context) services.UserFilters {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	return services.UserFilters{
		Pagination: services.Pagination{Page: page, Limit: limit},
		Find:       strings.TrimSpace(ctx.Query("find")),
		Order:      ctx.Query("order"),
	}
}

func articleFilters(ctx *gin.Context) services.ArticleFilters {
	page, limit := parsePagination(ctx.Query("page"), ctx.Query("limit"))
	return services.ArticleFilters{
		Pagination: services.Pagination{Page: page, Limit: limit},
		UserID:     strings.TrimSpace(ctx.Query("userId")),
		Find:       strings.TrimSpace(ctx.Query("find")),
		Order:      ctx.Query("order"),
	}
}

// respondError maps service sentinels to envelopes; anything else is a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFound(ctx, utils.CodeUserNotFound, "user not found")
	case errors.Is(err, services.ErrArticleNotFound):
		utils.NotFound(ctx, utils.CodeArticleNotFound, "article not found")
	case errors.Is(err, services.ErrEmailTaken):
		utils.Conflict(ctx, utils.CodeEmailAlreadyRegistered, "email already registered")
	case errors.Is(err, services.ErrAlreadyFollowing):
		utils.Conflict(ctx, utils.CodeAlreadyFollowing, "already following this user")
	case errors.Is(err, services.ErrSelfFollow):
		utils.BadRequest(ctx, utils.CodeCannotFollowSelf, "a user cannot follow themselves")
	default:
		utils.Internal(ctx, err)
	}
}

// requireUser writes 404 USER_NOT_FOUND and returns false when id is unknown.
func requireUser(ctx *gin.Context, users *services.UserService, id string) bool {
	ok, err := users.Exists(ctx.Request.Context(), id)
	if err != nil {
		utils.Internal(ctx, err)
		return false
	}
	if !ok {
		utils.NotFound(ctx, utils.CodeUserNotFound, "user not found")
		return false
	}
	return true
}

// publish emits a domain event; failures are logged and never fail the request.
func publish(ctx *gin.Context, events utils.Publisher, routingKey string, data interface{}) {
	if events == nil {
		return
	}
	if err := events.Publish(context.WithoutCancel(ctx.Request.Context()), routingKey, data); err != nil {
		utils.LoggerFrom(ctx).Warn("publish event failed", zap.String("routingKey", routingKey), zap.Error(err))
	}
}

func sanitizeUserResponse(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"biography": user.Biography,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	}
}

func tokenUser(user models.User) utils.TokenUser {
	return utils.TokenUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Biography: user.Biography,
	}
}
