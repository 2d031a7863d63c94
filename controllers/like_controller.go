package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/inkpost/utils"
)

// LikeController handles /users/:userId/articles/:articleId/like, where userId is the liker.
type LikeController struct {
	Deps
}

func NewLikeController(deps Deps) *LikeController {
	return &LikeController{Deps: deps}
}

// requireArticle writes 404 ARTICLE_NOT_FOUND and returns false when id is unknown.
func (l *LikeController) requireArticle(ctx *gin.Context, id string) bool {
	if _, err := l.Articles.FindByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return false
	}
	return true
}

// Like is idempotent: liking twice answers 200 both times and stores one row.
// @Summary  Like an article
// @Tags     likes
// @Produce  json
// @Param    userId    path string true "liker id"
// @Param    articleId path string true "article id"
// @Success  200 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Router   /users/{userId}/articles/{articleId}/like [post]
func (l *LikeController) Like(ctx *gin.Context) {
	userID, articleID := ctx.Param("userId"), ctx.Param("articleId")
	if !requireUser(ctx, l.Users, userID) || !l.requireArticle(ctx, articleID) {
		return
	}

	rc := ctx.Request.Context()
	like, created, err := l.Likes.Create(rc, userID, articleID)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	if created {
		l.Cache.Delete(rc, utils.ArticleCacheKey(articleID), utils.UserCacheKey(userID))
		publish(ctx, l.Events, utils.EventArticleLiked, like)
	}
	utils.OK(ctx, like)
}

func (l *LikeController) CheckLike(ctx *gin.Context) {
	userID, articleID := ctx.Param("userId"), ctx.Param("articleId")
	if !requireUser(ctx, l.Users, userID) || !l.requireArticle(ctx, articleID) {
		return
	}
	liked, err := l.Likes.CheckIfLiked(ctx.Request.Context(), userID, articleID)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.OK(ctx, gin.H{"liked": liked})
}

func (l *LikeController) Unlike(ctx *gin.Context) {
	userID, articleID := ctx.Param("userId"), ctx.Param("articleId")
	if !requireUser(ctx, l.Users, userID) || !l.requireArticle(ctx, articleID) {
		return
	}

	rc := ctx.Request.Context()
	if err := l.Likes.Delete(rc, userID, articleID); err != nil {
		utils.Internal(ctx, err)
		return
	}
	l.Cache.Delete(rc, utils.ArticleCacheKey(articleID), utils.UserCacheKey(userID))
	publish(ctx, l.Events, utils.EventArticleUnliked, gin.H{"userId": userID, "articleId": articleID})
	utils.OK(ctx, nil)
}
