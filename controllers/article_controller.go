package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/inkpost/models"
	"github.com/cppla/inkpost/services"
	"github.com/cppla/inkpost/utils"
)

// ArticleController manages articles and favorites.
type ArticleController struct {
	Deps
}

func NewArticleController(deps Deps) *ArticleController {
	return &ArticleController{Deps: deps}
}

type createArticleRequest struct {
	Title   string  `json:"title" binding:"required"`
	Content string  `json:"content" binding:"required"`
	Image   *string `json:"image"`
}

// CreateArticle publishes an article for the path user.
// @Summary  Create an article
// @Tags     articles
// @Accept   json
// @Produce  json
// @Param    userId path string               true "author id"
// @Param    body   body createArticleRequest true "article"
// @Success  201 {object} utils.JSONResponse
// @Failure  400 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Router   /users/{userId}/articles [post]
func (a *ArticleController) CreateArticle(ctx *gin.Context) {
	userID := ctx.Param("userId")
	var req createArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, utils.CodeBadRequest, "invalid request payload")
		return
	}

	title := utils.SanitizeText(req.Title)
	content := utils.Sanitize(req.Content)
	if title == "" || strings.TrimSpace(content) == "" {
		utils.BadRequest(ctx, utils.CodeBadRequest, "title and content cannot be empty")
		return
	}
	if !requireUser(ctx, a.Users, userID) {
		return
	}

	rc := ctx.Request.Context()
	article, err := a.Articles.Create(rc, &models.Article{
		Title:   title,
		Content: content,
		Image:   req.Image,
		UserID:  userID,
	})
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	view, err := a.Articles.FindByID(rc, article.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	a.Cache.Delete(rc, utils.UserCacheKey(userID))
	publish(ctx, a.Events, utils.EventArticleCreated, view)
	utils.Created(ctx, view)
}

// ListArticles pages through all articles, optionally narrowed to ?userId=.
// @Summary  List articles
// @Tags     articles
// @Produce  json
// @Param    userId query string false "author id"
// @Param    page   query int    false "page, 1-indexed"
// @Param    limit  query int    false "page size, max 100"
// @Param    find   query string false "title or content substring"
// @Param    order  query string false "z-a for descending"
// @Success  200 {object} utils.JSONResponse
// @Router   /users/articles [get]
func (a *ArticleController) ListArticles(ctx *gin.Context) {
	page, err := a.Articles.FindAndCountAll(ctx.Request.Context(), articleFilters(ctx))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.List(ctx, page.Rows, page.Count)
}

// ListUserArticles is ListArticles scoped to the path user.
func (a *ArticleController) ListUserArticles(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if !requireUser(ctx, a.Users, userID) {
		return
	}
	f := articleFilters(ctx)
	f.UserID = userID
	page, err := a.Articles.FindAndCountAll(ctx.Request.Context(), f)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.List(ctx, page.Rows, page.Count)
}

// GetArticle returns an article of the path user with its like count.
// @Summary  Get an article
// @Tags     articles
// @Produce  json
// @Param    userId    path string true "author id"
// @Param    articleId path string true "article id"
// @Success  200 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Router   /users/{userId}/articles/{articleId} [get]
func (a *ArticleController) GetArticle(ctx *gin.Context) {
	key := articleKey(ctx)
	if !requireUser(ctx, a.Users, key.UserID) {
		return
	}

	rc := ctx.Request.Context()
	var cached models.ArticleView
	if a.Cache.GetJSON(rc, utils.ArticleCacheKey(key.ID), &cached) && cached.UserID == key.UserID {
		utils.OK(ctx, cached)
		return
	}

	view, err := a.Articles.FindOwned(rc, key)
	if err != nil {
		respondError(ctx, err)
		return
	}
	a.Cache.SetJSON(rc, utils.ArticleCacheKey(key.ID), view)
	utils.OK(ctx, view)
}

type updateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

func (a *ArticleController) UpdateArticle(ctx *gin.Context) {
	key := articleKey(ctx)
	var req updateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, utils.CodeBadRequest, "invalid request payload")
		return
	}

	upd := services.ArticleUpdate{Image: req.Image}
	if req.Title != nil {
		t := utils.SanitizeText(*req.Title)
		if t == "" {
			utils.BadRequest(ctx, utils.CodeBadRequest, "title cannot be empty")
			return
		}
		upd.Title = &t
	}
	if req.Content != nil {
		c := utils.Sanitize(*req.Content)
		if strings.TrimSpace(c) == "" {
			utils.BadRequest(ctx, utils.CodeBadRequest, "content cannot be empty")
			return
		}
		upd.Content = &c
	}
	if !requireUser(ctx, a.Users, key.UserID) {
		return
	}

	rc := ctx.Request.Context()
	view, err := a.Articles.Update(rc, key, upd)
	if err != nil {
		respondError(ctx, err)
		return
	}
	a.Cache.Delete(rc, utils.ArticleCacheKey(key.ID))
	utils.OK(ctx, view)
}

func (a *ArticleController) DeleteArticle(ctx *gin.Context) {
	key := articleKey(ctx)
	if !requireUser(ctx, a.Users, key.UserID) {
		return
	}

	rc := ctx.Request.Context()
	if err := a.Articles.DeleteByUserIDAndArticleID(rc, key); err != nil {
		respondError(ctx, err)
		return
	}
	// likers' favorite counts drop too
	a.Cache.Delete(rc, utils.ArticleCacheKey(key.ID))
	a.Cache.InvalidateByPrefix(rc, utils.UserCachePrefix)
	publish(ctx, a.Events, utils.EventArticleDeleted, gin.H{"id": key.ID, "userId": key.UserID})
	utils.OK(ctx, nil)
}

// ListFavorites pages through the articles the path user has liked.
// @Summary  List liked articles
// @Tags     articles
// @Produce  json
// @Param    userId path  string true  "user id"
// @Param    page   query int    false "page, 1-indexed"
// @Param    limit  query int    false "page size, max 100"
// @Success  200 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Router   /users/{userId}/favorites [get]
func (a *ArticleController) ListFavorites(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if !requireUser(ctx, a.Users, userID) {
		return
	}
	page, err := a.Articles.FindAndCountAllFavorites(ctx.Request.Context(), userID, articleFilters(ctx))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.List(ctx, page.Rows, page.Count)
}

func articleKey(ctx *gin.Context) services.ArticleKey {
	return services.ArticleKey{UserID: ctx.Param("userId"), ID: ctx.Param("articleId")}
}
