package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/inkpost/models"
	"github.com/cppla/inkpost/services"
	"github.com/cppla/inkpost/utils"
)

// UserController handles accounts, authentication, profiles and follow edges.
type UserController struct {
	Deps
}

func NewUserController(deps Deps) *UserController {
	return &UserController{Deps: deps}
}

type registerRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	Biography *string `json:"biography"`
}

// Register creates a local account.
// @Summary  Register a user
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body registerRequest true "new user"
// @Success  201 {object} utils.JSONResponse
// @Failure  400 {object} utils.JSONResponse
// @Failure  409 {object} utils.JSONResponse
// @Router   /users/register [post]
func (u *UserController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, utils.CodeBadRequest, "invalid request payload")
		return
	}

	email := strings.TrimSpace(req.Email)
	if !utils.IsValidEmail(email) {
		utils.BadRequest(ctx, utils.CodeInvalidEmailFormat, "invalid email format")
		return
	}

	rc := ctx.Request.Context()
	taken, err := u.Users.EmailTaken(rc, email, "")
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	if taken {
		utils.Conflict(ctx, utils.CodeEmailAlreadyRegistered, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password, u.BcryptCost)
	if err != nil {
		utils.Internal(ctx, err)
		return
	}

	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hash,
		Biography: req.Biography,
	}
	if _, err := u.Users.Create(rc, user); err != nil {
		respondError(ctx, err)
		return
	}

	view, err := u.Users.FindByID(rc, user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	publish(ctx, u.Events, utils.EventUserRegistered, sanitizeUserResponse(*user))
	utils.Created(ctx, view)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a bearer token.
// @Summary  Log in
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body loginRequest true "credentials"
// @Success  200 {object} utils.JSONResponse
// @Failure  400 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Router   /users/login [post]
func (u *UserController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, utils.CodeBadRequest, "invalid request payload")
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.BadRequest(ctx, utils.CodeInvalidEmailFormat, "invalid email format")
		return
	}

	user, err := u.Users.FindByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		utils.BadRequest(ctx, utils.CodeCredentialsNotValid, "credentials not valid")
		return
	}

	token, expiresAt, err := u.Tokens.Generate(tokenUser(*user))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.OK(ctx, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
		"user":      sanitizeUserResponse(*user),
	})
}

// Logout invalidates the token by blacklisting it until expiration.
func (u *UserController) Logout(ctx *gin.Context) {
	token := ctx.GetString(utils.ContextTokenKey)
	claims, _ := ctx.Get(utils.ContextClaimsKey)
	c, ok := claims.(*utils.Claims)
	if token == "" || !ok {
		utils.Unauthorized(ctx, "unauthorized")
		return
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if c.ExpiresAt != nil {
		expiresAt = c.ExpiresAt.Time
	}
	if err := u.Blacklist.Revoke(ctx.Request.Context(), token, expiresAt); err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.OK(ctx, nil)
}

// Me returns the authenticated user with counts.
func (u *UserController) Me(ctx *gin.Context) {
	userID := ctx.GetString(utils.ContextUserIDKey)
	if userID == "" {
		utils.Unauthorized(ctx, "unauthorized")
		return
	}
	view, err := u.Users.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.OK(ctx, view)
}

// ListUsers pages through users.
// @Summary  List users
// @Tags     users
// @Produce  json
// @Param    page  query int    false "page, 1-indexed"
// @Param    limit query int    false "page size, max 100"
// @Param    find  query string false "name or email substring"
// @Param    order query string false "z-a for descending"
// @Success  200 {object} utils.JSONResponse
// @Router   /users [get]
func (u *UserController) ListUsers(ctx *gin.Context) {
	page, err := u.Users.FindAndCountAll(ctx.Request.Context(), userFilters(ctx))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.List(ctx, page.Rows, page.Count)
}

// GetUser returns one user with article, favorite and follower counts.
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    userId path string true "user id"
// @Success  200 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Router   /users/{userId} [get]
func (u *UserController) GetUser(ctx *gin.Context) {
	id := ctx.Param("userId")
	rc := ctx.Request.Context()

	var cached models.UserView
	if u.Cache.GetJSON(rc, utils.UserCacheKey(id), &cached) {
		utils.OK(ctx, cached)
		return
	}

	view, err := u.Users.FindByID(rc, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	u.Cache.SetJSON(rc, utils.UserCacheKey(id), view)
	utils.OK(ctx, view)
}

type updateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Biography *string `json:"biography"`
	Password  *string `json:"password"`
}

// UpdateUser applies a partial profile update.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	id := ctx.Param("userId")
	rc := ctx.Request.Context()

	var req updateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, utils.CodeBadRequest, "invalid request payload")
		return
	}
	if !requireUser(ctx, u.Users, id) {
		return
	}

	upd := services.UserUpdate{Name: req.Name, Biography: req.Biography}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !utils.IsValidEmail(email) {
			utils.BadRequest(ctx, utils.CodeInvalidEmailFormat, "invalid email format")
			return
		}
		taken, err := u.Users.EmailTaken(rc, email, id)
		if err != nil {
			utils.Internal(ctx, err)
			return
		}
		if taken {
			utils.Conflict(ctx, utils.CodeEmailAlreadyRegistered, "email already registered")
			return
		}
		upd.Email = &email
	}
	if req.Password != nil {
		if *req.Password == "" {
			utils.BadRequest(ctx, utils.CodeBadRequest, "password cannot be empty")
			return
		}
		hash, err := utils.HashPassword(*req.Password, u.BcryptCost)
		if err != nil {
			utils.Internal(ctx, err)
			return
		}
		upd.Password = &hash
	}

	view, err := u.Users.Update(rc, id, upd)
	if err != nil {
		respondError(ctx, err)
		return
	}
	u.Cache.Delete(rc, utils.UserCacheKey(id))
	utils.OK(ctx, view)
}

// DeleteUser removes a user together with their articles, likes and follow edges.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id := ctx.Param("userId")
	rc := ctx.Request.Context()

	if err := u.Users.DeleteByID(rc, id); err != nil {
		respondError(ctx, err)
		return
	}
	// counts on other users and articles may have changed
	u.Cache.InvalidateByPrefix(rc, utils.UserCachePrefix)
	u.Cache.InvalidateByPrefix(rc, utils.ArticleCachePrefix)
	publish(ctx, u.Events, utils.EventUserDeleted, gin.H{"id": id})
	utils.OK(ctx, nil)
}

type followRequest struct {
	FollowerID string `json:"followerId" binding:"required"`
}

// Follow makes the body's followerId follow the path user.
// @Summary  Follow a user
// @Tags     followers
// @Accept   json
// @Produce  json
// @Param    userId path string         true "followed user id"
// @Param    body   body followRequest  true "follower"
// @Success  200 {object} utils.JSONResponse
// @Failure  400 {object} utils.JSONResponse
// @Failure  404 {object} utils.JSONResponse
// @Failure  409 {object} utils.JSONResponse
// @Router   /users/{userId}/followers [post]
func (u *UserController) Follow(ctx *gin.Context) {
	followedID := ctx.Param("userId")
	var req followRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, utils.CodeBadRequest, "invalid request payload")
		return
	}
	if !requireUser(ctx, u.Users, followedID) || !requireUser(ctx, u.Users, req.FollowerID) {
		return
	}

	rc := ctx.Request.Context()
	edge, err := u.Users.CreateFollow(rc, req.FollowerID, followedID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	u.Cache.Delete(rc, utils.UserCacheKey(followedID))
	publish(ctx, u.Events, utils.EventUserFollowed, edge)
	utils.OK(ctx, edge)
}

func (u *UserController) ListFollowers(ctx *gin.Context) {
	id := ctx.Param("userId")
	if !requireUser(ctx, u.Users, id) {
		return
	}
	page, err := u.Users.ListFollowers(ctx.Request.Context(), id, userFilters(ctx))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.List(ctx, page.Rows, page.Count)
}

func (u *UserController) ListFollowing(ctx *gin.Context) {
	id := ctx.Param("userId")
	if !requireUser(ctx, u.Users, id) {
		return
	}
	page, err := u.Users.ListFollowing(ctx.Request.Context(), id, userFilters(ctx))
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.List(ctx, page.Rows, page.Count)
}

// Unfollow removes the edge followerId -> userId. Missing edges are not an error.
func (u *UserController) Unfollow(ctx *gin.Context) {
	followedID := ctx.Param("userId")
	followerID := ctx.Param("followerId")
	if !requireUser(ctx, u.Users, followedID) || !requireUser(ctx, u.Users, followerID) {
		return
	}

	rc := ctx.Request.Context()
	if err := u.Users.Unfollow(rc, followedID, followerID); err != nil {
		utils.Internal(ctx, err)
		return
	}
	u.Cache.Delete(rc, utils.UserCacheKey(followedID))
	publish(ctx, u.Events, utils.EventUserUnfollowed, gin.H{"followerId": followerID, "followedId": followedID})
	utils.OK(ctx, nil)
}
