package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/inkpost/utils"
)

// AuthRequired ensures the request carries a valid, unrevoked bearer JWT.
// On success the user id, claims and raw token are stored on the context.
func AuthRequired(tokens *utils.TokenIssuer, blacklist *utils.TokenBlacklist) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(ctx, "authorization header missing")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(ctx, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abortUnauthorized(ctx, "empty bearer token")
			return
		}

		if blacklist.IsRevoked(ctx.Request.Context(), tokenString) {
			abortUnauthorized(ctx, "token revoked")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abortUnauthorized(ctx, "invalid token")
			return
		}

		ctx.Set(utils.ContextUserIDKey, claims.User.ID)
		ctx.Set(utils.ContextClaimsKey, claims)
		ctx.Set(utils.ContextTokenKey, tokenString)
		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context, message string) {
	utils.Abort(ctx, utils.JSONResponse{
		StatusCode: 401,
		Message:    message,
		ErrorCode:  utils.CodeUnauthorized,
	})
}
