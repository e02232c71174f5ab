package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"chatapp/backend/logger"
	"chatapp/backend/models"
	"chatapp/backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserFinder 用來確認 token 內的使用者仍然存在
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// JWTMiddleware 驗證 JWT Token 並將使用者 ID 放入 context
func JWTMiddleware(secret string, users UserFinder, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Authorization: Bearer <token>
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				unauthorized(w, "Not authorized, no token")
				return
			}

			userID, err := utils.GetUserIDFromToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				log.InfoCtx(r.Context(), "invalid jwt token", zap.Error(err))
				unauthorized(w, "Not authorized, token failed")
				return
			}

			if _, err := users.FindByID(r.Context(), userID); err != nil {
				log.InfoCtx(r.Context(), "token user lookup failed", zap.String("user", userID.Hex()), zap.Error(err))
				unauthorized(w, "Not authorized, token failed")
				return
			}

			// 將使用者 ID 存儲到請求的 context 中
			ctx := utils.WithUserID(r.Context(), userID)
			ctx = logger.WithUserID(ctx, userID.Hex())
			setAccessUser(ctx, userID.Hex())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: message})
}
