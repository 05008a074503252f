package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ayurcare_backend/internal/auth"
	"ayurcare_backend/internal/logger"
	"ayurcare_backend/internal/models"
	"ayurcare_backend/internal/repositories"
	"ayurcare_backend/pkg/apperrors"
	"ayurcare_backend/pkg/contextkeys"
)

// One message for every authentication failure. A missing header, a bad or
// expired token, and a token whose subject no longer resolves must be
// indistinguishable to the caller.
const unauthenticatedMessage = "Could not validate credentials"

// AuthMiddleware resolves the bearer token to an account record and stores
// it in the request context. Tokens carry the account id as subject; tokens
// minted against an email subject resolve through the email lookup.
func AuthMiddleware(jwtSecret []byte, accountRepo repositories.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError(unauthenticatedMessage))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError(unauthenticatedMessage))
			return
		}

		subject := claims.Subject
		if subject == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError(unauthenticatedMessage))
			return
		}

		ctx := c.Request.Context()
		account, err := accountRepo.FindByID(ctx, subject)
		if err != nil && strings.Contains(subject, "@") {
			account, err = accountRepo.FindByEmail(ctx, subject)
		}
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError(unauthenticatedMessage))
			return
		}

		c.Set(string(contextkeys.AccountContextKey), account)
		c.Request = c.Request.WithContext(logger.WithAccountID(ctx, account.ID.Hex()))
		c.Next()
	}
}

// RequireDoctor rejects non-doctor accounts with Forbidden.
func RequireDoctor() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if !auth.IsDoctor(account) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Only doctors can access this endpoint"))
			return
		}
		c.Next()
	}
}

// RequirePatient rejects non-patient accounts with Forbidden.
func RequirePatient() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if !auth.IsPatient(account) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Only patients can access this endpoint"))
			return
		}
		c.Next()
	}
}

// CurrentAccount extracts the authenticated account set by AuthMiddleware.
func CurrentAccount(c *gin.Context) *models.Account {
	val, exists := c.Get(string(contextkeys.AccountContextKey))
	if !exists {
		return nil
	}
	account, ok := val.(*models.Account)
	if !ok {
		return nil
	}
	return account
}
