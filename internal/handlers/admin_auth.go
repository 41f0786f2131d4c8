package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/models"
	"backend/internal/ratelimit"
)

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// dummyAdminHash is compared against when the admin email is unknown, so the
// miss path costs the same bcrypt work as a real password check.
var dummyAdminHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// AdminLogin authenticates an administrator and issues a short-lived admin
// token. Failed attempts are counted per source IP; past the window limit
// the endpoint answers 429 until the oldest failure ages out.
func AdminLogin(db *mongo.Database, jwtSecret string, accessTTL time.Duration, limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if err := limiter.Allow(clientIP); err != nil {
			var locked *ratelimit.LockedError
			if errors.As(err, &locked) {
				log.Println("[AUTH] [WARN] admin login throttled for:", clientIP)
				c.Header("Retry-After", locked.RetryAfter.Round(time.Second).String())
				c.JSON(http.StatusTooManyRequests, gin.H{
					"error":      "too many failed attempts",
					"retryAfter": int(locked.RetryAfter.Seconds()),
				})
				return
			}
		}

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var admin models.Account
		err := db.Collection("accounts").FindOne(ctx, bson.M{
			"email": email,
			"role":  models.RoleAdmin,
		}).Decode(&admin)

		if err != nil {
			_ = bcrypt.CompareHashAndPassword(dummyAdminHash, []byte(req.Password))
			limiter.Fail(clientIP)
			log.Println("[AUTH] [ERROR] admin login invalid credentials")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			limiter.Fail(clientIP)
			log.Println("[AUTH] [ERROR] admin login invalid credentials")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		limiter.Reset(clientIP)

		signed, err := issueAccessToken(admin, jwtSecret, accessTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		log.Println("[AUTH] [INFO] admin login succeeded:", admin.Email)
		c.JSON(http.StatusOK, gin.H{
			"token": signed,
		})
	}
}

// AdminLogout ends only the admin principal. Admin sessions have no refresh
// token to revoke, so the client simply drops its token; a customer session
// held in the same browser is untouched.
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "admin logged out"})
	}
}
