package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/cart"
	"backend/internal/middleware"
	"backend/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type addCartItemRequest struct {
	ProductID string  `json:"produto_id" binding:"required"`
	Name      string  `json:"nome" binding:"required"`
	Brand     string  `json:"marca"`
	Price     float64 `json:"preco"`
	Flavor    string  `json:"sabor"`
	Quantity  int     `json:"quantidade"`
	Image     string  `json:"imagem"`
}

type cartLineKeyRequest struct {
	ProductID string `json:"produto_id" binding:"required"`
	Flavor    string `json:"sabor"`
}

type setQuantityRequest struct {
	ProductID string `json:"produto_id" binding:"required"`
	Flavor    string `json:"sabor"`
	Quantity  *int   `json:"quantidade" binding:"required"`
}

/* =========================
   ACTOR RESOLUTION
========================= */

// cartActor resolves the owner and backing store for the caller: a valid
// customer bearer token selects the durable account cart, anything else the
// anonymous session cart. The two are never queried together.
func cartActor(c *gin.Context, stores *cart.Stores, jwtSecret string) (owner string, store cart.Store, durable bool) {
	if accountID, err := accountIDFromHeader(c.GetHeader("Authorization"), jwtSecret); err == nil && accountID != nil {
		return accountID.Hex(), stores.Durable, true
	}
	sessionID := c.GetString(middleware.CartSessionKey)
	return sessionID, stores.Session, false
}

func accountIDFromHeader(header, secret string) (*primitive.ObjectID, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid token format")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || strings.TrimSpace(sub) == "" {
		return nil, errors.New("sub claim missing")
	}

	accountID, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return nil, errors.New("invalid account id")
	}

	return &accountID, nil
}

/* =========================
   CART OPERATIONS
========================= */

func GetCart(stores *cart.Stores, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, store, _ := cartActor(c, stores, jwtSecret)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		items, err := store.List(ctx, owner)
		if err != nil {
			log.Println("[CART] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "carrinho indisponível"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"carrinho": items,
		})
	}
}

func AddToCart(stores *cart.Stores, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantidade inválida"})
			return
		}

		item := models.CartItem{
			ProductID: strings.TrimSpace(req.ProductID),
			Name:      strings.TrimSpace(req.Name),
			Brand:     strings.TrimSpace(req.Brand),
			Price:     req.Price,
			Flavor:    strings.TrimSpace(req.Flavor),
			Quantity:  req.Quantity,
			Image:     req.Image,
		}

		owner, store, durable := cartActor(c, stores, jwtSecret)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := store.Add(ctx, owner, item)
		if err != nil && durable {
			// Never drop an add because the durable store is down; park the
			// line in the session cart instead.
			log.Println("[CART] [ERROR] durable add failed, falling back to session cart:", err)
			sessionID := c.GetString(middleware.CartSessionKey)
			err = stores.Session.Add(ctx, sessionID, item)
		}
		if err != nil {
			log.Println("[CART] [ERROR] add failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível adicionar ao carrinho"})
			return
		}

		items, _ := store.List(ctx, owner)
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"carrinho": items,
			"message":  "Produto adicionado ao carrinho",
		})
	}
}

func RemoveFromCart(stores *cart.Stores, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartLineKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		owner, store, _ := cartActor(c, stores, jwtSecret)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := store.Remove(ctx, owner, strings.TrimSpace(req.ProductID), strings.TrimSpace(req.Flavor)); err != nil {
			log.Println("[CART] [ERROR] remove failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível remover do carrinho"})
			return
		}

		items, _ := store.List(ctx, owner)
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"carrinho": items,
			"message":  "Produto removido do carrinho",
		})
	}
}

func UpdateCartQuantity(stores *cart.Stores, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if *req.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantidade inválida"})
			return
		}

		owner, store, _ := cartActor(c, stores, jwtSecret)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := store.SetQuantity(ctx, owner, strings.TrimSpace(req.ProductID), strings.TrimSpace(req.Flavor), *req.Quantity); err != nil {
			log.Println("[CART] [ERROR] set quantity failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível atualizar o carrinho"})
			return
		}

		items, _ := store.List(ctx, owner)
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"carrinho": items,
		})
	}
}

func ClearCart(stores *cart.Stores, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, store, _ := cartActor(c, stores, jwtSecret)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := store.Clear(ctx, owner); err != nil {
			log.Println("[CART] [ERROR] clear failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível limpar o carrinho"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"carrinho": []models.CartItem{},
			"message":  "Carrinho limpo",
		})
	}
}
