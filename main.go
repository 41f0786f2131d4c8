package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/cart"
	"backend/internal/catalog"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/notify"
	"backend/internal/payment"
	"backend/internal/ratelimit"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureAccountIndexes(db); err != nil {
		log.Println("⚠️ account index warning:", err)
	}
	if err := database.EnsureCartIndexes(db); err != nil {
		log.Println("⚠️ cart index warning:", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Println("⚠️ order index warning:", err)
	}
	if err := database.EnsureNotificationIndexes(db); err != nil {
		log.Println("⚠️ notification index warning:", err)
	}

	cat, err := catalog.Load(config.AppEnv.CatalogPath)
	if err != nil {
		log.Println("⚠️ catalog load warning:", err)
		cat = catalog.Empty()
	} else {
		log.Println("[CATALOG] [INFO] loaded", cat.Len(), "products")
	}

	stores := &cart.Stores{
		Durable: cart.NewMongoStore(db),
		Session: cart.NewMemoryStore(),
	}

	provider := payment.NewMercadoPago(config.AppEnv.MercadoPagoAPIURL, config.AppEnv.MercadoPagoToken)
	messenger := notify.NewWhatsApp(config.AppEnv.WhatsAppCountry)
	adminLimiter := ratelimit.New(config.AppEnv.AdminLoginMaxFails, config.AppEnv.AdminLoginWindow)

	secret := config.AppEnv.JWTSecret
	accessTTL := config.AppEnv.AccessTokenTTL
	refreshTTL := config.AppEnv.RefreshTokenTTL

	r := gin.Default()
	r.Use(middleware.CartSession())

	r.POST("/admin/login", handlers.AdminLogin(db, secret, accessTTL, adminLimiter))
	r.POST("/admin/logout", handlers.AdminLogout())

	api := r.Group("/api")
	{
		api.POST("/auth/register", handlers.Register(db, stores, secret, accessTTL, refreshTTL))
		api.POST("/auth/login", handlers.Login(db, stores, secret, accessTTL, refreshTTL))
		api.GET("/auth/me", middleware.CustomerAuth(secret), handlers.GetMe(db))
		api.POST("/auth/refresh", handlers.Refresh(db, secret, accessTTL, refreshTTL))
		api.POST("/auth/logout", handlers.Logout(db))
		api.POST("/auth/recover", handlers.RecoverPassword(db))

		api.GET("/products", handlers.GetProducts(cat))

		api.GET("/cart", handlers.GetCart(stores, secret))
		api.POST("/cart", handlers.AddToCart(stores, secret))
		api.PUT("/cart", handlers.UpdateCartQuantity(stores, secret))
		api.DELETE("/cart", handlers.RemoveFromCart(stores, secret))
		api.DELETE("/cart/all", handlers.ClearCart(stores, secret))

		api.POST("/checkout", handlers.Checkout(db, stores, provider, secret, config.AppEnv.BaseURL))
		api.POST("/orders/:id/payment", handlers.RetryPayment(db, provider, config.AppEnv.BaseURL))
		api.GET("/orders/status", handlers.GetOrderStatus(db))
	}

	r.GET("/pagamento/sucesso", handlers.PaymentSuccess())
	r.GET("/pagamento/falha", handlers.PaymentFailure())
	r.GET("/pagamento/pendente", handlers.PaymentPending())

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(secret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/orders", handlers.GetOrders(db))
		admin.PUT("/orders/:id/status", handlers.SetOrderStatus(db, messenger))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
