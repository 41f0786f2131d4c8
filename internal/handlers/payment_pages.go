package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Payment provider back-URL landings. The provider redirects the shopper here
// after checkout; order status itself only changes through the admin panel.

func PaymentSuccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Pagamento aprovado! Em breve você receberá a confirmação do pedido.",
		})
	}
}

func PaymentFailure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Pagamento não aprovado. Você pode tentar novamente pelo link do pedido.",
		})
	}
}

func PaymentPending() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Pagamento em análise. Avisaremos assim que for confirmado.",
		})
	}
}
