package api

import (
	"net/http"

	"github.com/Malvezin/miglesMakeStore/internal/api/handler"
	"github.com/Malvezin/miglesMakeStore/internal/api/middleware"
	"github.com/Malvezin/miglesMakeStore/internal/pkg/metrics"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/gin-gonic/gin"
)

// Services agrupa os serviços que o router expõe.
type Services struct {
	Catalog   *service.CatalogService
	Cart      *service.CartService
	Checkout  *service.CheckoutService
	Order     *service.OrderService
	User      *service.UserService
	Dashboard *service.DashboardService
}

// NewRouter monta todas as rotas da loja. Rotas de carrinho, checkout e
// pedidos próprios exigem sessão; o grupo admin exige papel de equipe,
// sempre verificado no servidor.
func NewRouter(svcs Services, m *metrics.StoreMetrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.SessionMiddleware(svcs.User))

	catalogHandler := handler.NewCatalogHandler(svcs.Catalog)
	cartHandler := handler.NewCartHandler(svcs.Cart, m)
	checkoutHandler := handler.NewCheckoutHandler(svcs.Checkout, m)
	orderHandler := handler.NewOrderHandler(svcs.Order, svcs.Checkout, m)
	adminUserHandler := handler.NewAdminUserHandler(svcs.User)
	dashboardHandler := handler.NewDashboardHandler(svcs.Dashboard)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/produtos", catalogHandler.ListActive)
		api.GET("/produtos/:productId", catalogHandler.GetProduct)

		carrinho := api.Group("/carrinho", middleware.RequireAuth())
		{
			carrinho.GET("", cartHandler.GetCart)
			carrinho.DELETE("", cartHandler.Clear)
			carrinho.POST("/itens", cartHandler.AddItem)
			carrinho.PATCH("/itens/:productId", cartHandler.UpdateQuantity)
			carrinho.DELETE("/itens/:productId", cartHandler.RemoveItem)
		}

		api.POST("/checkout", middleware.RequireAuth(), checkoutHandler.Checkout)
		api.GET("/pedidos", middleware.RequireAuth(), orderHandler.ListMine)

		admin := api.Group("/admin", middleware.RequireAdmin(svcs.User))
		{
			admin.GET("/produtos", catalogHandler.ListAll)
			admin.POST("/produtos", catalogHandler.CreateProduct)
			admin.PUT("/produtos/:productId", catalogHandler.UpdateProduct)
			admin.DELETE("/produtos/:productId", catalogHandler.DeleteProduct)

			admin.GET("/pedidos", orderHandler.ListWorklist)
			admin.POST("/pedidos", orderHandler.CreateManual)
			admin.GET("/pedidos/:orderId", orderHandler.GetOrder)
			admin.PATCH("/pedidos/:orderId/status", orderHandler.UpdateStatus)
			admin.POST("/pedidos/:orderId/arquivar", orderHandler.Archive)
			admin.GET("/pedidos/:orderId/eventos", orderHandler.ListEvents)

			admin.GET("/usuarios", adminUserHandler.ListAdmins)
			admin.POST("/usuarios", adminUserHandler.GrantAdmin)
			admin.DELETE("/usuarios/:id", adminUserHandler.RevokeAdmin)

			admin.GET("/painel", dashboardHandler.Stats)
		}
	}

	return router
}
