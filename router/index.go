package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/zacharvey88/teatime-collective-sub000/handler"
	"github.com/zacharvey88/teatime-collective-sub000/middleware"
	"github.com/zacharvey88/teatime-collective-sub000/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account")
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	// Public site
	cakes := v1.Group("/cakes")
	cakes.Get("/", handler.GetCakes)
	cakes.Get("/:slug", handler.GetCakeBySlug)

	v1.Get("/markets", handler.GetMarkets)
	v1.Get("/holidays", handler.GetHolidays)
	v1.Get("/reviews", handler.GetReviews)
	v1.Get("/images/:gallery", validate.Gallery(), handler.GetGalleryImages)
	v1.Get("/settings", handler.GetSettings)
	v1.Get("/contact", handler.GetContactInfo)

	// Session cart
	cart := v1.Group("/cart")
	cart.Get("/", handler.GetCart)
	cart.Post("/items", validate.AddCartItem(), handler.AddCartItem)
	cart.Put("/items/:lineId", validate.UpdateCartItem(), handler.UpdateCartItem)
	cart.Delete("/items/:lineId", handler.RemoveCartItem)
	cart.Delete("/", handler.ClearCart)

	// Order submission + public status lookup
	orders := v1.Group("/orders")
	orders.Post("/", validate.CreateOrder(), handler.CreateOrder)
	orders.Get("/:publicCode", handler.GetOrderByCode)

	// Admin
	admin := v1.Group("/admin", middleware.Protected())

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", handler.GetOrders)
	adminOrders.Get("/feed", websocket.New(handler.OrderFeed))
	adminOrders.Get("/:orderId", validate.GetById("orderId"), handler.GetOrderById)
	adminOrders.Patch("/:orderId/status", validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	adminOrders.Delete("/:orderId", validate.GetById("orderId"), handler.DeleteOrder)

	adminCakes := admin.Group("/cakes")
	adminCakes.Get("/", handler.GetCakesAdmin)
	adminCakes.Post("/", validate.CreateCake(), handler.CreateCake)
	adminCakes.Put("/:cakeId", validate.GetById("cakeId"), validate.UpdateCake(), handler.UpdateCake)
	adminCakes.Delete("/:cakeId", validate.GetById("cakeId"), handler.DeleteCake)
	adminCakes.Patch("/order", validate.Reorder(), handler.ReorderCakes)
	adminCakes.Post("/:cakeId/sizes", validate.GetById("cakeId"), validate.UpsertCakeSize(), handler.AddCakeSize)

	adminSizes := admin.Group("/cake-sizes")
	adminSizes.Put("/:sizeId", validate.GetById("sizeId"), validate.UpsertCakeSize(), handler.UpdateCakeSize)
	adminSizes.Delete("/:sizeId", validate.GetById("sizeId"), handler.DeleteCakeSize)

	adminCategories := admin.Group("/cake-categories")
	adminCategories.Post("/", validate.CreateCakeCategory(), handler.CreateCakeCategory)
	adminCategories.Put("/:categoryId", validate.GetById("categoryId"), validate.UpdateCakeCategory(), handler.UpdateCakeCategory)
	adminCategories.Patch("/order", validate.Reorder(), handler.ReorderCakeCategories)

	adminImages := admin.Group("/images/:gallery", validate.Gallery())
	adminImages.Get("/", handler.GetGalleryImagesAdmin)
	adminImages.Post("/", handler.UploadGalleryImage)
	adminImages.Put("/:imageId", validate.GetById("imageId"), validate.UpdateImage(), handler.UpdateGalleryImage)
	adminImages.Delete("/:imageId", validate.GetById("imageId"), handler.DeleteGalleryImage)

	adminMarkets := admin.Group("/markets")
	adminMarkets.Get("/", handler.GetMarketsAdmin)
	adminMarkets.Post("/", validate.CreateMarket(), handler.CreateMarket)
	adminMarkets.Put("/:marketId", validate.GetById("marketId"), validate.UpdateMarket(), handler.UpdateMarket)
	adminMarkets.Delete("/:marketId", validate.GetById("marketId"), handler.DeleteMarket)
	adminMarkets.Post("/:marketId/dates", validate.GetById("marketId"), validate.CreateMarketDate(), handler.CreateMarketDate)

	admin.Delete("/market-dates/:dateId", validate.GetById("dateId"), handler.DeleteMarketDate)

	adminHolidays := admin.Group("/holidays")
	adminHolidays.Get("/", handler.GetHolidaysAdmin)
	adminHolidays.Post("/", validate.CreateHoliday(), handler.CreateHoliday)
	adminHolidays.Put("/:holidayId", validate.GetById("holidayId"), validate.UpdateHoliday(), handler.UpdateHoliday)
	adminHolidays.Delete("/:holidayId", validate.GetById("holidayId"), handler.DeleteHoliday)

	adminReviews := admin.Group("/reviews")
	adminReviews.Get("/", handler.GetReviewsAdmin)
	adminReviews.Post("/", validate.CreateReview(), handler.CreateReview)
	adminReviews.Put("/:reviewId", validate.GetById("reviewId"), validate.UpdateReview(), handler.UpdateReview)
	adminReviews.Delete("/:reviewId", validate.GetById("reviewId"), handler.DeleteReview)

	admin.Get("/settings", handler.GetSettingsAdmin)
	admin.Put("/settings", validate.UpdateSetting(), handler.UpdateSettings)
	admin.Put("/contact", validate.UpdateContactInfo(), handler.UpdateContactInfo)

	adminCustomers := admin.Group("/customers")
	adminCustomers.Get("/", handler.GetCustomers)
	adminCustomers.Get("/:customerId/orders", validate.GetById("customerId"), handler.GetCustomerOrders)

	admin.Get("/stats", handler.GetAdminStats)
}
