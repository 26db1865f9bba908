package server

import (
	"log"

	"petshop/internal/middleware"
	"petshop/internal/modules/admin"
	"petshop/internal/modules/auth"
	"petshop/internal/modules/booking"
	"petshop/internal/modules/cart"
	"petshop/internal/modules/catalog"
	"petshop/internal/modules/order"
	"petshop/internal/modules/payment"
	"petshop/internal/modules/pet"
	"petshop/internal/pkg/jwt"
	"petshop/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BuildRouter wires every repository, service and handler onto one engine.
// The e2e suite boots the same router against an in-memory database.
func BuildRouter(db *gorm.DB, jwtService *jwt.Service, paymentSeed int64) *gin.Engine {
	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	carts := repository.NewCartRepository(db)
	orders := repository.NewOrderRepository(db)
	bookings := repository.NewBookingRepository(db)
	pets := repository.NewPetRepository(db)

	payments := payment.NewService(paymentSeed)

	authService := auth.NewService(users, jwtService, log.Printf)
	catalogService := catalog.NewService(items, log.Printf)
	cartService := cart.NewService(carts, items, log.Printf)
	orderService := order.NewService(orders, items, payments, log.Printf)
	bookingService := booking.NewService(bookings, items, payments, log.Printf)
	petService := pet.NewService(pets)
	adminService := admin.NewService(orders, bookings, users, log.Printf)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.Identity(jwtService))

	api := r.Group("/api/v1")
	auth.NewHandler(authService).RegisterRoutes(api)
	catalog.NewHandler(catalogService).RegisterRoutes(api)
	cart.NewHandler(cartService).RegisterRoutes(api)
	order.NewHandler(orderService).RegisterRoutes(api)
	booking.NewHandler(bookingService).RegisterRoutes(api)
	pet.NewHandler(petService).RegisterRoutes(api)
	admin.NewHandler(adminService).RegisterRoutes(api)

	return r
}
