package handler

import "github.com/gofiber/fiber/v2"

type RouteRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

// Register memasang semua handler di bawah satu router.
func Register(r fiber.Router, handlers ...RouteRegistrar) {
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
}
