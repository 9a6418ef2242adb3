package controller

import (
	"github.com/labstack/echo/v4"

	custommw "github.com/minimarket/marketplace-service/internal/middleware"
	"github.com/minimarket/marketplace-service/internal/service"
	"github.com/minimarket/marketplace-service/pkg/errs"
	"github.com/minimarket/marketplace-service/pkg/flash"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(protected *echo.Group, service service.CartService) {
	cc := CartController{service: service}

	protected.GET("/cart", cc.Cart)
	protected.GET("/cart/add/:id", cc.AddToCart)
	protected.POST("/cart/remove/:id", cc.RemoveFromCart)
	protected.POST("/checkout", cc.Checkout)
	protected.GET("/purchases", cc.Purchases)
}

func (cc *CartController) Cart(c echo.Context) error {
	cart, err := cc.service.GetCart(c.Request().Context(), custommw.UserID(c))
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/")
	}

	return render(c, "cart.html", echo.Map{"Cart": cart})
}

func (cc *CartController) AddToCart(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, errs.ErrClient.Error(), "/")
	}

	err = cc.service.AddToCart(c.Request().Context(), custommw.UserID(c), id)
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/")
	}

	return redirectWithFlash(c, flash.CategorySuccess, "Added to cart.", "/cart")
}

func (cc *CartController) RemoveFromCart(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, errs.ErrClient.Error(), "/cart")
	}

	err = cc.service.RemoveFromCart(c.Request().Context(), custommw.UserID(c), id)
	if err != nil {
		if err == errs.ErrForbidden {
			return redirectWithFlash(c, flash.CategoryDanger, "You can't modify this cart.", "/cart")
		}
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/cart")
	}

	return redirectWithFlash(c, flash.CategoryInfo, "Removed from cart.", "/cart")
}

func (cc *CartController) Checkout(c echo.Context) error {
	err := cc.service.Checkout(c.Request().Context(), custommw.UserID(c))
	if err != nil {
		if err == errs.ErrEmptyCart {
			return redirectWithFlash(c, flash.CategoryWarning, err.Error(), "/cart")
		}
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/cart")
	}

	return redirectWithFlash(c, flash.CategorySuccess, "Purchase complete!", "/purchases")
}

func (cc *CartController) Purchases(c echo.Context) error {
	purchases, err := cc.service.GetPurchases(c.Request().Context(), custommw.UserID(c))
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/")
	}

	return render(c, "purchases.html", echo.Map{"Purchases": purchases})
}
