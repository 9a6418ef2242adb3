package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/internal/dto"
	custommw "github.com/minimarket/marketplace-service/internal/middleware"
	"github.com/minimarket/marketplace-service/internal/service"
	"github.com/minimarket/marketplace-service/pkg/errs"
	"github.com/minimarket/marketplace-service/pkg/flash"
)

type ProductController struct {
	service service.CatalogService
}

func CreateProductController(e *echo.Echo, protected *echo.Group, service service.CatalogService) {
	pc := ProductController{service: service}

	e.GET("/", pc.Feed)
	e.GET("/product/:id", pc.ProductDetail)

	protected.GET("/add", pc.AddProductForm)
	protected.POST("/add", pc.AddProduct)
	protected.GET("/my-listings", pc.MyListings)
	protected.GET("/edit/:id", pc.EditProductForm)
	protected.POST("/edit/:id", pc.UpdateProduct)
	protected.POST("/delete/:id", pc.DeleteProduct)
}

func (pc *ProductController) Feed(c echo.Context) error {
	filter := dto.FeedFilter{}
	err := c.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "Feed").Msg("")
	}

	feed, err := pc.service.GetFeed(c.Request().Context(), filter)
	if err != nil {
		flash.Add(c, flash.CategoryDanger, err.Error())
	}

	return render(c, "feed.html", echo.Map{
		"Products":         feed.Products,
		"Categories":       feed.Categories,
		"Query":            filter.Query,
		"SelectedCategory": filter.Category,
	})
}

func (pc *ProductController) ProductDetail(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, errs.ErrClient.Error(), "/")
	}

	product, err := pc.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/")
	}

	return render(c, "product_detail.html", echo.Map{"Product": product})
}

func (pc *ProductController) AddProductForm(c echo.Context) error {
	return render(c, "product_form.html", echo.Map{
		"Categories": domain.SuggestedCategories,
		"Editing":    false,
	})
}

func (pc *ProductController) AddProduct(c echo.Context) error {
	payload := dto.ProductRequest{}
	err := c.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	_, err = pc.service.AddProduct(c.Request().Context(), custommw.UserID(c), payload)
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/add")
	}

	return redirectWithFlash(c, flash.CategorySuccess, "Listing added!", "/my-listings")
}

func (pc *ProductController) MyListings(c echo.Context) error {
	products, err := pc.service.GetOwnedProducts(c.Request().Context(), custommw.UserID(c))
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/")
	}

	return render(c, "my_listings.html", echo.Map{"Products": products})
}

func (pc *ProductController) EditProductForm(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, errs.ErrClient.Error(), "/my-listings")
	}

	product, err := pc.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/my-listings")
	}

	if product.OwnerID != custommw.UserID(c) {
		return redirectWithFlash(c, flash.CategoryDanger, "You can't edit this product.", "/my-listings")
	}

	return render(c, "product_form.html", echo.Map{
		"Categories": domain.SuggestedCategories,
		"Editing":    true,
		"Product":    product,
	})
}

func (pc *ProductController) UpdateProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, errs.ErrClient.Error(), "/my-listings")
	}

	payload := dto.ProductRequest{}
	err = c.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	err = pc.service.UpdateProduct(c.Request().Context(), custommw.UserID(c), id, payload)
	if err != nil {
		if err == errs.ErrForbidden {
			return redirectWithFlash(c, flash.CategoryDanger, "You can't edit this product.", "/my-listings")
		}
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/my-listings")
	}

	return redirectWithFlash(c, flash.CategorySuccess, "Listing updated.", "/my-listings")
}

func (pc *ProductController) DeleteProduct(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return redirectWithFlash(c, flash.CategoryDanger, errs.ErrClient.Error(), "/my-listings")
	}

	err = pc.service.DeleteProduct(c.Request().Context(), custommw.UserID(c), id)
	if err != nil {
		if err == errs.ErrForbidden {
			return redirectWithFlash(c, flash.CategoryDanger, "You can't delete this product.", "/my-listings")
		}
		return redirectWithFlash(c, flash.CategoryDanger, err.Error(), "/my-listings")
	}

	return redirectWithFlash(c, flash.CategoryInfo, "Listing deleted.", "/my-listings")
}
