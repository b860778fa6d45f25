package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jeancro/internal/domain"
	applog "jeancro/internal/log"
	"jeancro/internal/services"
	"jeancro/internal/store"
	"jeancro/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Store   *store.Store
}

// GET /api/v1/products?q=&category=&inStock=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	catID := c.Query("category")
	if catID != "" {
		if _, ok := validate.ID(catID); !ok {
			return jsonError(c, fiber.StatusBadRequest, "invalid category id")
		}
	}
	q, ok := validate.Query(c.Query("q"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q"})
		return jsonError(c, fiber.StatusBadRequest, "search term too long")
	}
	inStock := c.QueryBool("inStock")
	if q == "" && catID == "" && !inStock {
		return c.JSON(h.Catalog.ListProducts())
	}
	return c.JSON(h.Catalog.Search(q, catID, inStock, lang(c)))
}

// GET /api/v1/products/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	return c.JSON(p)
}

func decodeProduct(c *fiber.Ctx) (domain.Product, error) {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return p, errors.New("malformed product payload")
	}
	if !validate.Localized(p.Name) {
		return p, errors.New("product name requires an English value")
	}
	if !validate.Price(p.Price) {
		return p, errors.New("price out of range")
	}
	if p.CategoryID != "" {
		if _, ok := validate.ID(p.CategoryID); !ok {
			return p, errors.New("invalid category id")
		}
	}
	return p, nil
}

// POST /api/v1/admin/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	p, err := decodeProduct(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	} else if _, ok := validate.ID(p.ID); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Store.AddProduct(p); err != nil {
		applog.Error(c, "admin.product.create.fail", err, map[string]any{"product": p.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not save product")
	}
	applog.Audit(c, "admin.product.create", map[string]any{"product": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/v1/admin/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	p, err := decodeProduct(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.Store.UpdateProduct(p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "admin.product.update.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not save product")
	}
	applog.Audit(c, "admin.product.update", map[string]any{"product": id})
	return c.JSON(p)
}

// DELETE /api/v1/admin/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err := h.Store.DeleteProduct(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete product")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.SendStatus(fiber.StatusNoContent)
}
