package handler

import (
	"strconv"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"chimichangapp/internal/model"
)

// minQueryLength is the shortest q the item search accepts.
const minQueryLength = 3

// itemPayload mirrors model.Item with every field optional so the handler
// can tell an omitted required field from its zero value.
type itemPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Tax         *float64 `json:"tax"`
}

// ListItems returns the fixed demo item listing.
//
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} model.ItemSummary
// @Router /items/ [get]
func ListItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON([]model.ItemSummary{
			{Name: "wand"},
			{Name: "flying broom"},
		})
	}
}

// UpdateItem validates an item payload and echoes it back with the path id.
//
// @Summary Update an item
// @Description Validates the submitted item and echoes it back together with the path id.
// @Tags items
// @Accept json
// @Produce json
// @Param item_id path int true "Item ID" example(42)
// @Param item body model.Item true "Item payload"
// @Success 200 {object} ItemUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Router /items/{item_id} [put]
func UpdateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := strconv.Atoi(c.Params("item_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ITEM_ID", "item_id must be an integer")
		}

		var body itemPayload
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}
		if body.Name == nil || *body.Name == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "name is required")
		}
		if body.Price == nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "price is required")
		}

		item := model.Item{
			Name:        *body.Name,
			Description: body.Description,
			Price:       *body.Price,
			Tax:         body.Tax,
		}
		return c.JSON(ItemUpdateResponse{ItemID: itemID, Item: item})
	}
}

// ListNewItems serves the item search demo with its optional query string.
//
// @Summary Search items
// @Description This API is for creating new items.
// @Tags items
// @Produce json
// @Param q query string false "Query string for the items to search in the database that have a good match" minlength(3)
// @Success 200 {object} ItemSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /new_items/ [get]
func ListNewItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := ItemSearchResponse{
			Items: []model.ItemRef{
				{ItemID: "Foo"},
				{ItemID: "Bar"},
			},
		}
		if q := c.Query("q"); q != "" {
			if utf8.RuneCountInString(q) < minQueryLength {
				return writeError(c, fiber.StatusBadRequest, "QUERY_TOO_SHORT", "q must be at least 3 characters")
			}
			res.Q = &q
		}
		return c.JSON(res)
	}
}
