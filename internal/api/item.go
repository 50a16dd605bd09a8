package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"inventory_api/internal/domain"
	"inventory_api/internal/repository"
	"inventory_api/internal/utils"
)

// ItemRequest carries the writable fields of an item; the name comes from the
// URL path. The fields are pointers so that "required" checks presence, not
// the zero value: a price of 0 is a legal body.
type ItemRequest struct {
	Price   *float64 `json:"price" binding:"required"`    // Item price
	StoreID *uint    `json:"store_id" binding:"required"` // Owning store id
}

// Fixed item messages
const (
	itemNotFoundMsg = "The item provided was not found."
	itemExistsMsg   = "That item already exists in inventory."
	itemCreatedMsg  = "Item has been added to the inventory successfully."
	itemDeletedMsg  = "The item has been deleted from the inventory."
	itemErrorMsg    = "There was a server error processing the item"
)

var itemFieldHelp = map[string]string{
	"price":    "This field is required.",
	"store_id": "Every item needs a store id.",
}

// itemStorageError logs a failed persistence operation and answers with the
// generic item error; the underlying cause stays out of the response.
func itemStorageError(c *gin.Context, name string, err error) {
	logrus.WithFields(logrus.Fields{"item": name, "error": err.Error()}).Error("Item storage operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": itemErrorMsg})
}

// GetItemHandler returns a single item by name. The route is mounted behind
// the JWT middleware.
func GetItemHandler(items repository.ItemRepositoryI) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		item, err := items.FindByName(c.Request.Context(), name)
		if err != nil {
			itemStorageError(c, name, err)
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": itemNotFoundMsg})
			return
		}
		c.JSON(http.StatusOK, item.Representation())
	}
}

// CreateItemHandler creates an item under the given name. An existing item
// with that name is a conflict; the existence check runs before the body is
// validated.
func CreateItemHandler(items repository.ItemRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		existing, err := items.FindByName(c.Request.Context(), name)
		if err != nil {
			itemStorageError(c, name, err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": itemExistsMsg})
			return
		}
		var req ItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessages(err, itemFieldHelp)})
			return
		}
		item := domain.Item{Name: name, Price: *req.Price, StoreID: *req.StoreID}
		if err := items.Save(c.Request.Context(), &item); err != nil {
			itemStorageError(c, name, err)
			return
		}
		invalidateListings(c.Request.Context(), rdb)
		c.JSON(http.StatusCreated, gin.H{"message": itemCreatedMsg, "item": item.Representation()})
	}
}

// PutItemHandler upserts an item: an existing item gets its price and store
// id replaced (200), a missing one is created (201). The stored result is the
// same either way.
func PutItemHandler(items repository.ItemRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		var req ItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessages(err, itemFieldHelp)})
			return
		}
		item, err := items.FindByName(c.Request.Context(), name)
		if err != nil {
			itemStorageError(c, name, err)
			return
		}
		action, code := "updated", http.StatusOK
		if item == nil {
			action, code = "created", http.StatusCreated
			item = &domain.Item{Name: name}
		}
		item.Price, item.StoreID = *req.Price, *req.StoreID
		if err := items.Save(c.Request.Context(), item); err != nil {
			itemStorageError(c, name, err)
			return
		}
		invalidateListings(c.Request.Context(), rdb)
		c.JSON(code, gin.H{"message": "Item has been " + action + ".", "item": item.Representation()})
	}
}

// DeleteItemHandler removes an item by name.
func DeleteItemHandler(items repository.ItemRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		item, err := items.FindByName(c.Request.Context(), name)
		if err != nil {
			itemStorageError(c, name, err)
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": itemNotFoundMsg})
			return
		}
		if err := items.Delete(c.Request.Context(), item); err != nil {
			itemStorageError(c, name, err)
			return
		}
		invalidateListings(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, gin.H{"message": itemDeletedMsg})
	}
}

// ListItemsHandler returns every item. The listing is served from Redis when
// a fresh copy exists; cache failures fall through to the database.
func ListItemsHandler(items repository.ItemRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.ItemRepresentation
		if hit, err := utils.GetCache(ctx, rdb, itemsCacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{"items": cached})
			return
		}
		all, err := items.List(ctx)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list items")
			c.JSON(http.StatusInternalServerError, gin.H{"message": itemErrorMsg})
			return
		}
		reps := make([]domain.ItemRepresentation, 0, len(all))
		for i := range all {
			reps = append(reps, all[i].Representation())
		}
		_ = utils.SetCache(ctx, rdb, itemsCacheKey, reps, listingCacheTTL)
		c.JSON(http.StatusOK, gin.H{"items": reps})
	}
}
