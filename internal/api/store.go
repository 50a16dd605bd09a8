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

// Fixed store messages
const (
	storeExistsMsg   = "This store already exists"
	storeCreatedMsg  = "The store was successfully created"
	storeDeletedMsg  = "The store was successfully deleted"
	storeNotFoundMsg = "This store does not exists"
	storeErrorMsg    = "There was a server error while processing your request"
)

// storeStorageError logs a failed persistence operation and answers with the
// generic store error; the underlying cause stays out of the response.
func storeStorageError(c *gin.Context, name string, err error) {
	logrus.WithFields(logrus.Fields{"store": name, "error": err.Error()}).Error("Store storage operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": storeErrorMsg})
}

// GetStoreHandler returns a single store by name with its item collection
// materialized through an explicit query.
func GetStoreHandler(stores repository.StoreRepositoryI, items repository.ItemRepositoryI) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		store, err := stores.FindByName(c.Request.Context(), name)
		if err != nil {
			storeStorageError(c, name, err)
			return
		}
		if store == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": storeNotFoundMsg})
			return
		}
		storeItems, err := items.FindByStoreID(c.Request.Context(), store.StoreID)
		if err != nil {
			storeStorageError(c, name, err)
			return
		}
		c.JSON(http.StatusOK, store.Representation(storeItems))
	}
}

// CreateStoreHandler creates a store under the given name. An existing store
// with that name is a conflict.
func CreateStoreHandler(stores repository.StoreRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		existing, err := stores.FindByName(c.Request.Context(), name)
		if err != nil {
			storeStorageError(c, name, err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": storeExistsMsg})
			return
		}
		store := domain.Store{Name: name}
		if err := stores.Save(c.Request.Context(), &store); err != nil {
			storeStorageError(c, name, err)
			return
		}
		invalidateListings(c.Request.Context(), rdb)
		c.JSON(http.StatusCreated, gin.H{"message": storeCreatedMsg})
	}
}

// DeleteStoreHandler removes a store by name. Its items stay in place.
func DeleteStoreHandler(stores repository.StoreRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		store, err := stores.FindByName(c.Request.Context(), name)
		if err != nil {
			storeStorageError(c, name, err)
			return
		}
		if store == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": storeNotFoundMsg})
			return
		}
		if err := stores.Delete(c.Request.Context(), store); err != nil {
			storeStorageError(c, name, err)
			return
		}
		invalidateListings(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, gin.H{"message": storeDeletedMsg})
	}
}

// ListStoresHandler returns every store with its items nested. The listing is
// served from Redis when a fresh copy exists; cache failures fall through to
// the database.
func ListStoresHandler(stores repository.StoreRepositoryI, items repository.ItemRepositoryI, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.StoreRepresentation
		if hit, err := utils.GetCache(ctx, rdb, storesCacheKey, &cached); err == nil && hit {
			c.JSON(http.StatusOK, gin.H{"stores": cached})
			return
		}
		all, err := stores.List(ctx)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list stores")
			c.JSON(http.StatusInternalServerError, gin.H{"message": storeErrorMsg})
			return
		}
		reps := make([]domain.StoreRepresentation, 0, len(all))
		for i := range all {
			storeItems, err := items.FindByStoreID(ctx, all[i].StoreID)
			if err != nil {
				storeStorageError(c, all[i].Name, err)
				return
			}
			reps = append(reps, all[i].Representation(storeItems))
		}
		_ = utils.SetCache(ctx, rdb, storesCacheKey, reps, listingCacheTTL)
		c.JSON(http.StatusOK, gin.H{"stores": reps})
	}
}
