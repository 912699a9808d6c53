package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const catalogCacheTTL = 30 * time.Second

// CatalogHandler proxies the platform service/add-on catalogs with a short
// Redis cache in front. The redis client may be nil; the proxy then always
// hits the origin.

type CatalogHandler struct {
	api interfaces.IPlatformAPI
	rdb *redis.Client
}

func NewCatalogHandler(api interfaces.IPlatformAPI, rdb *redis.Client) *CatalogHandler {
	return &CatalogHandler{api: api, rdb: rdb}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	h.serveCatalog(c, "catalog:services", h.api.ListServices, func(s []entities.CatalogService) any {
		return response.FromServices(s)
	})
}

func (h *CatalogHandler) ListAddonServices(c *gin.Context) {
	h.serveCatalog(c, "catalog:addons", h.api.ListAddonServices, func(s []entities.CatalogService) any {
		return response.FromAddons(s)
	})
}

func (h *CatalogHandler) serveCatalog(
	c *gin.Context,
	cacheKey string,
	fetch func(ctx context.Context) ([]entities.CatalogService, error),
	wrap func([]entities.CatalogService) any,
) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var services []entities.CatalogService
			if err := json.Unmarshal(cached, &services); err == nil {
				c.JSON(http.StatusOK, wrap(services))
				return
			}
		}
	}

	services, err := fetch(ctx)
	if err != nil {
		log.Printf("[catalog][handler] fetch failed key=%s err=%v", cacheKey, err)
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.rdb != nil {
		if b, err := json.Marshal(services); err == nil {
			if err := h.rdb.Set(ctx, cacheKey, b, catalogCacheTTL).Err(); err != nil {
				log.Printf("[catalog][handler] cache write failed key=%s err=%v", cacheKey, err)
			}
		}
	}

	c.JSON(http.StatusOK, wrap(services))
}
