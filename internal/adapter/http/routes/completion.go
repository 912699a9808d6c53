package routes

import (
	"fieldops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCompletions = "/completions"
	PathReceipts    = "/receipts"
)

func addCompletionRoutes(
	rg *gin.RouterGroup,
	completionHandler *handlers.CompletionHandler,
	catalogHandler *handlers.CatalogHandler,
	receiptHandler *handlers.ReceiptHandler,
) {
	completions := rg.Group(PathCompletions)
	{
		completions.POST("", completionHandler.StartCompletion)
		completions.GET("/:session_id", completionHandler.GetCompletion)
		completions.DELETE("/:session_id", completionHandler.AbandonCompletion)

		completions.POST("/:session_id/services/toggle", completionHandler.ToggleService)
		completions.PATCH("/:session_id/services/:service_id/price", completionHandler.SetServicePrice)
		completions.PATCH("/:session_id/services/:service_id/free", completionHandler.MarkServiceFree)

		completions.PATCH("/:session_id/payment", completionHandler.SelectPayment)
		completions.POST("/:session_id/advance", completionHandler.Advance)
		completions.POST("/:session_id/retreat", completionHandler.Retreat)
	}

	// Catalog proxy keeps the platform API shape so the dashboard can hit
	// either endpoint.
	rg.GET("/services", catalogHandler.ListServices)
	rg.GET("/addon-services", catalogHandler.ListAddonServices)

	receipts := rg.Group(PathReceipts)
	{
		receipts.GET("/:job_id", receiptHandler.GetLatestReceiptByJobID)
	}
}
