package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/application/service"
	"github.com/kbhatta/quotify-api/internal/presentation/http/dto/request"
	"github.com/kbhatta/quotify-api/internal/presentation/http/dto/response"
	"github.com/kbhatta/quotify-api/pkg/csvkit"
	"github.com/kbhatta/quotify-api/pkg/pagination"
	"github.com/kbhatta/quotify-api/pkg/report"
)

// ItemHandler handles item catalog HTTP requests
type ItemHandler struct {
	catalogService *service.CatalogService
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalogService *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

// List handles listing items with search and pagination
func (h *ItemHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.catalogService.ListItems(c.Request.Context(), &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Suggest handles name autocomplete for the document screens
func (h *ItemHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.OK(c, "Suggestions retrieved successfully", []struct{}{})
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	items, err := h.catalogService.SuggestItems(c.Request.Context(), query, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suggestions retrieved successfully", items)
}

// Get handles getting a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.catalogService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), &service.ItemInput{
		Name:  req.Name,
		Rate:  req.Rate.String(),
		Stock: req.Stock.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), id, &service.ItemInput{
		Name:  req.Name,
		Rate:  req.Rate.String(),
		Stock: req.Stock.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// AdjustStock handles a manual stock correction. The delta is signed;
// the result is not floored at zero.
func (h *ItemHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Delta is required")
		return
	}

	item, err := h.catalogService.AdjustStock(c.Request.Context(), id, *req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteAll handles wiping the catalog
func (h *ItemHandler) DeleteAll(c *gin.Context) {
	if err := h.catalogService.DeleteAllItems(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Import handles a CSV catalog upload
func (h *ItemHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "CSV file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "Failed to read uploaded file")
		return
	}

	records, err := csvkit.Parse(data)
	if err != nil {
		response.BadRequest(c, "Invalid CSV file: "+err.Error())
		return
	}

	summary, err := h.catalogService.ImportItems(c.Request.Context(), records)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import completed", summary)
}

// Export handles downloading the catalog as a spreadsheet
func (h *ItemHandler) Export(c *gin.Context) {
	items, err := h.catalogService.ListAllItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	workbook, err := report.ItemsWorkbook(items)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", `attachment; filename="items.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
