package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbhatta/quotify-api/internal/application/service"
	"github.com/kbhatta/quotify-api/internal/domain/enum"
	"github.com/kbhatta/quotify-api/internal/domain/ledger"
	"github.com/kbhatta/quotify-api/internal/presentation/http/dto/request"
	"github.com/kbhatta/quotify-api/internal/presentation/http/dto/response"
	"github.com/kbhatta/quotify-api/pkg/pdf"
	"github.com/kbhatta/quotify-api/pkg/report"
)

// DocumentHandler handles quotation and bill HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func toLedgerInputs(lines []request.LineRequest) []ledger.Input {
	inputs := make([]ledger.Input, len(lines))
	for i, line := range lines {
		inputs[i] = ledger.Input{Item: line.Item, Qty: line.Qty.String()}
	}
	return inputs
}

// kindFilter parses the optional ?kind= query parameter
func kindFilter(c *gin.Context) (*enum.DocumentKind, bool) {
	raw := c.Query("kind")
	if raw == "" {
		return nil, true
	}
	kind := enum.DocumentKind(raw)
	if !kind.Valid() {
		return nil, false
	}
	return &kind, true
}

// List handles listing documents, optionally filtered by kind and by
// customer name search
func (h *DocumentHandler) List(c *gin.Context) {
	kind, ok := kindFilter(c)
	if !ok {
		response.BadRequest(c, "Kind must be quotation or bill")
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), kind, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Documents retrieved successfully", docs)
}

// Preview handles a dry-run totals computation for in-progress edits
func (h *DocumentHandler) Preview(c *gin.Context) {
	var req request.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	preview, err := h.documentService.PreviewDocument(c.Request.Context(), toLedgerInputs(req.Lines))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview computed successfully", preview)
}

// Create handles finalizing a quotation or bill
func (h *DocumentHandler) Create(c *gin.Context) {
	var req request.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), &service.DocumentInput{
		Kind:         req.Kind,
		CustomerName: req.CustomerName,
		Lines:        toLedgerInputs(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document saved successfully", doc)
}

// Get handles getting a single document
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved successfully", doc)
}

// Update handles editing a saved document
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), id, &service.DocumentInput{
		Kind:         req.Kind,
		CustomerName: req.CustomerName,
		Lines:        toLedgerInputs(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document updated successfully", doc)
}

// Delete handles deleting a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// PDF handles downloading a document as a printable PDF
func (h *DocumentHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := pdf.Render(doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Kind.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Export handles downloading the document register as a spreadsheet
func (h *DocumentHandler) Export(c *gin.Context) {
	kind, ok := kindFilter(c)
	if !ok {
		response.BadRequest(c, "Kind must be quotation or bill")
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), kind, "")
	if err != nil {
		response.Error(c, err)
		return
	}

	workbook, err := report.DocumentsWorkbook(docs)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", `attachment; filename="documents.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if _, err := workbook.WriteTo(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
