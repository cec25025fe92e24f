package rest

import (
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxdocs-api/internal/application/ports"
	domain "taxdocs-api/internal/domain/document"
	"taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/jwt"
	"taxdocs-api/internal/infrastructure/storage"
	"taxdocs-api/internal/interface/api/rest/dto/document"
	"taxdocs-api/internal/interface/api/rest/middleware"
	"taxdocs-api/internal/interface/api/rest/validator"
)

// 10MB
const maxSize = int64(10 << 20)

type DocumentController struct {
	documentService ports.DocumentService
	logger          *zap.Logger
}

func NewDocumentController(
	r *gin.Engine,
	documentService ports.DocumentService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *DocumentController {
	dc := &DocumentController{
		documentService: documentService,
		logger:          logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteDocuments, auth, dc.GetDocumentsHandler)
	r.GET(RouteDocumentsByCategory, auth, dc.GetDocumentsByCategoryHandler)
	r.GET(RouteDocumentFiles, auth, dc.DownloadDocumentFileHandler)
	r.POST(RouteDocuments, auth, dc.CreateDocumentHandler)
	r.PUT(RouteDocument, auth, dc.UpdateDocumentHandler)
	r.DELETE(RouteDocument, auth, dc.DeleteDocumentHandler)

	return dc
}

// identity pulls the authenticated caller out of the JWT claims. Handlers
// never take the owner from the URL or body: that is what keeps every
// operation self-only.
func identity(c *gin.Context) (user.UUID, string, bool) {
	ok, uuid := validator.IsUUID(c.GetString(middleware.CtxUserID))
	email := c.GetString(middleware.CtxUserEmail)
	if !ok || email == "" {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return uuid, "", false
	}

	return uuid, email, true
}

func (dc *DocumentController) GetDocumentsHandler(c *gin.Context) {
	uuid, _, ok := identity(c)
	if !ok {
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}
	taxYear, err := validator.ValidateTaxYear(c.Query("tax_year"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	docs, err := dc.documentService.FindDocuments(c.Request.Context(), uuid, nil, taxYear, page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get documents"},
		)
		dc.logger.Error("FindDocuments() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, document.ResponseData{
		Data: document.ToResponseDocuments(docs),
	})
}

func (dc *DocumentController) GetDocumentsByCategoryHandler(c *gin.Context) {
	uuid, _, ok := identity(c)
	if !ok {
		return
	}

	category, valid := domain.ParseCategory(c.Param("category"))
	if !valid {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "unknown category"},
		)
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}
	taxYear, err := validator.ValidateTaxYear(c.Query("tax_year"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	docs, err := dc.documentService.FindDocuments(c.Request.Context(), uuid, &category, taxYear, page)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get documents"},
		)
		dc.logger.Error("FindDocuments() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, document.ResponseData{
		Data: document.ToResponseDocuments(docs),
	})
}

func (dc *DocumentController) CreateDocumentHandler(c *gin.Context) {
	uuid, email, ok := identity(c)
	if !ok {
		return
	}

	req := document.Request{
		Category:     c.PostForm("category"),
		DocumentName: c.PostForm("document_name"),
		Amount:       c.PostForm("amount"),
		TaxYear:      c.PostForm("relevant_tax_year"),
	}
	if errs := validator.ValidateDocument(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	meta, err := document.ToDomainDocument(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	doc, err := dc.documentService.CreateDocument(c.Request.Context(), uuid, email, meta, fh)
	if err != nil {
		dc.respondStorageError(c, err, "failed to create a document")
		dc.logger.Error("CreateDocument() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, document.ToResponseDocument(*doc))
}

func (dc *DocumentController) UpdateDocumentHandler(c *gin.Context) {
	uuid, email, ok := identity(c)
	if !ok {
		return
	}

	valid, docUUID := validator.IsUUID(c.Param("doc_id"))
	if !valid {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "doc_id must be a valid UUID"},
		)
		return
	}

	req := document.Request{
		Category:     c.PostForm("category"),
		DocumentName: c.PostForm("document_name"),
		Amount:       c.PostForm("amount"),
		TaxYear:      c.PostForm("relevant_tax_year"),
	}
	upd, err := document.ToDomainUpdate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		fh = nil // replacement file is optional on update
	}
	if fh != nil && (fh.Size <= 0 || fh.Size > maxSize) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	doc, err := dc.documentService.UpdateDocument(c.Request.Context(), uuid, email, docUUID, upd, fh)
	if err != nil {
		dc.respondStorageError(c, err, "failed to update a document")
		dc.logger.Error("UpdateDocument() error", zap.Error(err))
		return
	}
	if doc == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "document not found"},
		)
		return
	}

	c.JSON(http.StatusOK, document.ToResponseDocument(*doc))
}

func (dc *DocumentController) DeleteDocumentHandler(c *gin.Context) {
	uuid, email, ok := identity(c)
	if !ok {
		return
	}

	valid, docUUID := validator.IsUUID(c.Param("doc_id"))
	if !valid {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "doc_id must be a valid UUID"},
		)
		return
	}

	doc, err := dc.documentService.DeleteDocument(c.Request.Context(), uuid, email, docUUID)
	if err != nil {
		dc.respondStorageError(c, err, "failed to delete a document")
		dc.logger.Error("DeleteDocument() error", zap.Error(err))
		return
	}
	if doc == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "document not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (dc *DocumentController) DownloadDocumentFileHandler(c *gin.Context) {
	_, email, ok := identity(c)
	if !ok {
		return
	}

	relPath := strings.TrimPrefix(c.Param("file_path"), "/")

	// the first path element names the owner; reject foreign paths before
	// the store ever sees them
	owner, _, found := strings.Cut(relPath, "/")
	if !found || owner != email {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "access denied"},
		)
		return
	}

	rc, size, err := dc.documentService.OpenDocumentFile(c.Request.Context(), email, relPath)
	if err != nil {
		dc.respondStorageError(c, err, "failed to read a file")
		if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrPathViolation) {
			dc.logger.Error("OpenDocumentFile() error", zap.Error(err))
		}
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(relPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, size, contentType, rc, map[string]string{
		"Content-Disposition": `attachment; filename="` + path.Base(relPath) + `"`,
	})
}

func (dc *DocumentController) respondStorageError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrPathViolation):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
