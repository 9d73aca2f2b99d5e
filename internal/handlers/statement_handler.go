package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"finera/internal/ai"
	apperrors "finera/internal/errors"
	"finera/internal/services"
)

// maxStatementSize caps uploaded statement documents at 10 MB.
const maxStatementSize = 10 << 20

// StatementHandler handles statement document uploads.
type StatementHandler struct {
	statementService services.StatementServicer
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(statementService services.StatementServicer) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

// UploadStatement ingests one statement document
// @Summary     Upload a bank statement
// @Description Upload a statement document, extract its transactions with the selected AI provider, and persist them into the matching period
// @Tags        statements
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Statement document"
// @Param       provider formData string true "AI provider" Enums(gemini, openai, deepseek)
// @Param       source_name_prefix formData string false "Prefix for the derived source name"
// @Success     200 {object} services.StatementResult "Processing summary"
// @Failure     400 {object} ErrorResponse "Invalid input or unreadable document"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "AI provider failure"
// @Router      /statements/upload [post]
func (h *StatementHandler) UploadStatement(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "a statement file is required"))
		return
	}
	if fileHeader.Size > maxStatementSize {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "statement file exceeds the 10MB limit"))
		return
	}

	provider, err := ai.ParseProvider(c.PostForm("provider"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrDocumentUnreadable, err))
		return
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrDocumentUnreadable, err))
		return
	}

	result, err := h.statementService.ProcessStatement(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		document,
		c.PostForm("source_name_prefix"),
		provider,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
