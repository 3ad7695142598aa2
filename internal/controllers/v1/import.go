package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/httputil"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/importer/ivywallet"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/migrator"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// ImportResponse is the body returned by the import endpoint.
type ImportResponse struct {
	Data  *migrator.Summary `json:"data"`  // Summary of the migration run
	Error *string           `json:"error"` // The error, if any occurred
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import wallet export
// @Description	Migrates a wallet export file into the target database
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	// Validation failures are reported before anything is written
	backup, err := ivywallet.Parse(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{Error: &s})
		return
	}

	summary, err := migrator.Migrate(models.DB, backup)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ImportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &summary})
}
