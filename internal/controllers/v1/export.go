package v1

import (
	"net/http"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/httputil"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for the snapshot export.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Download snapshot
// @Description	Streams the sqlite snapshot of the target database as a file attachment
// @Tags			Export
// @Produce		application/octet-stream
// @Success		200
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export [get]
func Export(c *gin.Context) {
	if models.File == "" {
		c.JSON(http.StatusInternalServerError, httputil.HTTPError{Error: errNoDatabaseFile.Error()})
		return
	}

	c.FileAttachment(models.File, "finance.sqlite")
}
