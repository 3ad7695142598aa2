// Package healthz implements the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/SahilSoniOrg/spyglass-migrate/internal/httputil"
	"github.com/SahilSoniOrg/spyglass-migrate/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the health of the backend
// @Tags			General
// @Success		200
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sql, err := models.DB.DB()
	if err == nil {
		err = sql.Ping()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, httputil.HTTPError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
