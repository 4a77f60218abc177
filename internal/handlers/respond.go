package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fyyur/backend/internal/middleware"
	"github.com/fyyur/backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// respondError maps a catalog error to its HTTP status. Store failures are
// logged and reported without detail.
func respondError(c *gin.Context, err error, message string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  message,
			"fields": ve.Fields,
		})
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		middleware.Logger(c).Error().Err(err).Str("route", c.FullPath()).Msg("catalog operation failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

// parseID reads the :id path parameter, writing 400 when it is not an
// unsigned integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// bind decodes a form or JSON body depending on Content-Type.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindCheckbox reads a form checkbox into dst. Browsers post "on" and
// WTForms clients post "y". JSON bodies and absent fields leave dst as is.
func bindCheckbox(c *gin.Context, name string, dst **bool) bool {
	if ct := c.ContentType(); ct != binding.MIMEPOSTForm && ct != binding.MIMEMultipartPOSTForm {
		return true
	}
	raw, ok := c.GetPostForm(name)
	if !ok {
		return true
	}
	v, err := parseCheckbox(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	*dst = &v
	return true
}

func parseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "y", "yes", "true", "1":
		return true, nil
	case "off", "n", "no", "false", "0", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid checkbox value %q", raw)
}

type searchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}
