package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/foundersdir/internal/service"
	"github.com/gin-gonic/gin"
)

// AutofillFounder 根据来源链接调用外部查询服务，返回预填草稿。
// 只返回草稿，不落库：自动填充永远回到可编辑表单由用户确认。
func (a *API) AutofillFounder(c *gin.Context) {
	sourceURL := strings.TrimSpace(c.Query("source_url"))
	if sourceURL == "" {
		respondError(c, http.StatusBadRequest, "Missing source_url")
		return
	}

	profile, err := a.enrich.Lookup(c.Request.Context(), sourceURL)
	if err != nil {
		if errors.Is(err, service.ErrEnrichmentUnavailable) {
			respondError(c, http.StatusServiceUnavailable, "Autofill is not configured")
			return
		}
		respondError(c, http.StatusBadGateway, "Autofill failed, please fill the form manually")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"founder": gin.H{
			"name":         profile.Name,
			"position":     profile.Position,
			"summary":      profile.Summary,
			"linkedin":     profile.LinkedIn,
			"email":        profile.Email,
			"github":       profile.GitHub,
			"x":            profile.X,
			"otherWebsite": "",
			"phone":        profile.Phone,
			"image":        profile.Image,
			"imageWidth":   profile.ImageWidth,
			"imageHeight":  profile.ImageHeight,
		},
	})
}
