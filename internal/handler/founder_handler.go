package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/foundersdir/internal/db"
	"github.com/foundersdir/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// deleteUnlockedKey 标记当前会话已通过删除口令校验
const deleteUnlockedKey = "delete_unlocked"

type founderRequest struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Summary      string `json:"summary"`
	LinkedIn     string `json:"linkedin"`
	Email        string `json:"email"`
	GitHub       string `json:"github"`
	X            string `json:"x"`
	OtherWebsite string `json:"otherWebsite"`
	Phone        string `json:"phone"`
	Image        string `json:"image"`
	ImageWidth   int    `json:"imageWidth"`
	ImageHeight  int    `json:"imageHeight"`
}

type founderDeleteRequest struct {
	ID         uint   `json:"id"`
	Passphrase string `json:"passphrase"`
}

// ListFounders 返回全部记录，供前端在变更后整体替换内存列表
func (a *API) ListFounders(c *gin.Context) {
	founders, err := a.founders.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load founders")
		return
	}

	items := make([]gin.H, 0, len(founders))
	for _, founder := range founders {
		items = append(items, founderPayload(founder))
	}

	c.JSON(http.StatusOK, gin.H{"founders": items})
}

// AddFounder 新建创始人记录，id 由存储层分配后返回
func (a *API) AddFounder(c *gin.Context) {
	var payload founderRequest
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	input := payload.toInput()
	if strings.TrimSpace(input.Image) == "" {
		input.Image = a.placeholderImage
	}

	founder, err := a.founders.Create(input)
	if err != nil {
		handleFounderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Founder added successfully",
		"id":      founder.ID,
	})
}

// UpdateFounder 全字段替换更新指定记录
func (a *API) UpdateFounder(c *gin.Context) {
	var payload founderRequest
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}
	if payload.ID == 0 {
		respondError(c, http.StatusBadRequest, "Missing founder id")
		return
	}

	if _, err := a.founders.Update(payload.ID, payload.toInput()); err != nil {
		handleFounderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Founder updated successfully"})
}

// DeleteFounder 删除记录。删除口令在服务端校验，
// 校验通过后在会话里打标记，同一会话后续删除免口令。
func (a *API) DeleteFounder(c *gin.Context) {
	var payload founderDeleteRequest
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}
	if payload.ID == 0 {
		respondError(c, http.StatusBadRequest, "Missing founder id")
		return
	}

	session := sessions.Default(c)
	if unlocked, _ := session.Get(deleteUnlockedKey).(bool); !unlocked {
		if !a.verifyDeletePassphrase(payload.Passphrase) {
			respondError(c, http.StatusUnauthorized, "Incorrect passphrase")
			return
		}
		session.Set(deleteUnlockedKey, true)
		if err := session.Save(); err != nil {
			// 会话写失败不阻断删除，下次再要求口令即可
			c.Error(err)
		}
	}

	if err := a.founders.Delete(payload.ID); err != nil {
		handleFounderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Founder deleted successfully"})
}

func (a *API) verifyDeletePassphrase(passphrase string) bool {
	if len(a.deleteHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.deleteHash, []byte(strings.TrimSpace(passphrase))) == nil
}

func (r founderRequest) toInput() service.FounderInput {
	return service.FounderInput{
		Name:         r.Name,
		Position:     r.Position,
		Summary:      r.Summary,
		LinkedIn:     r.LinkedIn,
		Email:        r.Email,
		GitHub:       r.GitHub,
		X:            r.X,
		OtherWebsite: r.OtherWebsite,
		Phone:        r.Phone,
		Image:        r.Image,
		ImageWidth:   r.ImageWidth,
		ImageHeight:  r.ImageHeight,
	}
}

func founderPayload(founder db.Founder) gin.H {
	return gin.H{
		"id":           founder.ID,
		"name":         founder.Name,
		"position":     founder.Position,
		"summary":      founder.Summary,
		"summaryHtml":  string(renderSummary(founder.Summary)),
		"linkedin":     founder.LinkedIn,
		"email":        founder.Email,
		"github":       founder.GitHub,
		"x":            founder.X,
		"otherWebsite": founder.OtherWebsite,
		"phone":        founder.Phone,
		"image":        founder.Image,
		"imageWidth":   founder.ImageWidth,
		"imageHeight":  founder.ImageHeight,
	}
}

func handleFounderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFounderNotFound):
		respondError(c, http.StatusNotFound, "Founder not found")
	case errors.Is(err, service.ErrFounderInvalidInput):
		respondError(c, http.StatusBadRequest, "Missing required fields")
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
