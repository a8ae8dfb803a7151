package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/foundersdir/internal/db"
	"github.com/foundersdir/internal/service"
	"github.com/foundersdir/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// founderCard 是目录页单张卡片的视图模型
type founderCard struct {
	ID           uint
	Name         string
	Position     string
	SummaryHTML  template.HTML
	LinkedIn     string
	Email        string
	GitHub       string
	X            string
	OtherWebsite string
	Phone        string
	Image        string
	ImageWidth   int
	ImageHeight  int
}

// ShowDirectory renders the founders directory page.
// 列表在页面加载时取一次；?search= 时在内存里过滤，不产生额外存储读取。
func (a *API) ShowDirectory(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	founders, err := a.founders.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "directory.html", gin.H{
			"title": "Founders Directory",
			"error": "Failed to load founders",
			"year":  time.Now().Year(),
		})
		return
	}

	founders = service.Filter(founders, search)

	cards := make([]founderCard, 0, len(founders))
	payloads := make([]gin.H, 0, len(founders))
	for _, founder := range founders {
		cards = append(cards, a.buildFounderCard(founder))
		payloads = append(payloads, founderPayload(founder))
	}

	c.HTML(http.StatusOK, "directory.html", gin.H{
		"title":        "Founders Directory",
		"search":       search,
		"founders":     cards,
		"foundersJSON": payloads,
		"fieldLimits":  service.FieldLimits,
		"icons":        view.SocialIconSVGMap(),
		"placeholder":  a.placeholderImage,
		"year":         time.Now().Year(),
	})
}

func (a *API) buildFounderCard(founder db.Founder) founderCard {
	image := strings.TrimSpace(founder.Image)
	if image == "" {
		image = a.placeholderImage
	}

	return founderCard{
		ID:           founder.ID,
		Name:         founder.Name,
		Position:     founder.Position,
		SummaryHTML:  renderSummary(founder.Summary),
		LinkedIn:     founder.LinkedIn,
		Email:        founder.Email,
		GitHub:       founder.GitHub,
		X:            founder.X,
		OtherWebsite: founder.OtherWebsite,
		Phone:        founder.Phone,
		Image:        image,
		ImageWidth:   founder.ImageWidth,
		ImageHeight:  founder.ImageHeight,
	}
}

// renderSummary 把简介按 Markdown 渲染并消毒
func renderSummary(summary string) template.HTML {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(summary), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(summary))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}
