package router

import (
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"

	"github.com/foundersdir/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件，用于记录删除口令已验证的标记
	if sessionSecret == "" {
		sessionSecret = "secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("foundersdir_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"json": func(v interface{}) template.JS {
			data, err := json.Marshal(v)
			if err != nil {
				return template.JS("null")
			}
			return template.JS(data)
		},
	})

	webRoot := resolveWebRoot()
	r.LoadHTMLGlob(filepath.Join(webRoot, "template", "*.html"))

	// 静态文件服务
	r.Static("/static", filepath.Join(webRoot, "static"))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowDirectory)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/founders", api.ListFounders)
		apiGroup.POST("/add-record", api.AddFounder)
		apiGroup.POST("/update-record", api.UpdateFounder)
		apiGroup.DELETE("/delete-record", api.DeleteFounder)
		apiGroup.GET("/autofill", api.AutofillFounder)
		apiGroup.POST("/images", api.ConvertImage)
	}

	return r
}

// resolveWebRoot 从当前目录向上查找 web 目录，
// 让测试在包目录下运行时也能加载到模板
func resolveWebRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "web"
	}

	for {
		candidate := filepath.Join(dir, "web", "template")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Join(dir, "web")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "web"
		}
		dir = parent
	}
}
