package handler

import (
	"log"
	"strings"

	"github.com/foundersdir/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db               *gorm.DB
	founders         *service.FounderService
	images           *service.ImageService
	enrich           *service.EnrichmentService
	placeholderImage string
	deleteHash       []byte
}

// Options carries the configuration slice handlers care about.
type Options struct {
	EnrichBaseURL       string
	DeletePassphrase    string
	PlaceholderImageURL string
}

// NewAPI constructs a handler set with shared services.
// 删除口令在构造时做一次 bcrypt 哈希，请求期间只做比对。
func NewAPI(gdb *gorm.DB, opts Options) *API {
	images := service.NewImageService()

	var deleteHash []byte
	if passphrase := strings.TrimSpace(opts.DeletePassphrase); passphrase != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("handler: hashing delete passphrase failed: %v", err)
		} else {
			deleteHash = hash
		}
	}

	return &API{
		db:               gdb,
		founders:         service.NewFounderService(gdb),
		images:           images,
		enrich:           service.NewEnrichmentService(opts.EnrichBaseURL, images),
		placeholderImage: strings.TrimSpace(opts.PlaceholderImageURL),
		deleteHash:       deleteHash,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Enrichment exposes the enrichment service so tests can swap its seams.
func (a *API) Enrichment() *service.EnrichmentService {
	return a.enrich
}

// Images exposes the image service so tests can swap its HTTP client.
func (a *API) Images() *service.ImageService {
	return a.images
}
