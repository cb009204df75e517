package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"

	"billforge/internal/catalog"
	"billforge/internal/config"
	"billforge/internal/email/noop"
	"billforge/internal/email/ses"
	"billforge/internal/handler"
	"billforge/internal/pdf"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/repository/postgres"
	"billforge/internal/router"
	"billforge/internal/service"
	s3storage "billforge/internal/storage/s3"
	"billforge/internal/templatestore"
)

// @title BillForge API
// @version 1.0
// @description GST invoice computation, rendering and archival service
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	profileRepo := postgres.NewProfileRepo(db)

	// Initialize the HSN catalog
	lookup, err := buildCatalog(cfg, db)
	if err != nil {
		return fmt.Errorf("failed to load HSN catalog: %w", err)
	}
	log.Printf("HSN catalog loaded: %d codes (%s)", lookup.Len(), cfg.Catalog.Source)

	// Rendering stack
	registry := render.NewRegistry()
	templates := templatestore.New(cfg.Templates.Dir)
	pdfRenderer := pdf.NewRenderer()

	// Email delivery
	sender, err := buildSender(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Optional artifact archive
	var storage port.ObjectStorage
	if cfg.Archive.Enabled {
		s3Client, err := s3storage.NewS3Client(&cfg.Archive)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		storage = s3Client
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(
		invoiceRepo, lookup, registry, templates, pdfRenderer, sender, storage, cfg.Archive,
	)
	profileSvc := service.NewProfileService(profileRepo)

	// Initialize handlers
	healthH := handler.NewHealthHandler(db)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	templateH := handler.NewTemplateHandler(registry)
	hsnH := handler.NewHSNHandler(lookup)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, healthH, invoiceH, profileH, templateH, hsnH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildCatalog loads the HSN catalog from the configured source. The builtin
// catalog always backs the database-loaded one, so partial seeds still
// resolve common codes.
func buildCatalog(cfg *config.Config, db *sqlx.DB) (*catalog.Lookup, error) {
	entries := catalog.Default()
	if cfg.Catalog.Source == "db" {
		loaded, err := postgres.NewHSNRepo(db).LoadAll(context.Background())
		if err != nil {
			return nil, err
		}
		for _, e := range loaded {
			entries = append(entries, catalog.Entry{
				Code:        e.Code,
				Description: e.Description,
				CGSTRate:    e.CGSTRate,
				SGSTRate:    e.SGSTRate,
				IGSTRate:    e.IGSTRate,
				CessRate:    e.CessRate,
			})
		}
	}
	return catalog.NewLookup(entries), nil
}

func buildSender(cfg *config.Config) (port.EmailSender, error) {
	switch cfg.Email.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
	default:
		return noop.NewNoopSender(), nil
	}
}
