package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"aviationops/cli"
	"aviationops/collections"
	"aviationops/config"
	"aviationops/handlers"
	"aviationops/services"
)

func main() {
	app := pocketbase.New()

	var cfgFile string
	app.RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")

	// Flags are only parsed once a command runs, so config loads on first use.
	loadConfig := sync.OnceValues(func() (*config.Config, error) {
		return config.Load(config.New(cfgFile))
	})

	catalog := services.DefaultCatalog()

	app.RootCmd.AddCommand(cli.NewQuoteCommand(cli.Deps{
		Catalog:   catalog,
		Clipboard: services.SystemClipboard{},
		Config:    loadConfig,
	}))

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := config.SetupLogging(cfg.Logging); err != nil {
			return err
		}

		// Create collections and seed data on startup
		collections.Setup(app)

		ctx := context.Background()
		kv, err := openStore(ctx, app, cfg.Storage)
		if err != nil {
			return err
		}
		if err := collections.Seed(ctx, kv); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateClientMasks(ctx, kv); err != nil {
			log.Printf("Warning: client mask migration failed: %v", err)
		}

		registerRoutes(se, newEnv(ctx, kv, catalog, cfg))
		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// openStore returns the KVStore selected by the storage settings.
func openStore(ctx context.Context, app *pocketbase.PocketBase, cfg config.StorageConfig) (services.KVStore, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		store := services.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisNamespace)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
			store.Close()
			return e.Next()
		})
		return store, nil
	case config.BackendMemory:
		store := services.NewMemoryStore()
		store.Quota = cfg.Quota
		return store, nil
	default:
		return services.NewPocketBaseStore(app), nil
	}
}

// newEnv loads the persisted lists. A list that fails to load starts empty
// and the failure is logged.
func newEnv(ctx context.Context, kv services.KVStore, catalog *services.Catalog, cfg *config.Config) *handlers.Env {
	quotes, err := services.NewQuoteStore(ctx, kv)
	if err != nil {
		log.Printf("Warning: saved quotes not loaded: %v", err)
	}
	flights, err := services.NewFlightRegistry(ctx, kv)
	if err != nil {
		log.Printf("Warning: flights not loaded: %v", err)
	}
	clients, err := services.NewClientRegistry(ctx, kv)
	if err != nil {
		log.Printf("Warning: clients not loaded: %v", err)
	}

	return &handlers.Env{
		KV:                  kv,
		Catalog:             catalog,
		Bases:               services.DefaultBaseDirectory(),
		Quotes:              quotes,
		Flights:             flights,
		Clients:             clients,
		Sessions:            handlers.NewQuoteSessions(cfg.DefaultExchangeRate),
		CompanyName:         cfg.CompanyName,
		DefaultExchangeRate: cfg.DefaultExchangeRate,
	}
}

func registerRoutes(se *core.ServeEvent, env *handlers.Env) {
	// Serve static files from ./static
	se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

	// Resolve the quote session and navigation for every request
	se.Router.BindFunc(handlers.QuoteSessionMiddleware(env))

	// ── Base directory ───────────────────────────────────────
	se.Router.GET("/bases", handlers.HandleBases(env))
	se.Router.GET("/bases/export/excel", handlers.HandleBasesExportExcel(env))

	// ── Price table ──────────────────────────────────────────
	se.Router.GET("/precos", handlers.HandlePricing(env))
	se.Router.GET("/precos/export/excel", handlers.HandlePricingExportExcel(env))

	// ── Quote builder ────────────────────────────────────────
	se.Router.GET("/cotacao", handlers.HandleQuote(env))
	se.Router.POST("/cotacao/toggle/{itemId}", handlers.HandleQuoteToggle(env))
	se.Router.POST("/cotacao/quantity/{itemId}", handlers.HandleQuoteQuantity(env))
	se.Router.POST("/cotacao/client", handlers.HandleQuoteClient(env))
	se.Router.POST("/cotacao/clear", handlers.HandleQuoteClear(env))
	se.Router.POST("/cotacao/save", handlers.HandleQuoteSave(env))

	// Receipt, print and PDF
	se.Router.GET("/cotacao/receipt", handlers.HandleQuoteReceipt(env))
	se.Router.POST("/cotacao/receipt/copy", handlers.HandleQuoteReceiptCopy(env))
	se.Router.GET("/cotacao/print", handlers.HandleQuotePrint(env))
	se.Router.GET("/cotacao/export/pdf", handlers.HandleQuoteExportPDF(env))

	// ── Saved quotes ─────────────────────────────────────────
	se.Router.GET("/cotacao/saved", handlers.HandleSavedQuotes(env))
	se.Router.GET("/cotacao/saved/export/excel", handlers.HandleSavedQuotesExportExcel(env))
	se.Router.POST("/cotacao/saved/{id}/load", handlers.HandleSavedQuoteLoad(env))
	se.Router.DELETE("/cotacao/saved/{id}", handlers.HandleSavedQuoteDelete(env))

	// ── Proforma invoice ─────────────────────────────────────
	se.Router.GET("/proforma", handlers.HandleProforma(env))
	se.Router.POST("/proforma/preview", handlers.HandleProformaPreview(env))
	se.Router.POST("/proforma/print", handlers.HandleProformaPrint(env))
	se.Router.POST("/proforma/export/pdf", handlers.HandleProformaExportPDF(env))

	// ── Flights portal ───────────────────────────────────────
	se.Router.GET("/voos", handlers.HandleFlights(env))
	se.Router.POST("/voos", handlers.HandleFlightSave(env))
	se.Router.GET("/voos/export/excel", handlers.HandleFlightsExportExcel(env))
	se.Router.GET("/voos/aircraft-types", handlers.HandleAircraftTypes(env))
	se.Router.GET("/voos/{id}/edit", handlers.HandleFlightEdit(env))
	se.Router.POST("/voos/{id}", handlers.HandleFlightUpdate(env))
	se.Router.DELETE("/voos/{id}", handlers.HandleFlightDelete(env))

	// ── Client registry ──────────────────────────────────────
	se.Router.GET("/clientes", handlers.HandleClients(env))
	se.Router.POST("/clientes", handlers.HandleClientSave(env))
	se.Router.GET("/clientes/template", handlers.HandleClientTemplateDownload(env))
	se.Router.GET("/clientes/export/excel", handlers.HandleClientsExportExcel(env))
	se.Router.POST("/clientes/import", handlers.HandleClientImport(env))
	se.Router.POST("/clientes/import/errors", handlers.HandleClientErrorReport(env))
	se.Router.DELETE("/clientes/{id}", handlers.HandleClientDelete(env))

	// Redirect home to the base directory
	se.Router.GET("/", func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "/bases")
	})
}
