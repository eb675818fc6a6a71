package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/souqline/souq-backend/internal/config"
	"github.com/souqline/souq-backend/internal/modules/auth"
	"github.com/souqline/souq-backend/internal/modules/catalog"
	"github.com/souqline/souq-backend/internal/modules/customer"
	"github.com/souqline/souq-backend/internal/modules/expense"
	"github.com/souqline/souq-backend/internal/modules/notification"
	"github.com/souqline/souq-backend/internal/modules/order"
	"github.com/souqline/souq-backend/internal/modules/supplier"
	"github.com/souqline/souq-backend/internal/modules/user"
)

func main() {
	cfg := config.Load()

	// ── Storage ─────────────────────────────────────────────
	// DATABASE_URL selects Postgres; without it everything runs on the
	// volatile in-memory stores.
	var (
		catalogRepo  catalog.Repository
		customerRepo customer.Repository
		supplierRepo supplier.Repository
		orderRepo    order.Repository
		notifRepo    notification.Repository
		expenseRepo  expense.Repository
		userRepo     user.Repository
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")

		catalogRepo = catalog.NewPostgresRepository(db)
		customerRepo = customer.NewPostgresRepository(db)
		supplierRepo = supplier.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
		notifRepo = notification.NewPostgresRepository(db)
		expenseRepo = expense.NewPostgresRepository(db)
		userRepo = user.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory storage")
		catalogRepo = catalog.NewMemoryRepository()
		customerRepo = customer.NewMemoryRepository()
		supplierRepo = supplier.NewMemoryRepository()
		orderRepo = order.NewMemoryRepository()
		notifRepo = notification.NewMemoryRepository()
		expenseRepo = expense.NewMemoryRepository()
		userRepo = user.NewMemoryRepository()
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Services & handlers ─────────────────────────────────
	notifService := notification.NewService(notifRepo)
	notification.NewHandler(notifService).RegisterRoutes(router)

	catalogService := catalog.NewService(catalogRepo, notifService,
		catalog.LowStockNotifyMode(cfg.LowStockNotify))
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	supplierService := supplier.NewService(supplierRepo)
	supplier.NewHandler(supplierService).RegisterRoutes(router)

	orderService := order.NewService(orderRepo, catalogService, customerService, notifService)
	order.NewHandler(orderService).RegisterRoutes(router)

	expenseService := expense.NewService(expenseRepo)
	expense.NewHandler(expenseService).RegisterRoutes(router)

	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	if cfg.DatabaseURL == "" {
		seedSampleData(catalogService)
	}

	// ── Start server ────────────────────────────────────────
	fmt.Printf("Souq API server starting on :%s\n", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}

// seedSampleData gives the in-memory store something to browse on first run.
func seedSampleData(catalogService catalog.Service) {
	ctx := context.Background()
	category, err := catalogService.CreateCategory(ctx, catalog.CreateCategoryRequest{
		Name: "عام",
		Code: "GEN",
	})
	if err != nil {
		log.Printf("Warning: failed to seed category: %v", err)
		return
	}
	_, err = catalogService.CreateProduct(ctx, catalog.CreateProductRequest{
		Name:           "Sample Product",
		Code:           "SP001",
		Description:    "A sample product description",
		CategoryID:     category.ID,
		WholesalePrice: 20.00,
		Price:          29.99,
		Stock:          100,
		Image:          "https://source.unsplash.com/400x400/?product",
	})
	if err != nil {
		log.Printf("Warning: failed to seed product: %v", err)
	}
}
