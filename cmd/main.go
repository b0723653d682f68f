package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"

	"github.com/leeway-ai/store-assistant/internal/ai"
	"github.com/leeway-ai/store-assistant/internal/assistant"
	"github.com/leeway-ai/store-assistant/internal/catalog"
	"github.com/leeway-ai/store-assistant/internal/config"
	"github.com/leeway-ai/store-assistant/internal/order"
	"github.com/leeway-ai/store-assistant/internal/retrieval"
	"github.com/leeway-ai/store-assistant/internal/session"
)

func main() {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// --- DB ---
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	// --- Providers ---
	generator, embedder, err := ai.New(cfg.AI)
	if err != nil {
		log.Fatalf("ai provider error: %v", err)
	}

	var index retrieval.Index
	switch cfg.Vector.Driver {
	case "qdrant":
		qi, err := retrieval.NewQdrantIndex(retrieval.QdrantConfig{
			URL:        cfg.Vector.QdrantURL,
			APIKey:     cfg.Vector.QdrantKey,
			Collection: cfg.Vector.Collection,
		})
		if err != nil {
			log.Fatalf("qdrant error: %v", err)
		}
		defer qi.Close()
		index = qi
	default:
		index = retrieval.NewMemoryIndex()
	}

	sessions, err := session.NewStore(cfg.Session)
	if err != nil {
		log.Fatalf("session store error: %v", err)
	}
	defer sessions.Close()

	// --- Catalog ---
	cat := catalog.New(catalog.NewRepo(db))
	if err := cat.Reload(ctx); err != nil {
		log.Fatalf("catalog load error: %v", err)
	}
	log.Printf("loaded %d products", len(cat.Products()))

	retriever := retrieval.NewRetriever(embedder, index, cat)
	if err := retriever.SyncCatalog(context.Background()); err != nil {
		log.Printf("initial index sync failed, retrieval degrades to catalog search: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Assistant module wiring ---
	svc := assistant.NewService(
		sessions,
		session.NewLocker(),
		cat,
		order.NewStore(db),
		retriever,
		generator,
		assistant.NewRepo(db),
		cfg.App.StoreName,
	)
	handler := assistant.NewHandler(svc)

	assistant.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.App.Port)
	if err := http.ListenAndServe(":"+cfg.App.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
