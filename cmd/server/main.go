package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/wordwise-app/wordwise/internal/api/http"
	"github.com/wordwise-app/wordwise/internal/auth"
	"github.com/wordwise-app/wordwise/internal/config"
	"github.com/wordwise-app/wordwise/internal/correct"
	"github.com/wordwise-app/wordwise/internal/db"
	"github.com/wordwise-app/wordwise/internal/history"
	"github.com/wordwise-app/wordwise/internal/ocr"
	"github.com/wordwise-app/wordwise/internal/review"
	"github.com/wordwise-app/wordwise/internal/storage"
	"github.com/wordwise-app/wordwise/internal/tts"
	"github.com/wordwise-app/wordwise/internal/vocab"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	vocabs := vocab.NewSQLStore(dbh)
	hist := history.NewSQLStore(dbh)
	wrongs := review.NewSQLStore(dbh)

	// --- Auth ---
	authSvc := auth.NewService(cfg.HMACSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- OCR ---
	var engine ocr.Engine
	if cfg.OCRServiceURL != "" {
		engine = ocr.NewClient(cfg.OCRServiceURL)
	} else {
		engine = ocr.NewTesseract()
	}
	corrector := correct.New(nil)

	// --- TTS (optional; audio routes are skipped without an API key) ---
	var audioCache *tts.Cache
	if cfg.MiniMaxAPIKey != "" {
		provider, err := tts.NewMiniMax(cfg.MiniMaxAPIKey,
			tts.WithGroupID(cfg.MiniMaxGroupID),
			tts.WithVoices(cfg.EnglishVoice, cfg.ChineseVoice),
		)
		if err != nil {
			log.Fatalf("tts: %v", err)
		}
		bs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			log.Fatalf("blob store: %v", err)
		}
		audioCache = tts.NewCache(provider, bs)
	} else {
		log.Printf("MINIMAX_API_KEY not set; audio endpoints disabled")
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Route("/vocabularies", func(vr chi.Router) {
			vr.Get("/", api.ListVocabulariesHandler(vocabs))
			vr.Put("/{name}", api.PutVocabularyHandler(vocabs))
			vr.Get("/{name}", api.GetVocabularyHandler(vocabs))
			vr.Delete("/{name}", api.DeleteVocabularyHandler(vocabs))
			vr.Post("/{name}/import", api.ImportVocabularyHandler(vocabs))
			vr.Get("/{name}/export", api.ExportVocabularyHandler(vocabs))
		})

		pr.Post("/ocr/extract-words", api.ExtractWordsHandler(engine, corrector))
		pr.Get("/ocr/health", api.OCRHealthHandler(engine))

		pr.Post("/grade", api.GradeHandler(vocabs, hist, wrongs))
		pr.Post("/grade/photo", api.PhotoGradeHandler(engine, vocabs, hist, wrongs))

		pr.Route("/history", func(hr chi.Router) {
			hr.Get("/", api.ListHistoryHandler(hist))
			hr.Delete("/", api.ClearHistoryHandler(hist))
			hr.Get("/stats", api.HistoryStatsHandler(hist))
			hr.Get("/{id}", api.GetHistoryHandler(hist))
			hr.Delete("/{id}", api.DeleteHistoryHandler(hist))
		})

		pr.Route("/review", func(rr chi.Router) {
			rr.Get("/", api.ListWrongAnswersHandler(wrongs))
			rr.Get("/words", api.ReviewWordsHandler(wrongs))
			rr.Post("/{en}/mastered", api.MarkMasteredHandler(wrongs))
			rr.Delete("/{en}", api.DeleteWrongAnswerHandler(wrongs))
		})

		if audioCache != nil {
			pr.Get("/audio", api.AudioHandler(audioCache))
			pr.Post("/audio/preload", api.PreloadHandler(audioCache, vocabs))
			pr.Get("/audio/preload", api.PreloadProgressHandler(audioCache))
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
