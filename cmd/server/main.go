package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/pollsite/internal/adapters/audit"
	"github.com/vncsmyrnk/pollsite/internal/adapters/handler/http"
	"github.com/vncsmyrnk/pollsite/internal/adapters/metrics"
	"github.com/vncsmyrnk/pollsite/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/pollsite/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/pollsite/internal/config"
	"github.com/vncsmyrnk/pollsite/internal/core/ports"
	"github.com/vncsmyrnk/pollsite/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	metrics.Register()

	questionRepo, voteRepo, db, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if db != nil {
		defer db.Close()
	}

	auditLogger := audit.Tee(audit.NewLogger(os.Stdout), metrics.Auditor{})

	questionService := services.NewQuestionService(questionRepo, auditLogger)
	voteService := services.NewVoteService(questionRepo, voteRepo, auditLogger)

	questionHandler := http.NewQuestionHandler(questionService)
	voteHandler := http.NewVoteHandler(voteService)

	handler := http.NewHandler(questionHandler, voteHandler, http.RateLimit{
		PerMinute: cfg.RateLimitPerMinute,
		Burst:     cfg.RateLimitBurst,
	})
	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s (store: %s)", server.Addr, cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func openStore(cfg config.Config) (ports.QuestionRepository, ports.VoteRepository, *sql.DB, error) {
	if cfg.StoreDriver == config.StoreMemory {
		store := memory.NewStore()
		return store, store, nil, nil
	}

	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return nil, nil, nil, err
	}

	return postgres.NewQuestionRepository(db), postgres.NewVoteRepository(db), db, nil
}
