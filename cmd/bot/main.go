package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/KirkDiggler/nowplaying/internal/clients/scraper"
	"github.com/KirkDiggler/nowplaying/internal/config"
	"github.com/KirkDiggler/nowplaying/internal/handlers/discord"
	"github.com/KirkDiggler/nowplaying/internal/handlers/status"
	"github.com/KirkDiggler/nowplaying/internal/repositories/document"
	playerRepo "github.com/KirkDiggler/nowplaying/internal/repositories/player"
	sessionRepo "github.com/KirkDiggler/nowplaying/internal/repositories/session"
	"github.com/KirkDiggler/nowplaying/internal/services/directory"
	"github.com/KirkDiggler/nowplaying/internal/services/performance"
	"github.com/KirkDiggler/nowplaying/internal/services/reconcile"
	"github.com/KirkDiggler/nowplaying/internal/services/schedule"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize the document store
	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create document store: %v", err)
	}
	defer closeStore()

	// Initialize repositories
	players, err := playerRepo.New(&playerRepo.Config{Store: store})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	sessions, err := sessionRepo.New(&sessionRepo.Config{Store: store})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize the scraper client
	scraperClient, err := scraper.NewClient(&scraper.Config{
		BaseURL: cfg.ScraperURL,
		Timeout: cfg.ScraperTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create scraper client: %v", err)
	}

	// Initialize the milestone evaluator
	evaluatorCfg := &performance.Config{}
	if cfg.TiersFile != "" {
		tiers, err := config.LoadTiers(cfg.TiersFile)
		if err != nil {
			log.Fatalf("Failed to load tiers: %v", err)
		}
		evaluatorCfg.Tiers = tiers
	}

	evaluator, err := performance.New(evaluatorCfg)
	if err != nil {
		log.Fatalf("Failed to create evaluator: %v", err)
	}

	// Initialize the player directory
	directorySvc, err := directory.New(ctx, &directory.Config{
		Repository: players,
		Provider:   scraperClient,
	})
	if err != nil {
		log.Fatalf("Failed to create directory service: %v", err)
	}

	// Initialize Discord adapters
	discordSession, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	gateway := discord.NewGateway(discordSession)

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Messenger:           gateway,
		AdminAlertChannelID: cfg.AdminAlertChannelID,
		SessionLogChannelID: cfg.SessionLogChannelID,
		MilestoneChannelID:  cfg.MilestoneChannelID,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	roles, err := discord.NewRoleController(&discord.RoleControllerConfig{
		Roles:    gateway,
		GuildID:  cfg.GuildID,
		RoleName: cfg.AccessRoleName,
	})
	if err != nil {
		log.Fatalf("Failed to create role controller: %v", err)
	}

	// Initialize the session service
	sessionSvc, err := session.New(ctx, &session.Config{
		Repository: sessions,
		Directory:  directorySvc,
		Evaluator:  evaluator,
		Notifier:   notifier,
		Access:     roles,
		Location:   cfg.Location,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// Initialize the reconciliation loop
	scheduleCfg := &schedule.Config{Location: cfg.Location}
	if cfg.ScheduleFile != "" {
		days, err := config.LoadSchedule(cfg.ScheduleFile)
		if err != nil {
			log.Fatalf("Failed to load schedule: %v", err)
		}
		scheduleCfg.Days = days
	}

	guard, err := schedule.New(scheduleCfg)
	if err != nil {
		log.Fatalf("Failed to create schedule: %v", err)
	}

	breaker, err := reconcile.NewBreaker(&reconcile.BreakerConfig{Notifier: notifier})
	if err != nil {
		log.Fatalf("Failed to create breaker: %v", err)
	}

	loop, err := reconcile.New(&reconcile.Config{
		Directory: directorySvc,
		Sessions:  sessionSvc,
		Breaker:   breaker,
		Guard:     guard,
		Interval:  cfg.TickInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create reconciliation loop: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       discordSession,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Directory:     directorySvc,
		Sessions:      sessionSvc,
		Evaluator:     evaluator,
		Status:        loop,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	statusServer, err := status.NewServer(&status.Config{
		Addr:     cfg.StatusAddr,
		Loop:     loop,
		Sessions: sessionSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create status server: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Reconciliation loop stopped: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := statusServer.Start(); err != nil {
			log.Printf("Status server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := statusServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error stopping status server: %v", err)
	}

	wg.Wait()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// newStore opens the configured document store backend
func newStore(ctx context.Context, cfg *config.Config) (document.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		store, err := document.NewFile(&document.FileConfig{Dir: cfg.DataDir})
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Using file store in %s", cfg.DataDir)
		return store, func() {}, nil

	case config.StoreBackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}

		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		store, err := document.NewPostgres(connectCtx, &document.PostgresConfig{Pool: pool})
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Printf("Using Postgres store")
		return store, pool.Close, nil

	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		store, err := document.NewRedis(&document.RedisConfig{RedisClient: redisClient})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, err
		}
		log.Printf("Using Redis store at %s", cfg.RedisAddr)
		return store, func() { _ = redisClient.Close() }, nil
	}
}
