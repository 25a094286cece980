package commands

import (
	"accounting-ledger/internal/config"
	"accounting-ledger/internal/database"
	"accounting-ledger/internal/repository"
	"accounting-ledger/internal/service"
	"accounting-ledger/internal/utils"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// appContext wires config, storage and services for one command invocation.
type appContext struct {
	cfg   *config.Config
	db    *sqlx.DB
	redis *redis.Client

	accounts *service.AccountService
	journal  *service.JournalService
	balances *service.BalanceService
	export   *service.ExportService
}

func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewMySQL(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is an optional read cache; run without it when unavailable.
	redisClient, err := database.NewRedis(cfg)
	if err != nil {
		utils.GetLogger().WithError(err).Warn("Redis unavailable, balance caching disabled")
		redisClient = nil
	}

	txm := database.NewTxManager(db)
	accountRepo := repository.NewAccountRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	return &appContext{
		cfg:      cfg,
		db:       db,
		redis:    redisClient,
		accounts: service.NewAccountService(txm, accountRepo, sequenceRepo),
		journal:  service.NewJournalService(txm, accountRepo, journalRepo, sequenceRepo),
		balances: service.NewBalanceService(accountRepo, journalRepo, redisClient, cfg.BalanceCacheTTL),
		export:   service.NewExportService(),
	}, nil
}

func (a *appContext) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
