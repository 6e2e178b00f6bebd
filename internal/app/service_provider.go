package app

import (
	"context"

	authAPI "virtual_casino/internal/api/auth"
	blackjackAPI "virtual_casino/internal/api/blackjack"
	rouletteAPI "virtual_casino/internal/api/roulette"
	slotsAPI "virtual_casino/internal/api/slots"
	walletAPI "virtual_casino/internal/api/wallet"
	"virtual_casino/internal/config"
	"virtual_casino/internal/config/env"
	"virtual_casino/internal/middleware"
	"virtual_casino/internal/repository"
	"virtual_casino/internal/repository/auth_repo"
	"virtual_casino/internal/repository/blackjack_state_repo"
	"virtual_casino/internal/repository/user_repo"
	"virtual_casino/internal/repository/wallet_repo"
	"virtual_casino/internal/service"
	"virtual_casino/internal/service/auth"
	"virtual_casino/internal/service/blackjack"
	"virtual_casino/internal/service/roulette"
	"virtual_casino/internal/service/slots"
	"virtual_casino/internal/service/wallet"
	"virtual_casino/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gamesConfigPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// RNG: один источник на процесс, движки делят его между собой
	rngSource rng.Source

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Wallet bits
	walletCfg  config.WalletConfig
	walletRepo repository.WalletRepository
	walletServ service.WalletService
	walletHand *walletAPI.Handler

	// Blackjack bits
	blackjackRepo repository.BlackjackStateRepository
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler

	// Roulette bits
	rouletteCfg  config.RouletteConfig
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Slots bits
	slotsCfg  config.SlotsConfig
	slotsServ service.SlotsService
	slotsHand *slotsAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RNG() rng.Source {
	if sp.rngSource == nil {
		sp.rngSource = rng.NewDefault()
	}
	return sp.rngSource
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WalletCfg() config.WalletConfig {
	if sp.walletCfg == nil {
		cfg, err := env.NewWalletConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get wallet config: " + err.Error())
		}
		sp.walletCfg = cfg
	}
	return sp.walletCfg
}

func (sp *ServiceProvider) WalletRepository() repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.WalletCfg().StartingBalance())
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) WalletService() service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(sp.WalletRepository())
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler() *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService()})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) BlackjackStateRepository() repository.BlackjackStateRepository {
	if sp.blackjackRepo == nil {
		sp.blackjackRepo = blackjack_state_repo.NewBlackjackStateRepository()
	}
	return sp.blackjackRepo
}

func (sp *ServiceProvider) BlackjackService() service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(sp.BlackjackStateRepository(), sp.WalletService(), sp.RNG())
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler() *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{Serv: sp.BlackjackService()})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		cfg, err := env.NewRouletteConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get roulette config: " + err.Error())
		}
		sp.rouletteCfg = cfg
	}
	return sp.rouletteCfg
}

func (sp *ServiceProvider) RouletteService() service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(sp.RouletteCfg(), sp.WalletService(), sp.RNG())
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler() *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{Serv: sp.RouletteService()})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) SlotsCfg() config.SlotsConfig {
	if sp.slotsCfg == nil {
		cfg, err := env.NewSlotsConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get slots config: " + err.Error())
		}
		sp.slotsCfg = cfg
	}
	return sp.slotsCfg
}

func (sp *ServiceProvider) SlotsService() service.SlotsService {
	if sp.slotsServ == nil {
		sp.slotsServ = slots.NewSlotsService(sp.SlotsCfg(), sp.WalletService(), sp.RNG())
	}
	return sp.slotsServ
}

func (sp *ServiceProvider) SlotsHandler() *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{Serv: sp.SlotsService()})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints - без токена
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Игровые endpoints - под JWT
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))

			blackjackHandler := sp.BlackjackHandler()
			rr.Route("/blackjack", func(b chi.Router) {
				b.Post("/bet", blackjackHandler.Bet)
				b.Post("/deal", blackjackHandler.Deal)
				b.Post("/hit", blackjackHandler.Hit)
				b.Post("/stand", blackjackHandler.Stand)
				b.Post("/new-hand", blackjackHandler.NewHand)
				b.Get("/state", blackjackHandler.State)
			})

			rouletteHandler := sp.RouletteHandler()
			rr.Route("/roulette", func(ro chi.Router) {
				ro.Post("/spin", rouletteHandler.Spin)
			})

			slotsHandler := sp.SlotsHandler()
			rr.Route("/slots", func(sl chi.Router) {
				sl.Post("/spin", slotsHandler.Spin)
				sl.Get("/info", slotsHandler.Info)
			})

			walletHandler := sp.WalletHandler()
			rr.Route("/wallet", func(wa chi.Router) {
				wa.Post("/deposit", walletHandler.Deposit)
				wa.Get("/balance", walletHandler.Balance)
			})
		})

		sp.router = r
	}

	return sp.router
}
