// Command todolist runs the todo-list API and its maintenance tasks.
//
// @title TodoList API
// @version 1.0
// @description CRUD todo-list API with JWT authentication and per-user todos.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"github.com/valkey-io/valkey-go"

	"github.com/MehradEsmaeilZad81/TodoList/auth"
	"github.com/MehradEsmaeilZad81/TodoList/config"
	"github.com/MehradEsmaeilZad81/TodoList/db"
	"github.com/MehradEsmaeilZad81/TodoList/logging"
	"github.com/MehradEsmaeilZad81/TodoList/ratelimit"
	"github.com/MehradEsmaeilZad81/TodoList/seed"
	"github.com/MehradEsmaeilZad81/TodoList/server"
	"github.com/MehradEsmaeilZad81/TodoList/todos"
)

func main() {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "todolist",
		Usage: "todo-list API with JWT authentication",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to an optional TOML configuration file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
				},
				Action: serveCmd,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations",
				Action: migrateCmd,
			},
			{
				Name:   "seed",
				Usage:  "create the sample users and todos",
				Action: seedCmd,
			},
		},
	}
}

// env is the state every command starts from.
type env struct {
	cfg  *config.AppConfig
	log  logging.Logger
	pool *pgxpool.Pool
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	log, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	pool, err := db.NewPool(c.Context, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, pool: pool}, nil
}

func (e *env) migrate(ctx context.Context) error {
	if err := db.EnableExtensions(ctx, e.pool); err != nil {
		return err
	}
	version, err := db.RunMigrations(e.pool)
	if err != nil {
		return err
	}
	e.log.Info(ctx, "database migrated", "version", version)
	return nil
}

func (e *env) services() (*auth.Service, *todos.Service) {
	sqlDB := db.NewSQLX(e.pool)
	authSvc := auth.NewService(
		auth.NewPostgresUserRepository(sqlDB),
		auth.NewBcryptHasher(e.cfg.Auth.BcryptCost),
		auth.NewTokenManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.Issuer, e.cfg.Auth.TokenDuration),
		e.log,
	)
	todoSvc := todos.NewService(todos.NewPostgresRepository(sqlDB), e.log)
	return authSvc, todoSvc
}

// rateLimitStore picks Valkey when a URI is configured. The returned client is
// nil for the memory store.
func (e *env) rateLimitStore() (ratelimit.Store, valkey.Client, error) {
	if e.cfg.RateLimit.ValkeyURI == "" {
		return ratelimit.NewMemoryStore(), nil, nil
	}
	client, err := ratelimit.NewValkeyClient(e.cfg.RateLimit.ValkeyURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to valkey: %w", err)
	}
	return ratelimit.NewValkeyStore(client), client, nil
}

func serveCmd(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.pool.Close()
	ctx := c.Context

	if c.Bool("migrate") {
		if err := e.migrate(ctx); err != nil {
			return err
		}
	}

	store, client, err := e.rateLimitStore()
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	authSvc, todoSvc := e.services()
	window := e.cfg.RateLimit.Window
	handler := server.NewRouter(server.Deps{
		Auth:         authSvc,
		Todos:        todoSvc,
		Limiter:      ratelimit.NewLimiter(store, e.log),
		DB:           e.pool,
		Log:          e.log,
		GeneralLimit: ratelimit.Policy{Name: "general", Limit: e.cfg.RateLimit.General, Window: window},
		AuthLimit:    ratelimit.Policy{Name: "auth", Limit: e.cfg.RateLimit.Auth, Window: window},
		CORSOrigins:  e.cfg.Server.CORSOrigins,
	})

	return server.New(":"+e.cfg.Server.Port, handler, e.log).Run(ctx)
}

func migrateCmd(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.pool.Close()
	return e.migrate(c.Context)
}

func seedCmd(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.pool.Close()

	authSvc, todoSvc := e.services()
	sum, err := seed.Run(c.Context, authSvc, todoSvc, seed.Accounts, e.log)
	if err != nil {
		return err
	}
	e.log.Info(c.Context, "seed complete",
		"users_created", sum.UsersCreated, "users_skipped", sum.UsersSkipped, "todos_created", sum.TodosCreated)
	return nil
}
