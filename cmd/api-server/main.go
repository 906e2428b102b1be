package main

import (
	"Landmark/config"
	"Landmark/pkg/database"
	"Landmark/pkg/jwt"
	"Landmark/pkg/log"
	"Landmark/pkg/server"
	"Landmark/pkg/snowflake"
	"Landmark/types"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func configPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func loadConfig(ctx *cli.Context) *config.Config {
	cfg := config.New(ctx.String("config"))
	log.SetDebug(cfg.Debug())
	return cfg
}

func main() {
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "location based check-in and points service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   configPath(),
				Usage:   "config file path",
			},
			&cli.Int64Flag{
				Name:  "node",
				Value: 1,
				Usage: "snowflake node id, unique per instance",
			},
		},
		Before: func(ctx *cli.Context) error {
			return snowflake.SetNode(ctx.Int64("node"))
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					app, cleanup := InitServer(loadConfig(ctx))
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "sync database schema",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(loadConfig(ctx))
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
			{
				Name:  "reconcile",
				Usage: "compare every user's points balance with the ledger",
				Action: func(ctx *cli.Context) error {
					points, cleanup := InitPointService(loadConfig(ctx))
					defer cleanup()

					checked, drifted, err := points.ReconcileAll(ctx.Context, func(rec types.Reconciliation) {
						if !rec.Balanced() {
							fmt.Printf("user=%d balance=%d ledger=%d drift=%d\n",
								rec.UserID, rec.Balance, rec.LedgerSum, rec.Drift)
						}
					})
					if err != nil {
						return err
					}
					log.L.Info("reconcile finished", zap.Int("checked", checked), zap.Int("drifted", drifted))
					if drifted > 0 {
						return cli.Exit(fmt.Sprintf("%d users drifted", drifted), 2)
					}
					return nil
				},
			},
			{
				Name:  "grant",
				Usage: "credit points to a user as system compensation",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Required: true},
					&cli.Int64Flag{Name: "amount", Required: true},
					&cli.StringFlag{Name: "remark"},
				},
				Action: func(ctx *cli.Context) error {
					points, cleanup := InitPointService(loadConfig(ctx))
					defer cleanup()

					account, err := points.Grant(ctx.Context, ctx.Uint64("user"), ctx.Int64("amount"), ctx.String("remark"))
					if err != nil {
						return err
					}
					fmt.Printf("user=%d balance=%d\n", ctx.Uint64("user"), account.Balance)
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "issue an access token for local testing",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), ctx.Uint64("user"), jwt.TypeAccess,
						time.Duration(cfg.Jwt.Expire)*time.Second)
					if err != nil {
						return err
					}
					fmt.Println(token)
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
