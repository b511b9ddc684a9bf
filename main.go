package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/teller/internal/config"
	"github.com/carson-networks/teller/internal/logging"
	"github.com/carson-networks/teller/internal/operator"
	"github.com/carson-networks/teller/internal/service"
	"github.com/carson-networks/teller/internal/shell"
	"github.com/carson-networks/teller/internal/storage"
)

func main() {
	app := &cli.App{
		Name:  "teller",
		Usage: "interactive ATM terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a TOML config file",
				EnvVars: []string{"TELLER_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "relogin-policy",
				Usage: "what login does while a session is active: override or reject",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logrus level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append logs to this file instead of stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("teller")
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logOut, closeLog, err := logging.OpenLogOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := logging.SetupLogging(logOut, level)
	logger.WithField("bankName", cfg.BankName).Info("teller starting")

	policy, err := service.ParseReloginPolicy(cfg.ReloginPolicy)
	if err != nil {
		return err
	}

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, 1, cfg.QueueSize)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store, delegator, service.Options{
		Hasher:        service.NewBcryptHasher(cfg.HashCost),
		ReloginPolicy: policy,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGTERM)
	defer stop()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	err = shell.New(cfg.BankName, line, os.Stdout, svc, logger).Run(ctx)
	logger.Info("teller stopped")
	return err
}

// loadConfig applies command-line flags on top of the file and environment.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("relogin-policy") {
		cfg.ReloginPolicy = c.String("relogin-policy")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
