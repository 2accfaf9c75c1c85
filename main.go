package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lauracmd12/Front-Davivienda/app"
	"github.com/lauracmd12/Front-Davivienda/client"
	"github.com/lauracmd12/Front-Davivienda/commands"
	"github.com/lauracmd12/Front-Davivienda/config"
	"github.com/lauracmd12/Front-Davivienda/database"
	"github.com/lauracmd12/Front-Davivienda/log"
	"github.com/lauracmd12/Front-Davivienda/session"
)

func main() {
	cfg, args, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg.StorePath)
	if err != nil {
		log.Fatal("main.store.open:", err)
	}
	defer db.Close()

	store := database.NewStore(db)
	sess := session.Load(store)

	app := app.App{
		Store:   store,
		Session: sess,
		Client:  client.New(cfg.APIBaseURL, sess.UserID),
		Config:  cfg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.Run(ctx, app, args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
