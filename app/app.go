package app

import (
	"github.com/lauracmd12/Front-Davivienda/client"
	"github.com/lauracmd12/Front-Davivienda/config"
	"github.com/lauracmd12/Front-Davivienda/database"
	"github.com/lauracmd12/Front-Davivienda/session"
)

type App struct {
	*database.Store
	*session.Session
	*client.Client
	config.Config
}
