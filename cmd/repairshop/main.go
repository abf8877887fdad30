package main

import (
	logger "github.com/sirupsen/logrus"

	"github.com/damian3262-dot/device-repair-hub/internal/compress"
	"github.com/damian3262-dot/device-repair-hub/internal/config"
	"github.com/damian3262-dot/device-repair-hub/internal/db"
	"github.com/damian3262-dot/device-repair-hub/internal/handlers"
	"github.com/damian3262-dot/device-repair-hub/internal/middleware"
	"github.com/damian3262-dot/device-repair-hub/internal/router"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		panic(err)
	}
	defer database.Close()

	handlerSet := handlers.NewHandlerSet(conf.Secret, conf.AuthCookieExpiresIn, database)

	r := router.NewRouter(conf, handlerSet, middleware.RequestLogger{}, compress.RequestUngzipper{})

	logger.Infof("Listening on %s", conf.RunAddress)
	err = r.ListenAndServe()
	if err != nil {
		panic(err)
	}
}
