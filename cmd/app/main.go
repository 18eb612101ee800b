package main

import (
	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/di"
	"github.com/reagan13/beach-management-system-java-sub000/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
