package handler

import (
	"catering/config"
	"catering/di"
	"catering/shared/logger"
	"net/http"
	"sync"
)

var (
	once    sync.Once
	handler http.HandlerFunc
)

// Handler is the serverless entrypoint. The dependency graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Adaptor()
	})

	handler(w, r)
}
