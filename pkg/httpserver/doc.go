// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled or on SIGINT/SIGTERM. Liveness and
// Readiness build probe handlers; Readiness takes dependency checks such as
// pg.Healthcheck or redis.Healthcheck.
package httpserver
