// Package httpserver runs the readkitd HTTP handler with bounded timeouts and
// graceful shutdown driven by a context.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(cfg.HTTP.Addr),
//		httpserver.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
//		httpserver.WithLogger(log),
//	)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		// errors.Is(err, httpserver.ErrStart)
//	}
//
// Options panic on invalid values so misconfiguration fails at startup.
package httpserver
