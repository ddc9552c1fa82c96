// Package health reports whether the console sources the i18n loader depends
// on are ready.
//
// The loader reads the application config and the state store on every call.
// The readiness handler checks the same two sources:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Sources{
//	    health.SourceAppConfig: health.Reader(func() error { _, err := app.AppBase(); return err }),
//	    health.SourceStore:     health.Reader(func() error { _, err := st.I18nConfig(); return err }),
//	}, health.WithLogger(log)))
//
// Sources are checked in parallel under a shared timeout (5s by default).
//
// Handlers answer in plain text ("OK" / "Service Unavailable") unless the
// client asks for JSON with Accept: application/json or ?format=json:
//
//	{
//	  "ready": false,
//	  "sources": {
//	    "app_config": {"ready": true},
//	    "store": {"ready": false, "error": "health: source not ready: store: state is not initialized"}
//	  }
//	}
package health
