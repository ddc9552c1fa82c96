package bundleserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/consolei18n"
	"github.com/dmitrymomot/consolei18n/internal/appconfig"
	"github.com/dmitrymomot/consolei18n/internal/bundleserver"
	"github.com/dmitrymomot/consolei18n/internal/store"
	"github.com/dmitrymomot/consolei18n/pkg/health"
	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

func bundles() fstest.MapFS {
	return fstest.MapFS{
		"en-US/portals/common.json":      {Data: []byte(`{"save":"Save"}`)},
		"en-US/portals/adminPortal.json": {Data: []byte(`{"title":"Admin"}`)},
		"en-US/portals/devPortal.json":   {Data: []byte(`{"title":"Developer"}`)},
	}
}

func newSources() (*appconfig.Holder, *store.Store) {
	app := appconfig.NewHolder()
	app.Set(appconfig.Config{AppBase: "console"})
	st := store.New()
	st.SetI18nConfig(consolei18n.LocaleConfig(nil))
	return app, st
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("serves every resolved bundle path", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		setup, err := consolei18n.Setup(app, st)
		require.NoError(t, err)
		paths, err := setup.ResourcePaths("en-US")
		require.NoError(t, err)
		require.Len(t, paths, 3)

		for _, p := range paths {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
			require.Equal(t, http.StatusOK, rec.Code, p)
		}
	})

	t.Run("returns bundle content", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/resources/i18n/en-US/portals/common.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"save":"Save"}`, rec.Body.String())
	})

	t.Run("returns 404 for base language", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/resources/i18n/en/portals/common.json", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("does not serve outside the prefix", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/t/wso2.com/console/resources/i18n/en-US/portals/common.json", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("serves liveness and readiness", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		for _, p := range []string{"/health/live", "/health/ready"} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
			require.Equal(t, http.StatusOK, rec.Code, p)
		}
	})

	t.Run("readiness reports console sources", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))

		var report health.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		require.True(t, report.Ready)
		require.Contains(t, report.Sources, health.SourceAppConfig)
		require.Contains(t, report.Sources, health.SourceStore)
	})

	t.Run("logs language and namespace of missing bundle", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{
			Bundles: bundles(),
			App:     app,
			State:   st,
			Logger:  logger.NewWithWriter(&buf, slog.LevelInfo, logger.BundleExtractor()),
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/resources/i18n/en/portals/devPortal.json", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, buf.String(), `"bundle":{"language":"en","namespace":"devPortal"}`)
		require.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("keeps prefix resolved at construction", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: st})
		require.NoError(t, err)

		app.Set(appconfig.Config{AppBase: "other"})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/console/resources/i18n/en-US/portals/common.json", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other/resources/i18n/en-US/portals/common.json", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("logs requests with request id", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		app, st := newSources()
		h, err := bundleserver.New(bundleserver.Config{
			Bundles: bundles(),
			App:     app,
			State:   st,
			Logger:  logger.NewWithWriter(&buf, slog.LevelInfo, bundleserver.RequestIDExtractor()),
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

		require.Contains(t, buf.String(), `"path":"/health/live"`)
		require.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("requires bundles", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		_, err := bundleserver.New(bundleserver.Config{App: app, State: st})
		require.ErrorIs(t, err, bundleserver.ErrNoBundles)
	})

	t.Run("requires sources", func(t *testing.T) {
		t.Parallel()
		app, st := newSources()
		_, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), State: st})
		require.ErrorIs(t, err, bundleserver.ErrNoSources)

		_, err = bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app})
		require.ErrorIs(t, err, bundleserver.ErrNoSources)
	})

	t.Run("requires initialized sources", func(t *testing.T) {
		t.Parallel()
		_, st := newSources()
		_, err := bundleserver.New(bundleserver.Config{Bundles: bundles(), App: appconfig.NewHolder(), State: st})
		require.ErrorIs(t, err, appconfig.ErrNotInitialized)

		app, _ := newSources()
		_, err = bundleserver.New(bundleserver.Config{Bundles: bundles(), App: app, State: store.New()})
		require.ErrorIs(t, err, store.ErrNotInitialized)
	})
}

func TestServe(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- bundleserver.Serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}), nil)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
