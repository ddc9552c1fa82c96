// Package consolei18n supplies the fixed i18n configuration of the console
// portals: namespace tokens, the bundle directory mapping, the engine init
// options and the plugin flags.
//
// All values are process-wide constants. Nothing here is instantiated; the
// startup sequence reads them once and hands them to the i18n engine:
//
//	app := appconfig.NewHolder()
//	app.Set(cfg)
//
//	st := store.New()
//	st.SetI18nConfig(consolei18n.LocaleConfig(meta))
//
//	setup, err := consolei18n.Setup(app, st)
//	if err != nil {
//	    return err
//	}
//
// The backend loader in [ModuleInitOptions] reads the application base path
// and the locale configuration at call time, so both sources may be populated
// after the options are built but must be populated before the first load.
//
// Bundles are looked up in the tenant-less application base path. The portals
// are not deployed per tenant, so "/console/resources/i18n/..." is requested
// rather than "/t/{tenant}/console/resources/i18n/...".
package consolei18n
