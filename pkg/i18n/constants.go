package i18n

// Namespace tokens shared by the console portals.
const (
	CommonNamespace      = "common"
	AdminPortalNamespace = "adminPortal"
	DevPortalNamespace   = "devPortal"
)

const (
	// LocalizationFilesBasePath is the resource path used when a LocaleConfig does not set one.
	LocalizationFilesBasePath = "resources/i18n"

	// MetaFileName is the conventional name of the language metadata file.
	MetaFileName = "meta.json"

	// DefaultLanguage is the fallback language of the default init options.
	DefaultLanguage = "en-US"

	bundleFileExt = ".json"
)
