package bundleserver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBundlePath(t *testing.T) {
	t.Parallel()

	const prefix = "/console/resources/i18n"

	tests := []struct {
		name      string
		path      string
		language  string
		namespace string
		ok        bool
	}{
		{"directory mapping", prefix + "/en-US/portals/adminPortal.json", "en-US", "adminPortal", true},
		{"hashed metadata file", prefix + "/fr-FR/portals/common.4f2a1c.json", "fr-FR", "common", true},
		{"bundle without directory", prefix + "/en-US/billing.json", "en-US", "billing", true},
		{"outside prefix", "/other/en-US/portals/common.json", "", "", false},
		{"not a bundle", prefix + "/en-US/portals/readme.txt", "", "", false},
		{"language only", prefix + "/en-US", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			language, namespace, ok := parseBundlePath(prefix, tt.path)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.language, language)
			require.Equal(t, tt.namespace, namespace)
		})
	}
}
