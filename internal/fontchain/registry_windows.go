//go:build windows

package fontchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const fontsKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

// registryFind resolves a display name such as "Arial Bold" through the
// installed-fonts table. Per-user installs are checked before machine-wide.
func registryFind(name string) (string, error) {
	display := strings.TrimSuffix(name, filepath.Ext(name)) + " (TrueType)"
	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		k, err := registry.OpenKey(root, fontsKey, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		file, _, err := k.GetStringValue(display)
		k.Close()
		if err != nil || file == "" {
			continue
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(os.Getenv("WINDIR"), "Fonts", file)
		}
		return file, nil
	}
	return "", fmt.Errorf("font %q not registered", display)
}
