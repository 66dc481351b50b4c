//go:build !windows

package fontchain

import "errors"

func registryFind(string) (string, error) {
	return "", errors.New("no font registry on this platform")
}
