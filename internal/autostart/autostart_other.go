//go:build !windows

package autostart

func enable(string) error {
	return ErrUnsupported
}

func disable() error {
	return ErrUnsupported
}

func enabled() (bool, string, error) {
	return false, "", ErrUnsupported
}
