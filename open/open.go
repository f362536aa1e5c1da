// Package open hands web links to the desktop's default handler.
package open

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mydrama-tv/mydrama/constant"
)

var (
	ErrUnsupported = fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	ErrNotWebLink  = errors.New("not an http(s) link")
)

// Validate checks that raw is an absolute http(s) URL.
func Validate(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%q: %w", raw, ErrNotWebLink)
	}
	return u, nil
}

// URL opens raw in the browser without waiting for it.
func URL(raw string) error {
	u, err := Validate(raw)
	if err != nil {
		return err
	}

	cmd, ok := command(u.String())
	if !ok {
		return ErrUnsupported
	}
	return cmd.Start()
}

func command(target string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", target), true
	case constant.Darwin:
		return exec.Command("open", target), true
	case constant.Linux:
		return exec.Command("xdg-open", target), true
	case constant.Android:
		return exec.Command("termux-open-url", target), true
	default:
		return nil, false
	}
}
