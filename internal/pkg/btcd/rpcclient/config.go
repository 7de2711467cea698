package rpcclient

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
)

// DefaultCookiePath is where bitcoind writes its RPC cookie on mainnet.
const DefaultCookiePath = "~/.bitcoin/.cookie"

// NewConnConfig builds an HTTP POST connection config for a bitcoind endpoint.
// Explicit credentials win over the cookie file.
func NewConnConfig(rawURL, user, password, cookiePath string) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host + parsed.Path,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	if parsed.User != nil && user == "" {
		user = parsed.User.Username()
		password, _ = parsed.User.Password()
	}
	if user != "" {
		cfg.User = user
		cfg.Pass = password
		return cfg, nil
	}

	if cookiePath == "" {
		cookiePath = DefaultCookiePath
	}
	cfg.CookiePath, err = expandHome(cookiePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve cookie path: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
