// Package config reads application configuration from environment variables.
// Every getter trims the value and treats blank as unset
package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"interventions/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. New().Prefix("CORE_API_")
type Conf struct{ prefix string }

// New returns the unprefixed root
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) get(k string) (string, string) {
	name := c.key(k)
	return strings.TrimSpace(os.Getenv(name)), name
}

// parse converts a set value with fn. Unset gives def, a bad value is logged and gives def
func parse[T any](c Conf, k string, def T, kind string, fn func(string) (T, error)) T {
	s, name := c.get(k)
	if s == "" {
		return def
	}
	v, err := fn(s)
	if err != nil {
		logger.Get().Warn().Str("key", name).Str("value", s).Interface("default", def).Msgf("invalid %s, using default", kind)
		return def
	}
	return v
}

// MustAddr returns a listen address: "4000" becomes ":4000" and "host:port" passes through.
// Unset gives def. A port outside 1..65535 panics
func (c Conf) MustAddr(k, def string) string {
	s, name := c.get(k)
	if s == "" {
		return def
	}
	addr := s
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	if _, port, err := net.SplitHostPort(addr); err != nil || !validPort(port) {
		logger.Get().Panic().Str("key", name).Str("value", s).Msg("listen address needs a port in 1..65535")
	}
	return addr
}

func validPort(s string) bool {
	p, err := strconv.ParseUint(s, 10, 16)
	return err == nil && p > 0
}

// MayString returns the value, or def when unset
func (c Conf) MayString(k, def string) string {
	if s, _ := c.get(k); s != "" {
		return s
	}
	return def
}

// MayBool accepts anything strconv.ParseBool does
func (c Conf) MayBool(k string, def bool) bool { return parse(c, k, def, "bool", strconv.ParseBool) }

// MayInt reads a base 10 int
func (c Conf) MayInt(k string, def int) int { return parse(c, k, def, "int", strconv.Atoi) }

// MayDuration reads a time.ParseDuration string such as "1500ms"
func (c Conf) MayDuration(k string, def time.Duration) time.Duration {
	return parse(c, k, def, "duration", time.ParseDuration)
}

// MayCSV splits a comma separated list and drops blank items. A list with no items gives def
func (c Conf) MayCSV(k string, def []string) []string {
	s, _ := c.get(k)
	var out []string
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayFile reads the file the key names. Unset returns (nil, "", nil).
// A set key that cannot be read is an error the caller must surface
func (c Conf) MayFile(k string) (data []byte, path string, err error) {
	if path, _ = c.get(k); path == "" {
		return nil, "", nil
	}
	data, err = os.ReadFile(path)
	return data, path, err
}
