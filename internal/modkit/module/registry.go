// Package module is the contract every API module satisfies plus the process wide port
// registry modules use to find each other without importing one another
package module

import (
	"reflect"
	"sort"
	"sync"

	phttp "interventions/internal/platform/net/http"
)

// Module mounts routes and publishes a port bundle under a stable name
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register publishes ports under name, replacing any previous entry
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the port of type T registered under name. The registered value
// may be T itself or a struct whose exported fields include a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	p, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	return portOf[T](p)
}

// Names lists registered modules in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Reset empties the registry. Tests only
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reg = map[string]any{}
}

func portOf[T any](p any) (T, bool) {
	var zero T
	if p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
