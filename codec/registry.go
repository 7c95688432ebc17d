package codec

import (
	"reflect"
	"sync"

	"github.com/logistics-platform/libs/go/measures/functional"
)

// Registry maps type identity to encode/decode functions. Converters
// are registered explicitly at startup rather than fabricated through
// runtime type introspection, so every supported type is visible at
// the registration site.
type Registry struct {
	codecs map[reflect.Type]any
	mu     sync.RWMutex
}

// NewRegistry creates an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[reflect.Type]any)}
}

// Register binds a TypedCodec to its value type T.
func Register[T any](r *Registry, codec TypedCodec[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[reflect.TypeOf((*T)(nil)).Elem()] = codec
}

// Lookup returns the codec registered for T.
func Lookup[T any](r *Registry) functional.Option[TypedCodec[T]] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.codecs[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return functional.Some(c.(TypedCodec[T]))
	}
	return functional.None[TypedCodec[T]]()
}

// Has reports whether a codec is registered for T.
func Has[T any](r *Registry) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codecs[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// Unregister removes the codec for T. Returns true if one was present.
func Unregister[T any](r *Registry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := r.codecs[key]; ok {
		delete(r.codecs, key)
		return true
	}
	return false
}

// Size returns the number of registered codecs.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codecs)
}

// Encode encodes v through the codec registered for T.
func Encode[T any](r *Registry, v T) functional.Result[[]byte] {
	c, ok := Lookup[T](r).Get()
	if !ok {
		return functional.Err[[]byte](functional.NewError("no codec registered for type"))
	}
	return EncodeResult(c, v)
}

// Decode decodes data through the codec registered for T.
func Decode[T any](r *Registry, data []byte) functional.Result[T] {
	c, ok := Lookup[T](r).Get()
	if !ok {
		return functional.Err[T](functional.NewError("no codec registered for type"))
	}
	return DecodeResult(c, data)
}
