package cache

// KeySeparator is used to build complete keys out of parts.
const KeySeparator = "."

const bytesPrefix = "cache.bytes"

// ByteService caches opaque byte blobs separated by namespace. It backs the
// rendered badge cache, where identical (theme, count, length, format) inputs
// always produce identical bytes.
type ByteService interface {
	Get(namespace, key string) ([]byte, error)
	Set(namespace, key string, data []byte) error
}

// ByteServiceMiddleware is a chainable behaviour modifier for ByteService.
type ByteServiceMiddleware func(ByteService) ByteService
