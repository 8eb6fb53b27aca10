//go:build contend_cachelinesize_256

package opt

// CacheLineSize_ forced to 256 bytes via the contend_cachelinesize_256 build tag.
const CacheLineSize_ = 256
