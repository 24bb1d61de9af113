package domain

// Storage record keys. Each key holds one serialized collection.
// The preferences record is reserved for UI preferences and is not
// touched by the collection layer.
const (
	KeyFavorites   = "favorites"
	KeyWatchlist   = "watchlist"
	KeyPreferences = "preferences"
)

// KeyValueStore is the durable medium behind the local collections.
// Both operations are fail-open: a missing or corrupt record reads as
// a miss, and a failed write reports false instead of an error. The
// caller decides how (and whether) to surface a failed write.
type KeyValueStore interface {
	// Read deserializes the record at key into dest. It returns false
	// when the key is absent or the stored bytes do not deserialize.
	Read(key string, dest interface{}) bool

	// Write serializes value and persists it at key in a single
	// attempt. It returns false on any serialization or storage
	// failure.
	Write(key string, value interface{}) bool

	Close() error
}
