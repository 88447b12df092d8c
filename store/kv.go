package store

// ChangeEvent is emitted by a KeyValueStore whenever a key is written or
// cleared. Subscribers re-read the key; the event carries no payload so a
// slow consumer can only ever be stale, not wrong.
type ChangeEvent struct {
	Key string `json:"key"`
}

// KeyValueStore is durable, string-keyed JSON storage with fail-soft
// semantics: reads that miss, hit corrupt data, or fail at the driver return
// false and leave the caller's default in place; writes are best-effort and
// never surface an error. The in-memory state of the managers stays
// authoritative for the session either way.
type KeyValueStore interface {
	// Read unmarshals the value stored under key into `into` and reports
	// whether it did. On false, `into` is left untouched.
	Read(key string, into interface{}) bool

	// Write marshals value and stores it under key. Failures are swallowed.
	Write(key string, value interface{})

	// Clear removes key.
	Clear(key string)

	// Subscribe returns a channel of change events for the store's keys.
	// Delivery is best-effort: events may be dropped for slow consumers.
	Subscribe() <-chan ChangeEvent

	// Close releases the store's resources and stops event delivery.
	Close()
}
