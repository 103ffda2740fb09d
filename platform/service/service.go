package service

// Lifecycle encodes the functionality necessary to control the full lifecycle
// of a backing data store.
type Lifecycle interface {
	Setup() error
	Teardown() error
}
