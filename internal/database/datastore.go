package database

// DataStore defines the unified interface for all data operations.
// It is composed of smaller, per-entity interfaces; consumers should depend
// on the smallest one they need.
type DataStore interface {
	UserRepository
	ProjectRepository
	ActivityRepository
}
