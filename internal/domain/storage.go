package domain

import "context"

// Object is a single stored item as reported by a listing. LastModified is
// kept in the backend's wire form (RFC 3339 with zone offset); parsing it is
// the caller's job.
type Object struct {
	Key          string
	LastModified string
}

// Location is a resolved path spec: one bucket plus a key prefix.
type Location struct {
	Bucket string
	Prefix string
}

type Storage interface {
	Resolve(pathSpec string) (Location, error)
	List(ctx context.Context, loc Location) ([]Object, error)
	Delete(ctx context.Context, loc Location, key string) error
}

type Notifier interface {
	Notify(ctx context.Context, message string) error
}
