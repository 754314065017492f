package people

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "person not found" }

type Repo interface {
	Create(ctx context.Context, person Person) error
	Update(ctx context.Context, person Person) error
	GetByID(ctx context.Context, personID string) (Person, error)
	List(ctx context.Context) ([]Person, error)
	Delete(ctx context.Context, personID string) error
}
