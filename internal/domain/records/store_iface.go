package records

import "context"

// DocAPI is the slice of the document store the records service uses.
// *docstore.Store satisfies it; tests swap in an in-memory fake.
type DocAPI interface {
	Insert(ctx context.Context, collection string, doc []byte) (string, error)
	Get(ctx context.Context, collection, id string) ([]byte, error)
	List(ctx context.Context, collection string) ([][]byte, error)
	FindByField(ctx context.Context, collection, field, value string) ([][]byte, error)
	FindOneByField(ctx context.Context, collection, field, value string) ([]byte, error)
	UpsertByField(ctx context.Context, collection, field, value string, doc []byte) ([]byte, error)
	Update(ctx context.Context, collection, id string, doc []byte) error
	Delete(ctx context.Context, collection, id string) error
}
