package port

import "context"

// Repositories is the set of repositories bound to one transaction.
type Repositories interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Outbox() OutboxRepository
	Categories() CategoryRepository
	Stats() StatsRepository
}

// Transactor runs fn in a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	InTx(ctx context.Context, fn func(repos Repositories) error) error
}
