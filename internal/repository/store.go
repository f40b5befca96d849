package repository

// Store is the persistence gateway the services are wired against. The GORM
// implementation backs it with Postgres; internal/repository/memory provides
// an in-process implementation honoring the same version-conflict contract.
type Store interface {
	Products() ProductRepository
	Orders() OrderRepository

	// InTransaction runs fn against a transaction-scoped Store. Any error
	// returned by fn rolls the whole unit of work back; nothing written
	// inside fn survives a failure.
	InTransaction(fn func(Store) error) error
}
