package repositories

// RepositoryProvider bundles all repository implementations for service
// construction.
type RepositoryProvider struct {
	UserRepo        UserRepository
	TransactionRepo TransactionRepository
}
