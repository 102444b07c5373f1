package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Tokens() TokenRepository
	Franchises() FranchiseRepository
	Menu() MenuRepository
	Orders() OrderRepository
}
