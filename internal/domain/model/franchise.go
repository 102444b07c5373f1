package model

// FranchiseAdmin is the public view of a franchise administrator.
type FranchiseAdmin struct {
	ID    int64
	Name  string
	Email string
}

// Store is a physical location operated by a franchise.
type Store struct {
	ID           int64
	FranchiseID  int64
	Name         string
	TotalRevenue float64
}

// Franchise groups stores under a set of admin users.
type Franchise struct {
	ID     int64
	Name   string
	Admins []FranchiseAdmin
	Stores []Store
}
