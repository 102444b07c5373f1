package dto

// FranchiseAdminRequest references an admin by email.
type FranchiseAdminRequest struct {
	Email string `json:"email"`
}

// CreateFranchiseRequest describes POST /api/franchise payload.
type CreateFranchiseRequest struct {
	Name   string                  `json:"name"`
	Admins []FranchiseAdminRequest `json:"admins"`
}

// CreateStoreRequest describes POST /api/franchise/:id/store payload.
type CreateStoreRequest struct {
	Name string `json:"name"`
}

type FranchiseAdminResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StoreResponse struct {
	ID           int64    `json:"id"`
	FranchiseID  int64    `json:"franchiseId,omitempty"`
	Name         string   `json:"name"`
	TotalRevenue *float64 `json:"totalRevenue,omitempty"`
}

// FranchiseResponse omits admins when the caller may not see them.
type FranchiseResponse struct {
	ID     int64                    `json:"id"`
	Name   string                   `json:"name"`
	Admins []FranchiseAdminResponse `json:"admins,omitempty"`
	Stores []StoreResponse          `json:"stores"`
}
