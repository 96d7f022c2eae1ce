package models

// UserRole is the portal role resolved by the upstream gateway. The API
// trusts the claim; credential checking happens before requests arrive here.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleStaff   UserRole = "STAFF"
	RoleStudent UserRole = "STUDENT"
)
