package model

import "strings"

// SellerID is an uppercase seller identity from the closed set configured
// at startup. The distinguished AdminSeller identity additionally sees and
// manages all data.
type SellerID string

// AdminSeller is the administrative identity.
const AdminSeller SellerID = "ADMIN"

// Roles carried in access tokens.
const (
	RoleSeller = "SELLER"
	RoleAdmin  = "ADMIN"
)

// NormalizeSeller canonicalizes a raw seller value: trimmed and uppercased.
func NormalizeSeller(raw string) SellerID {
	return SellerID(strings.ToUpper(strings.TrimSpace(raw)))
}

// Role returns the role string for an identity.
func (s SellerID) Role() string {
	if s == AdminSeller {
		return RoleAdmin
	}
	return RoleSeller
}

// DisplayName returns the human form of the identity ("JEYNY" -> "Jeyny"),
// used in notification events and report headings.
func (s SellerID) DisplayName() string {
	v := string(s)
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + strings.ToLower(v[1:])
}
