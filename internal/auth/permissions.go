package auth

import "ayurcare_backend/internal/models"

// Role gates are pure predicates over an authenticated account, so they are
// testable without any HTTP context. Handlers translate a false result into
// a Forbidden rejection, which is distinct from Unauthenticated.

// IsDoctor passes iff the account holds the doctor role.
func IsDoctor(account *models.Account) bool {
	return account != nil && account.Role == models.RoleDoctor
}

// IsPatient passes iff the account holds the patient role.
func IsPatient(account *models.Account) bool {
	return account != nil && account.Role == models.RolePatient
}

// DoctorOrSelf passes iff the account is a doctor, or it owns the resource.
// An empty owner id never matches.
func DoctorOrSelf(account *models.Account, ownerID string) bool {
	if account == nil {
		return false
	}
	if account.Role == models.RoleDoctor {
		return true
	}
	return ownerID != "" && account.ID.Hex() == ownerID
}
