package services

import (
	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

// Caller is the authenticated identity attached to every service call,
// extracted from the JWT by the auth middleware.
type Caller struct {
	AdminID int64
	Role    dbm.AdminRole
}

// resolveScope decides which admin's data a call may read. requested is
// an explicit admin id from the request (0 = caller's default scope).
// A master_admin reads anything, requested or global; an account_admin
// is pinned to its own id and any other request is rejected outright.
func resolveScope(caller Caller, requested int64) (int64, error) {
	if caller.Role == dbm.RoleMasterAdmin {
		return requested, nil
	}
	if requested != 0 && requested != caller.AdminID {
		return 0, utils.ErrScopeForbidden
	}
	return caller.AdminID, nil
}
