package api

import "auction-market/internal/pkg/errs"

// Raised when a route behind RequireAuth somehow has no user in context.
var errUnauthorized = errs.New("unauthorized")
