package session

// CanAccess is the routing predicate for protected views: true only when the
// session carries a credential. Pure function of the snapshot; callers must
// re-evaluate it on every navigation rather than caching the result.
func CanAccess(s Snapshot) bool {
	return s.Authenticated()
}

// CanAccessAdmin gates the privileged views: the session must be
// authenticated AND belong to an admin. Callers redirect to the main view
// (not the login screen) when it fails for an authenticated non-admin.
func CanAccessAdmin(s Snapshot) bool {
	return s.Authenticated() && s.User.IsAdmin
}
