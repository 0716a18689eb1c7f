package cli

const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

// Route resolves the view to show for path. Only the root is guarded: it
// leads to the dashboard when a user is logged in and to the login form
// otherwise. Unknown paths resolve like the root.
func Route(path string, authenticated bool) string {
	switch path {
	case PathLogin, PathRegister, PathDashboard:
		return path
	}
	if authenticated {
		return PathDashboard
	}
	return PathLogin
}
