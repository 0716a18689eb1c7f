package cli

import (
	"strings"

	"github.com/dmitrijs2005/autofinance/internal/client/models"
)

const brand = "AutoFinance"

// Header renders the navigation line for the current session: the brand,
// then the logged-in user's links or the anonymous ones.
func Header(s models.Session) string {
	var b strings.Builder
	b.WriteString(brand)
	if !s.Authenticated() {
		b.WriteString(" | Login | Register")
		return b.String()
	}
	b.WriteString(" | Dashboard | Logout")
	if s.User.Email != "" {
		b.WriteString(" (" + s.User.Email + ")")
	}
	return b.String()
}
