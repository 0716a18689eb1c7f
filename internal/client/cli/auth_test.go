package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/autofinance/internal/client/httpclient"
	"github.com/dmitrijs2005/autofinance/internal/client/models"
	"github.com/dmitrijs2005/autofinance/internal/logging"
)

type fakeSession struct {
	session models.Session

	loginCreds []models.Credentials
	loginErr   error

	regs   []models.Registration
	regErr error

	logoutCalls int
	logoutErr   error
}

func (f *fakeSession) Session() models.Session { return f.session }
func (f *fakeSession) Authenticated() bool     { return f.session.Authenticated() }

func (f *fakeSession) Login(_ context.Context, creds models.Credentials) error {
	f.loginCreds = append(f.loginCreds, creds)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.session = models.Session{User: &models.User{Email: creds.Email}, Token: "tok"}
	return nil
}

func (f *fakeSession) Register(_ context.Context, reg models.Registration) (*models.Profile, error) {
	f.regs = append(f.regs, reg)
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.Profile{ID: 1, FirstName: reg.FirstName, LastName: reg.LastName, Email: reg.Email}, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.session = models.Anonymous
	return nil
}

type fakeBackend struct {
	*fakeSubAPI

	profile    *models.Profile
	profileErr error
	health     *models.Health
	healthErr  error
}

func (f *fakeBackend) Profile(context.Context) (*models.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeBackend) Health(context.Context) (*models.Health, error) {
	return f.health, f.healthErr
}

func newTestApp(s *fakeSession, b *fakeBackend) *App {
	return &App{
		log:       logging.Nop(),
		session:   s,
		api:       b,
		dashboard: NewDashboard(b, logging.Nop()),
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       io.Discard,
	}
}

func newBackend(subs ...string) *fakeBackend {
	f := &fakeSubAPI{}
	for _, t := range subs {
		f.subs = append(f.subs, models.Subscription{Ticker: t})
	}
	return &fakeBackend{fakeSubAPI: f}
}

func TestLogin_SuccessOpensDashboard(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "secret", "ada@example.com")
	s, b := &fakeSession{}, newBackend("AAPL")
	a := newTestApp(s, b)

	require.NoError(t, a.Login(context.Background()))

	require.Len(t, s.loginCreds, 1)
	assert.Equal(t, models.Credentials{Email: "ada@example.com", Password: "secret"}, s.loginCreds[0])
	assert.Equal(t, PathDashboard, a.route)
	assert.Equal(t, 1, b.listCalls)
	assert.Contains(t, *out, "Logged in as ada@example.com")
	assert.Contains(t, *out, "Your Subscriptions\n  1. AAPL")
}

func TestLogin_FailureShowsBackendDetail(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "wrong", "ada@example.com")
	s := &fakeSession{loginErr: &httpclient.APIError{StatusCode: 400, Detail: "Invalid email or password"}}
	b := newBackend()
	a := newTestApp(s, b)

	err := a.Login(context.Background())

	require.Error(t, err)
	assert.Contains(t, *out, "Error: Invalid email or password")
	assert.Equal(t, PathLogin, a.route)
	assert.False(t, s.Authenticated())
	assert.Zero(t, b.listCalls)
}

func TestLogin_FailureFallsBackToGenericMessage(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "pw", "ada@example.com")
	s := &fakeSession{loginErr: errors.New("connection refused")}
	a := newTestApp(s, newBackend())

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, *out, "Error: Login failed")
}

func TestLogin_InputErrorSkipsBackend(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "pw")
	s := &fakeSession{}
	a := newTestApp(s, newBackend())

	err := a.Login(context.Background())

	require.ErrorIs(t, err, io.EOF)
	assert.Empty(t, s.loginCreds)
}

func TestRegister_SuccessOpensLogin(t *testing.T) {
	out := captureOutput(t)
	prompts := stubInputs(t, "secret", "Ada", "Lovelace", "ada@example.com", "ada@example.com")
	s, b := &fakeSession{}, newBackend()
	a := newTestApp(s, b)

	require.NoError(t, a.Register(context.Background()))

	require.Len(t, s.regs, 1)
	assert.Equal(t, models.Registration{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret",
	}, s.regs[0])
	assert.Contains(t, *out, "Account created. Please log in.")
	assert.Equal(t,
		[]string{"First name", "Last name", "Email", "Password", "Email", "Password"},
		*prompts)
	require.Len(t, s.loginCreds, 1, "the login form follows registration")
	assert.Equal(t, PathDashboard, a.route)
}

func TestRegister_FailureShowsDetailAndKeepsSession(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "pw", "Ada", "Lovelace", "ada@example.com")
	s := &fakeSession{regErr: &httpclient.APIError{StatusCode: 400, Detail: "Email already registered"}}
	a := newTestApp(s, newBackend())

	require.Error(t, a.Register(context.Background()))

	assert.Contains(t, *out, "Error: Email already registered")
	assert.Equal(t, PathRegister, a.route)
	assert.Empty(t, s.loginCreds)
	assert.False(t, s.Authenticated())
}

func TestRegister_FailureFallsBackToGenericMessage(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "pw", "Ada", "Lovelace", "ada@example.com")
	s := &fakeSession{regErr: &httpclient.APIError{StatusCode: 500}}
	a := newTestApp(s, newBackend())

	require.Error(t, a.Register(context.Background()))
	assert.Contains(t, *out, "Error: Registration failed")
}

func TestLogout(t *testing.T) {
	out := captureOutput(t)
	s := &fakeSession{session: models.Session{User: &models.User{Email: "ada@example.com"}, Token: "tok"}}
	a := newTestApp(s, newBackend())

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, s.logoutCalls)
	assert.False(t, s.Authenticated())
	assert.Contains(t, *out, "Logged out.")
}

func TestLogout_Error(t *testing.T) {
	out := captureOutput(t)
	s := &fakeSession{logoutErr: errors.New("disk full")}
	a := newTestApp(s, newBackend())

	require.Error(t, a.Logout(context.Background()))
	assert.Contains(t, *out, "Error: logout failed")
}

func TestWhoAmI(t *testing.T) {
	out := captureOutput(t)
	s := &fakeSession{session: models.Session{User: &models.User{Email: "ada@example.com"}, Token: "tok"}}
	b := newBackend()
	b.profile = &models.Profile{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	a := newTestApp(s, b)

	require.NoError(t, a.WhoAmI(context.Background()))

	assert.Equal(t, []string{"Ada Lovelace <ada@example.com> (id 7)"}, *out)
}

func TestWhoAmI_ReportsEmailMismatch(t *testing.T) {
	out := captureOutput(t)
	s := &fakeSession{session: models.Session{User: &models.User{Email: "typo@example.com"}, Token: "tok"}}
	b := newBackend()
	b.profile = &models.Profile{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	a := newTestApp(s, b)

	require.NoError(t, a.WhoAmI(context.Background()))

	require.Len(t, *out, 2)
	assert.Contains(t, (*out)[1], `"typo@example.com"`)
	assert.Contains(t, (*out)[1], `"ada@example.com"`)
}

func TestWhoAmI_Error(t *testing.T) {
	out := captureOutput(t)
	b := newBackend()
	b.profileErr = httpclient.ErrUnauthorized
	a := newTestApp(&fakeSession{}, b)

	require.ErrorIs(t, a.WhoAmI(context.Background()), httpclient.ErrUnauthorized)
	assert.Contains(t, *out, "Error: failed to load profile")
}

func TestPing(t *testing.T) {
	out := captureOutput(t)
	b := newBackend()
	b.health = &models.Health{Status: "running..."}
	a := newTestApp(&fakeSession{}, b)

	require.NoError(t, a.Ping(context.Background()))
	assert.Contains(t, *out, "Backend status: running...")

	b.healthErr = errors.New("dial tcp: refused")
	require.Error(t, a.Ping(context.Background()))
	assert.Contains(t, *out, "Backend unreachable")
}
