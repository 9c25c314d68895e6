package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/admin/client"
	"github.com/dmitrijs2005/qradmin/internal/admin/config"
	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/common"
	"github.com/dmitrijs2005/qradmin/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeSession struct {
	authed         atomic.Bool
	principal      models.Principal
	loginPrincipal models.Principal
	loginErr       error
	gotEmail       string
	gotPassword    string
	restores       int
	logouts        int
	signedInAt     time.Time
	expiresAt      time.Time
}

func (f *fakeSession) Restore(context.Context) error { f.restores++; return nil }
func (f *fakeSession) IsAuthenticated() bool         { return f.authed.Load() }
func (f *fakeSession) Principal() (models.Principal, bool) {
	if !f.authed.Load() {
		return models.Principal{}, false
	}
	return f.principal, true
}
func (f *fakeSession) SignedInAt() (time.Time, bool) {
	return f.signedInAt, f.authed.Load() && !f.signedInAt.IsZero()
}
func (f *fakeSession) ExpiresAt() (time.Time, bool) {
	return f.expiresAt, f.authed.Load() && !f.expiresAt.IsZero()
}
func (f *fakeSession) Login(_ context.Context, email string, pw []byte) (models.Principal, error) {
	f.gotEmail, f.gotPassword = email, string(pw)
	if f.loginErr != nil {
		return models.Principal{}, f.loginErr
	}
	if !f.loginPrincipal.IsAdmin() {
		return models.Principal{}, common.ErrAdminRequired
	}
	f.principal = f.loginPrincipal
	f.authed.Store(true)
	return f.principal, nil
}
func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	f.authed.Store(false)
	return nil
}

var rootAdmin = models.Principal{ID: "a1", Name: "Root", Email: "root@x.io", Role: common.RoleAdmin}

// fakeBackend is an in-memory platform API.
type fakeBackend struct {
	mu             sync.Mutex
	users          []models.User
	usersStatus    int
	updates        []map[string]any
	lastUsersQuery url.Values
	analyticsQuery url.Values
}

func newFakeBackend(users int) *fakeBackend {
	b := &fakeBackend{}
	for i := 1; i <= users; i++ {
		b.users = append(b.users, models.User{
			ID: fmt.Sprintf("u%02d", i), Name: fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@x.io", i), Role: common.RoleUser, IsActive: true,
		})
	}
	return b
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func okBody(data any) map[string]any { return map[string]any{"success": true, "data": data} }

func (b *fakeBackend) routes(r *mux.Router) {
	r.HandleFunc("/admin/users", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.lastUsersQuery = req.URL.Query()
		if b.usersStatus != 0 {
			reply(w, b.usersStatus, map[string]any{"success": false, "message": "Token expired"})
			return
		}
		page, _ := strconv.Atoi(req.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
		total := max((len(b.users)+limit-1)/limit, 1)
		lo := min((page-1)*limit, len(b.users))
		hi := min(lo+limit, len(b.users))
		reply(w, http.StatusOK, okBody(map[string]any{"users": b.users[lo:hi], "totalPages": total}))
	}).Methods(http.MethodGet)

	r.HandleFunc("/admin/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		var patch map[string]any
		_ = json.NewDecoder(req.Body).Decode(&patch)
		b.updates = append(b.updates, patch)
		reply(w, http.StatusOK, okBody(map[string]any{"user": map[string]any{"_id": mux.Vars(req)["id"]}}))
	}).Methods(http.MethodPut)

	r.HandleFunc("/admin/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := mux.Vars(req)["id"]
		for i, u := range b.users {
			if u.ID == id {
				b.users = append(b.users[:i], b.users[i+1:]...)
				reply(w, http.StatusOK, map[string]any{"success": true, "message": "deleted"})
				return
			}
		}
		reply(w, http.StatusNotFound, map[string]any{"success": false, "message": "User not found"})
	}).Methods(http.MethodDelete)

	r.HandleFunc("/admin/qr-codes", func(w http.ResponseWriter, req *http.Request) {
		reply(w, http.StatusOK, okBody(map[string]any{
			"qrCodes":    []map[string]any{{"_id": "q1", "name": "Menu", "shortId": "abc123", "userId": map[string]any{"_id": "u01", "name": "User 1"}}},
			"totalPages": 1,
		}))
	}).Methods(http.MethodGet)

	r.HandleFunc("/admin/qr-codes/{id}", func(w http.ResponseWriter, req *http.Request) {
		reply(w, http.StatusOK, okBody(map[string]any{
			"qrCode":    map[string]any{"_id": "q1", "name": "Menu", "shortId": "abc123", "userId": map[string]any{"name": "User 1"}},
			"analytics": map[string]any{"totalScans": 17, "locationBreakdown": []map[string]any{{"_id": "Riga", "count": 17}}},
		}))
	}).Methods(http.MethodGet)

	r.HandleFunc("/admin/landing-pages", func(w http.ResponseWriter, req *http.Request) {
		reply(w, http.StatusOK, okBody(map[string]any{
			"landingPages": []map[string]any{{"_id": "l1", "name": "Promo", "title": "Big Sale"}},
			"totalPages":   1,
		}))
	}).Methods(http.MethodGet)

	r.HandleFunc("/admin/landing-pages/{id}", func(w http.ResponseWriter, req *http.Request) {
		reply(w, http.StatusOK, okBody(map[string]any{"landingPage": map[string]any{
			"_id": "l1", "name": "Promo", "title": "Big Sale", "backgroundColor": "#1f2937",
			"buttonText": "Shop now", "sections": []map[string]any{{"content": "Free shipping"}},
		}}))
	}).Methods(http.MethodGet)

	r.HandleFunc("/admin/dashboard/stats", func(w http.ResponseWriter, req *http.Request) {
		reply(w, http.StatusOK, okBody(map[string]any{
			"stats": map[string]any{"totalUsers": 11, "totalQRCodes": 4, "totalLandingPages": 2, "totalScans": 99},
		}))
	}).Methods(http.MethodGet)

	r.HandleFunc("/admin/analytics", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		b.analyticsQuery = req.URL.Query()
		b.mu.Unlock()
		reply(w, http.StatusOK, okBody(map[string]any{
			"deviceBreakdown": []map[string]any{{"_id": "mobile", "count": 3}},
		}))
	}).Methods(http.MethodGet)
}

func (b *fakeBackend) query() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsersQuery
}

func (b *fakeBackend) analytics() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.analyticsQuery
}

func (b *fakeBackend) userList() []models.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.users)
}

func (b *fakeBackend) patches() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.updates)
}

func newTestApp(t *testing.T, b *fakeBackend, sess *fakeSession) (*App, *bytes.Buffer) {
	t.Helper()
	root := mux.NewRouter()
	b.routes(root.PathPrefix("/api").Subrouter())
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	api, err := client.New(srv.URL+"/api", 2*time.Second, client.TokenFunc(func() string { return "tok" }), logging.Discard())
	require.NoError(t, err)
	api.OnUnauthorized(func(context.Context) { sess.authed.Store(false) })

	a := NewApp(&config.Config{PageSize: 10}, sess, api, logging.Discard())
	out := &bytes.Buffer{}
	a.out = out
	a.rnd = rand.New(rand.NewPCG(1, 1))
	return a, out
}

func loggedIn() *fakeSession {
	s := &fakeSession{principal: rootAdmin}
	s.authed.Store(true)
	return s
}

// stubAnswers feeds successive answers to getSimpleText, then EOF.
func stubAnswers(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

// ---- auth and routing ----

func TestApp_ProtectedRouteNeedsLogin(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend(1), &fakeSession{})

	require.NoError(t, a.Navigate(context.Background(), RouteUsers))
	assert.Equal(t, RouteLogin, a.route)
	assert.Contains(t, out.String(), "Please log in")
}

func TestApp_LoginAdminShowsDashboard(t *testing.T) {
	sess := &fakeSession{loginPrincipal: rootAdmin}
	a, out := newTestApp(t, newFakeBackend(1), sess)
	stubAnswers(t, "root@x.io")
	stubPassword(t, "pw")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "root@x.io", sess.gotEmail)
	assert.Equal(t, "pw", sess.gotPassword)
	assert.Equal(t, RouteDashboard, a.currentRoute())
	assert.Contains(t, out.String(), "Welcome, Root!")
	assert.Contains(t, out.String(), "Total Users")
	assert.Contains(t, out.String(), "mobile")
	assert.Equal(t, "(root@x.io) /", a.getStatus())
}

func TestApp_LoginNonAdminRefused(t *testing.T) {
	sess := &fakeSession{loginPrincipal: models.Principal{Email: "bob@x.io", Role: common.RoleUser}}
	a, out := newTestApp(t, newFakeBackend(1), sess)
	a.route = RouteLogin
	stubAnswers(t, "bob@x.io")
	stubPassword(t, "pw")

	err := a.Login(context.Background())
	require.ErrorIs(t, err, common.ErrAdminRequired)
	assert.Contains(t, out.String(), "Admin privileges required")
	assert.Equal(t, RouteLogin, a.currentRoute())
}

func TestApp_LoginBadCredentials(t *testing.T) {
	sess := &fakeSession{loginErr: &client.APIError{Kind: common.ErrUnauthorized, Status: 401, Message: "Invalid credentials"}}
	a, out := newTestApp(t, newFakeBackend(1), sess)
	stubAnswers(t, "x@y.z")
	stubPassword(t, "nope")

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Invalid email or password.")
}

func TestApp_Logout(t *testing.T) {
	sess := loggedIn()
	a, out := newTestApp(t, newFakeBackend(1), sess)
	a.route = RouteUsers

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, sess.logouts)
	assert.Equal(t, RouteLogin, a.currentRoute())
	assert.Contains(t, out.String(), "Logged out.")
}

func TestApp_RunRestoresSessionAndExits(t *testing.T) {
	silencePrint(t)
	sess := &fakeSession{}
	a, out := newTestApp(t, newFakeBackend(1), sess)
	a.reader = bufio.NewReader(strings.NewReader("help\nexit\n"))

	a.Run(context.Background())

	assert.Equal(t, 1, sess.restores)
	assert.Contains(t, out.String(), "Welcome to qradmin")
	assert.Contains(t, out.String(), "Please log in")
}

func TestApp_WhoAmIShowsSessionTimes(t *testing.T) {
	sess := loggedIn()
	a, out := newTestApp(t, newFakeBackend(0), sess)

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Root <root@x.io> (admin)")
	assert.NotContains(t, out.String(), "Signed in:")
	assert.NotContains(t, out.String(), "Session expires:")

	signed := time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)
	sess.signedInAt = signed
	sess.expiresAt = signed.Add(24 * time.Hour)
	out.Reset()

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Signed in: 2024-06-01 09:30")
	assert.Contains(t, out.String(), "Session expires: 2024-06-02 09:30")

	sess.authed.Store(false)
	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestApp_RunScriptedInputFeedsPrompts(t *testing.T) {
	lines := silencePrint(t)
	b := newFakeBackend(2)
	a, out := newTestApp(t, b, loggedIn())
	a.reader = bufio.NewReader(strings.NewReader(strings.Join([]string{
		"/users",
		"edit 1",
		"Renamed", "", "", "",
		"delete 2",
		"y",
		"exit",
	}, "\n") + "\n"))

	a.Run(context.Background())

	require.Len(t, b.patches(), 1)
	assert.Equal(t, "Renamed", b.patches()[0]["name"])
	assert.Contains(t, out.String(), "Saved.")
	assert.Contains(t, out.String(), "Deleted.")
	assert.NotContains(t, out.String(), "EOF")
	require.Len(t, b.userList(), 1)
	assert.Equal(t, "u01", b.userList()[0].ID)
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

// ---- list screens ----

func TestApp_UsersListAndSearch(t *testing.T) {
	b := newFakeBackend(3)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()

	require.NoError(t, a.Navigate(ctx, RouteUsers))
	assert.Contains(t, out.String(), "user3@x.io")
	assert.Contains(t, out.String(), "Page 1 of 1")

	require.NoError(t, a.Search(ctx, "jane"))
	assert.Equal(t, "jane", b.query().Get("search"))
	assert.Equal(t, "10", b.query().Get("limit"))

	require.NoError(t, a.Filter(ctx, "role", "admin"))
	assert.Equal(t, "admin", b.query().Get("role"))
	assert.Equal(t, "1", b.query().Get("page"))

	require.NoError(t, a.Filter(ctx, "role", "-"))
	assert.False(t, b.query().Has("role"))

	out.Reset()
	require.Error(t, a.Filter(ctx, "plan", "pro"))
	assert.Contains(t, out.String(), "unknown filter")
}

func TestApp_DeleteLastRowOfLastPage(t *testing.T) {
	b := newFakeBackend(11)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()

	require.NoError(t, a.Navigate(ctx, RouteUsers))
	require.NoError(t, a.Next(ctx))
	assert.Contains(t, out.String(), "Page 2 of 2")

	out.Reset()
	stubAnswers(t, "y")
	require.NoError(t, a.Delete(ctx, "1"))

	assert.Len(t, b.userList(), 10)
	assert.Contains(t, out.String(), "Are you sure you want to delete User 11?")
	assert.Contains(t, out.String(), "all their QR codes, landing pages, and analytics")
	assert.Contains(t, out.String(), "Deleted.")
	assert.Contains(t, out.String(), "Page 1 of 1")
	assert.Equal(t, "1", b.query().Get("page"))
}

func TestApp_DeleteCancelled(t *testing.T) {
	b := newFakeBackend(2)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteUsers))

	stubAnswers(t, "n")
	require.NoError(t, a.Delete(ctx, "2"))
	assert.Len(t, b.userList(), 2)
	assert.Contains(t, out.String(), "Cancelled.")

	require.Error(t, a.Delete(ctx, "9"))
	assert.Contains(t, out.String(), "row must be a number between 1 and 2")
}

func TestApp_EditUserKeepsUnchangedFields(t *testing.T) {
	b := newFakeBackend(2)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteUsers))

	stubAnswers(t, "Renamed", "", "admin", "n")
	require.NoError(t, a.Edit(ctx, "2"))

	require.Len(t, b.patches(), 1)
	assert.Equal(t, map[string]any{"name": "Renamed", "email": "user2@x.io", "role": "admin", "isActive": false}, b.patches()[0])
	assert.Contains(t, out.String(), "Saved.")
}

func TestApp_EditValidationThenRetry(t *testing.T) {
	b := newFakeBackend(1)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteUsers))

	stubAnswers(t,
		"", "not-an-email", "", "", // rejected before any request
		"y",
		"", "", "", "",
	)
	require.NoError(t, a.Edit(ctx, "1"))

	assert.Contains(t, out.String(), "Invalid input")
	assert.Contains(t, out.String(), "Saved.")
	require.Len(t, b.patches(), 1)
	assert.Equal(t, "user1@x.io", b.patches()[0]["email"])
}

func TestApp_EditAbandoned(t *testing.T) {
	b := newFakeBackend(1)
	a, _ := newTestApp(t, b, loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteUsers))

	stubAnswers(t, "", "", "superuser", "", "n")
	require.ErrorIs(t, a.Edit(ctx, "1"), common.ErrValidation)
	assert.Empty(t, b.patches())

	s := a.screens[RouteUsers].(*listScreen[models.User, models.UserPatch])
	assert.Nil(t, s.ctrl.State().Edit.Entity)
}

func TestApp_UnauthorizedSendsToLogin(t *testing.T) {
	b := newFakeBackend(3)
	b.usersStatus = http.StatusUnauthorized
	sess := loggedIn()
	a, out := newTestApp(t, b, sess)

	require.Error(t, a.Navigate(context.Background(), RouteUsers))
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, RouteLogin, a.currentRoute())
	assert.Contains(t, out.String(), "Session expired. Please log in again.")
	assert.NotContains(t, out.String(), "No users found")
}

func TestApp_ServerErrorKeepsStaleList(t *testing.T) {
	b := newFakeBackend(3)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteUsers))

	b.mu.Lock()
	b.usersStatus = http.StatusInternalServerError
	b.mu.Unlock()
	out.Reset()

	require.Error(t, a.Refresh(ctx))
	assert.Contains(t, out.String(), "Something went wrong")
	assert.Contains(t, out.String(), "user1@x.io")
	assert.Equal(t, RouteUsers, a.currentRoute())
}

// ---- detail views ----

func TestApp_ViewQRCode(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend(0), loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteQRCodes))
	out.Reset()

	require.NoError(t, a.View(ctx, "1"))
	assert.Contains(t, out.String(), "QR Analysis: Menu")
	assert.Contains(t, out.String(), "17")
	assert.Contains(t, out.String(), "Riga")
	assert.Contains(t, out.String(), "No device data available")
}

func TestApp_ViewLandingPage(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend(0), loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteLandingPages))
	out.Reset()

	require.NoError(t, a.View(ctx, "1"))
	assert.Contains(t, out.String(), "Preview: Promo")
	assert.Contains(t, out.String(), "#000004")
	assert.Contains(t, out.String(), "Shop now")
	assert.Contains(t, out.String(), "Free shipping")
}

func TestApp_ViewUsersHasNoDetail(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend(1), loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteUsers))

	require.NoError(t, a.View(ctx, "1"))
	assert.Contains(t, out.String(), "No detail view for users.")
}

func TestApp_ListCommandsOutsideListScreens(t *testing.T) {
	a, out := newTestApp(t, newFakeBackend(1), loggedIn())
	ctx := context.Background()
	require.NoError(t, a.Navigate(ctx, RouteDashboard))

	require.NoError(t, a.Next(ctx))
	assert.Contains(t, out.String(), "This command works on /users")
}

// ---- analytics ----

func TestApp_RangeQueriesAnalytics(t *testing.T) {
	b := newFakeBackend(0)
	a, out := newTestApp(t, b, loggedIn())
	ctx := context.Background()

	require.NoError(t, a.Range(ctx, "2024-01-01", "-"))
	assert.Equal(t, RouteAnalytics, a.currentRoute())
	assert.Equal(t, "2024-01-01", b.analytics().Get("startDate"))
	assert.False(t, b.analytics().Has("endDate"))
	assert.Contains(t, out.String(), "From 2024-01-01 to today")

	require.Error(t, a.Range(ctx, "2024-02-01", "2024-01-01"))
	assert.Contains(t, out.String(), "end date is before start date")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&client.APIError{Kind: common.ErrUnauthorized, Status: 401}, "Session expired. Please log in again."},
		{&client.APIError{Kind: common.ErrNotFound, Status: 404, Message: "User not found"}, "Not found: User not found"},
		{fmt.Errorf("delete: %w", &client.APIError{Kind: common.ErrConflict, Status: 409, Message: "in use"}), "Conflict: in use"},
		{&client.APIError{Kind: common.ErrServer, Status: 500, Message: "db"}, "Something went wrong. Please try again."},
		{&client.APIError{Kind: common.ErrNetwork, Message: "dial tcp"}, "Something went wrong. Please try again."},
		{common.ErrAdminRequired, "Access denied. Admin privileges required."},
		{fmt.Errorf("%w: bad", common.ErrValidation), "Invalid input: validation error: bad"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorMessage(tt.err))
	}
}
