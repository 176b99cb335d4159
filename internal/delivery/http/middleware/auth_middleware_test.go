package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	mockUC "postboard/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	identity := mockUC.NewMockIdentityUsecase(t)
	mw := NewAuthMiddleware(identity)

	resolved := &entity.User{ID: 1, Email: "test@example.com"}
	identity.EXPECT().Resolve(mock.Anything, "signed.jwt.token").Return(resolved, nil)

	c, _ := newAuthTestContext(t, "Bearer signed.jwt.token")

	nextCalled := false
	handler := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		user, ok := CurrentUser(c)
		require.True(t, ok)
		assert.Equal(t, resolved, user)

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	identity := mockUC.NewMockIdentityUsecase(t)
	mw := NewAuthMiddleware(identity)

	c, rec := newAuthTestContext(t, "")

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not validate credentials")
	identity.AssertNotCalled(t, "Resolve")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	identity := mockUC.NewMockIdentityUsecase(t)
	mw := NewAuthMiddleware(identity)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	identity.AssertNotCalled(t, "Resolve")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	identity := mockUC.NewMockIdentityUsecase(t)
	mw := NewAuthMiddleware(identity)

	identity.EXPECT().
		Resolve(mock.Anything, "garbage").
		Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "token verification failed"))

	c, rec := newAuthTestContext(t, "Bearer garbage")

	handler := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not validate credentials")
}

func TestCurrentUser_Missing(t *testing.T) {
	c, _ := newAuthTestContext(t, "")

	user, ok := CurrentUser(c)

	assert.Nil(t, user)
	assert.False(t, ok)
}
