package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

const (
	contextKeyUserID   = "auth.userID"
	contextKeyUserRole = "auth.userRole"
)

// Authenticator issues and verifies HS256 bearer tokens and resolves the
// calling account on every authenticated request.
type Authenticator struct {
	secret                   []byte
	tokenTTL                 time.Duration
	getUserHandler           queries.GetUserQueryHandler
	getUserByUsernameHandler queries.GetUserByUsernameQueryHandler
}

func NewAuthenticator(
	secret string,
	tokenTTL time.Duration,
	getUserHandler queries.GetUserQueryHandler,
	getUserByUsernameHandler queries.GetUserByUsernameQueryHandler,
) (*Authenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if tokenTTL <= 0 {
		return nil, errs.NewValueIsInvalidError("tokenTTL")
	}

	return &Authenticator{
		secret:                   []byte(secret),
		tokenTTL:                 tokenTTL,
		getUserHandler:           getUserHandler,
		getUserByUsernameHandler: getUserByUsernameHandler,
	}, nil
}

// Login verifies the credentials and issues a token for the matching account.
// A missing account and a wrong password are indistinguishable to the caller.
func (a *Authenticator) Login(ctx echo.Context, username, password string) (Token, error) {
	query, err := queries.NewGetUserByUsernameQuery(username)
	if err != nil {
		return Token{}, err
	}

	account, err := a.getUserByUsernameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return Token{}, errs.NewNotAuthorizedError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return Token{}, errs.NewNotAuthorizedError("invalid username or password")
	}

	token, err := a.issueToken(account.ID)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: token}, nil
}

func (a *Authenticator) issueToken(userID kernel.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Middleware authenticates the request and stores the caller's identity and
// role in the request context. Requests without a valid token get 401.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := a.verify(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing access token",
				})
			}

			query, err := queries.NewGetUserQuery(userID)
			if err != nil {
				return problem(ctx, err)
			}
			account, err := a.getUserHandler.Handle(ctx.Request().Context(), query)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid or missing access token",
				})
			}

			ctx.Set(contextKeyUserID, account.ID)
			ctx.Set(contextKeyUserRole, account.Role)
			return next(ctx)
		}
	}
}

func (a *Authenticator) verify(header string) (kernel.UUID, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return kernel.UUID{}, errs.NewValueIsRequiredError("Authorization")
	}

	token, err := jwt.ParseWithClaims(
		strings.TrimPrefix(header, prefix),
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return kernel.UUID{}, errs.NewValueIsInvalidError("accessToken")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError("accessToken")
	}
	return kernel.UUIDFromString(subject)
}

func callerID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(contextKeyUserID).(kernel.UUID)
	return id
}

func callerRole(ctx echo.Context) user.Role {
	role, _ := ctx.Get(contextKeyUserRole).(user.Role)
	return role
}
