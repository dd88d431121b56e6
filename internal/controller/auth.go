package controller

import (
	"context"
	"log/slog"

	"meetapp/internal/credentials"
	"meetapp/internal/model"
	"meetapp/internal/session"
	"meetapp/internal/validator"
)

// AuthData is the successful login payload.
type AuthData struct {
	UserID   int64
	UserName string
}

// Auth drives the login, logout and registration flows.
type Auth struct {
	logger      *slog.Logger
	session     *session.Facade
	credentials *credentials.Store
	validate    *validator.Validator

	state         *Observable[Result[AuthData]]
	registerState *Observable[Result[model.PersonShort]]
}

func NewAuth(logger *slog.Logger, facade *session.Facade, creds *credentials.Store, validate *validator.Validator) *Auth {
	return &Auth{
		logger:        logger,
		session:       facade,
		credentials:   creds,
		validate:      validate,
		state:         NewObservable(Idle[AuthData]()),
		registerState: NewObservable(Idle[model.PersonShort]()),
	}
}

func (c *Auth) State() *Observable[Result[AuthData]] {
	return c.state
}

func (c *Auth) RegisterState() *Observable[Result[model.PersonShort]] {
	return c.registerState
}

// Login authenticates with the given credentials. They are persisted before
// the call so the dispatcher attaches them as Basic auth; on failure they are
// cleared again.
func (c *Auth) Login(ctx context.Context, login, password string) {
	c.state.Set(Loading[AuthData]())

	if err := c.credentials.SaveCredentials(login, password); err != nil {
		c.state.Set(Failure[AuthData](errorMessage(err, "Auth Error")))
		return
	}

	person, err := c.session.Gateway().Login(ctx)
	if err != nil {
		if clearErr := c.credentials.Clear(); clearErr != nil {
			c.logger.Error("Failed to clear credentials after failed login", "error", clearErr)
		}
		c.state.Set(Failure[AuthData](errorMessage(err, "Auth Error")))
		return
	}

	department := ""
	if person.Department != nil {
		department = *person.Department
	}
	if err := c.credentials.SaveUserInfo(person.ID, person.Name, department); err != nil {
		c.logger.Error("Failed to persist user info", "error", err)
	}
	c.session.SetCurrentUserID(person.ID)

	c.logger.Info("User logged in", "user_id", person.ID, "login", login)
	c.state.Set(Success(AuthData{UserID: person.ID, UserName: person.Name}))
}

// Register creates a new person after validating the payload locally.
func (c *Auth) Register(ctx context.Context, registration model.PersonRegistration) {
	c.registerState.Set(Loading[model.PersonShort]())

	if err := c.validate.Validate(registration); err != nil {
		c.registerState.Set(Failure[model.PersonShort](errorMessage(err, "Failed to register person")))
		return
	}

	person, err := c.session.Gateway().RegisterPerson(ctx, registration)
	if err != nil {
		c.registerState.Set(Failure[model.PersonShort](errorMessage(err, "Failed to register person")))
		return
	}

	c.logger.Info("Person registered", "user_id", person.ID, "login", person.Login)
	c.registerState.Set(Success(person))
}

// Logout erases the stored session and returns the state to idle.
func (c *Auth) Logout() {
	if err := c.credentials.Clear(); err != nil {
		c.logger.Error("Failed to clear credentials", "error", err)
	}
	c.session.SetCurrentUserID(0)
	c.state.Set(Idle[AuthData]())
}

// IsAuthenticated reports whether stored credentials exist.
func (c *Auth) IsAuthenticated() bool {
	return c.credentials.IsAuthenticated()
}

// Restore re-establishes the current user id from persisted state, for
// process restarts with saved credentials.
func (c *Auth) Restore() {
	if id := c.credentials.UserID(); id > 0 {
		c.session.SetCurrentUserID(id)
	}
}
