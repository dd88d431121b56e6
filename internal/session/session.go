// Package session layers a process-lifetime "current user id" on top of the
// gateway. It is the one place that checks an authentication precondition
// before going to the network; everywhere else the server is the enforcement
// point.
package session

import (
	"context"
	"fmt"
	"sync"

	"meetapp/internal/gateway"
	"meetapp/internal/model"
)

var ErrNotAuthenticated = fmt.Errorf("user not authenticated")

// Facade wraps the gateway with the current user's id. The id is transient:
// it lives for the process, not in the credential file.
type Facade struct {
	gateway *gateway.Client

	mu     sync.Mutex
	userID int64
}

func New(gw *gateway.Client) *Facade {
	return &Facade{gateway: gw}
}

// SetCurrentUserID sets the current user id for this process.
func (f *Facade) SetCurrentUserID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userID = id
}

// CurrentUserID returns the current user id, or 0 when none is set.
func (f *Facade) CurrentUserID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userID
}

// CurrentPerson returns the current user's full record. It fails with
// ErrNotAuthenticated before issuing any network call when no id is set.
func (f *Facade) CurrentPerson(ctx context.Context) (model.Person, error) {
	id := f.CurrentUserID()
	if id == 0 {
		return model.Person{}, ErrNotAuthenticated
	}
	return f.gateway.GetPerson(ctx, id)
}

// CurrentPersonMeetups returns the meetups involving the current user.
func (f *Facade) CurrentPersonMeetups(ctx context.Context) ([]model.MeetupWithInvites, error) {
	id := f.CurrentUserID()
	if id == 0 {
		return nil, ErrNotAuthenticated
	}
	return f.gateway.ListPersonMeetups(ctx, id)
}

// Gateway exposes the underlying gateway for operations that carry no
// current-user context.
func (f *Facade) Gateway() *gateway.Client {
	return f.gateway
}
