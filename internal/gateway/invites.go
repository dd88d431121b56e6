package gateway

import (
	"context"
	"fmt"
	"net/http"

	"meetapp/internal/model"
)

// ListInvites returns all invites.
func (c *Client) ListInvites(ctx context.Context) ([]model.Invite, error) {
	var invites []model.Invite
	if err := c.do(ctx, http.MethodGet, "/api/invites", nil, nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// CreateInvite creates an invite linking one meetup to one participant.
func (c *Client) CreateInvite(ctx context.Context, creation model.InviteCreation) (model.Invite, error) {
	var invite model.Invite
	if err := c.do(ctx, http.MethodPost, "/api/invites", nil, creation, &invite); err != nil {
		return model.Invite{}, err
	}
	return invite, nil
}

// UpdateInvite overwrites an invite. Re-sending the same agreement value is a
// no-op on the server side, not an accumulation.
func (c *Client) UpdateInvite(ctx context.Context, id int64, invite model.Invite) (model.Invite, error) {
	var updated model.Invite
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/invites/%d", id), nil, invite, &updated); err != nil {
		return model.Invite{}, err
	}
	return updated, nil
}
