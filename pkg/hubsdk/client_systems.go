package hubsdk

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
)

type systemsResponse struct {
	Systems []domain.AuthorizedSystem `json:"systems"`
}

// AuthorizedSystems lists the systems the current session's tenant grants the
// user. Returns an empty list on any error; an empty dashboard is an
// acceptable degraded state.
func (c *Client) AuthorizedSystems(ctx context.Context) []domain.AuthorizedSystem {
	resp, err := c.doRequest(ctx, http.MethodGet, "/hub/tenant-systems", nil, nil)
	if err != nil {
		c.log().Warn("systems listing request failed", "err", err)
		return []domain.AuthorizedSystem{}
	}

	raw, err := readBody(resp)
	if err != nil {
		c.log().Warn("systems listing response unreadable", "err", err)
		return []domain.AuthorizedSystem{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log().Warn("systems listing returned non-success status", "status", resp.StatusCode)
		return []domain.AuthorizedSystem{}
	}

	var sysResp systemsResponse
	if err := json.Unmarshal(raw, &sysResp); err != nil {
		c.log().Warn("systems listing response malformed", "err", err)
		return []domain.AuthorizedSystem{}
	}

	if sysResp.Systems == nil {
		return []domain.AuthorizedSystem{}
	}
	return sysResp.Systems
}

// HasAccess reports whether the session grants access to the system with the
// given code. Returns false on any retrieval error.
func (c *Client) HasAccess(ctx context.Context, systemCode string) bool {
	for _, system := range c.AuthorizedSystems(ctx) {
		if system.Code == systemCode && system.HasAccess {
			return true
		}
	}
	return false
}
