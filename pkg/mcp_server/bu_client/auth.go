package bu_client

import (
	"context"
	"fmt"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// AuthenticationResolver picks the authentication id a business unit can
// currently act with. Resolution happens once per tool invocation and is
// never cached; activation state can change between calls and staleness
// would cause silent authorization failures downstream.
type AuthenticationResolver interface {
	ActiveAuthenticationID(ctx context.Context, businessUnitID string) (string, error)
}

type _AuthResolver struct {
	client EBLClient
}

func NewAuthenticationResolver(client EBLClient) *_AuthResolver {
	return &_AuthResolver{
		client: client,
	}
}

func (r *_AuthResolver) ActiveAuthenticationID(ctx context.Context, businessUnitID string) (string, error) {
	logrus.Debugf("fetching authentication ID for business unit %q", businessUnitID)

	bu, err := r.client.GetBusinessUnit(ctx, businessUnitID)
	if err != nil {
		return "", fmt.Errorf("fetch business unit %q: %v. %w", businessUnitID, err, model.ErrAuthenticationLookupFailed)
	}

	auth, found := lo.Find(bu.Authentications, func(auth model.BusinessUnitAuthentication) bool {
		return auth.Status == model.BusinessUnitAuthenticationStatusActive
	})
	if !found {
		return "", fmt.Errorf("business unit %q. %w", businessUnitID, model.ErrNoActiveAuthentication)
	}

	return auth.ID, nil
}
