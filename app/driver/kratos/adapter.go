package kratos

import (
	"context"
	"fmt"
	"log/slog"

	"store-rating-service/app/domain"
	"store-rating-service/app/port"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
)

const identitySchemaID = "default"

// PlatformAdapter adapts the Kratos client to port.PlatformClient.
// Provisioning goes through the admin API; login, session checks and
// logout go through the public (self-service) API with native flows.
type PlatformAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewPlatformAdapter creates a new adapter
func NewPlatformAdapter(client *Client, logger *slog.Logger) port.PlatformClient {
	return &PlatformAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// CreateIdentity provisions a credential-bearing identity and returns
// the platform-assigned id. The profile row keyed by that id is written
// separately by the caller.
func (a *PlatformAdapter) CreateIdentity(ctx context.Context, req port.CreateIdentityRequest) (uuid.UUID, error) {
	a.logger.Info("creating identity in Kratos", "email", req.Email, "role", req.Role)

	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": req.Email,
			"name":  req.Name,
			"role":  string(req.Role),
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: kratosclient.PtrString(req.Password),
				},
			},
		},
	}

	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"email", req.Email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return uuid.Nil, a.transformPlatformError(err, httpResp, "create_identity")
	}

	identityID, err := uuid.Parse(resp.Id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("kratos returned non-uuid identity id %q: %w", resp.Id, err)
	}

	a.logger.Info("identity created", "identity_id", identityID)
	return identityID, nil
}

// DeleteIdentity removes a platform identity. Used for rollback when
// profile provisioning fails after the identity was created.
func (a *PlatformAdapter) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	a.logger.Info("deleting identity in Kratos", "identity_id", identityID)

	httpResp, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, identityID.String()).
		Execute()
	if err != nil {
		a.logger.Error("kratos identity deletion failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformPlatformError(err, httpResp, "delete_identity")
	}

	return nil
}

// PasswordLogin runs a native self-service login flow and returns the
// resulting session with its token.
func (a *PlatformAdapter) PasswordLogin(ctx context.Context, email, password string) (*domain.Session, error) {
	a.logger.Info("starting native login flow", "email", email)

	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("kratos login flow creation failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformPlatformError(err, httpResp, "login_flow_create")
	}

	passwordMethod := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&passwordMethod)).
		Execute()
	if err != nil {
		a.logger.Warn("kratos login flow submission failed",
			"flow_id", flow.Id,
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformPlatformError(err, httpResp, "login_flow_submit")
	}

	kratosSession := resp.GetSession()
	session, err := a.transformSession(&kratosSession, resp.GetSessionToken())
	if err != nil {
		return nil, err
	}

	a.logger.Info("login flow completed",
		"session_id", kratosSession.Id,
		"identity_id", session.IdentityID)

	return session, nil
}

// SessionFromToken asks the platform who the token belongs to
func (a *PlatformAdapter) SessionFromToken(ctx context.Context, token string) (*domain.Session, error) {
	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(token).
		Execute()
	if err != nil {
		a.logger.Debug("kratos session check failed",
			"http_status", getHTTPStatus(httpResp))
		return nil, a.transformPlatformError(err, httpResp, "session_check")
	}

	return a.transformSession(resp, token)
}

// RevokeSession invalidates the session behind the token
func (a *PlatformAdapter) RevokeSession(ctx context.Context, token string) error {
	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(*kratosclient.NewPerformNativeLogoutBody(token)).
		Execute()
	if err != nil {
		a.logger.Error("kratos logout failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.transformPlatformError(err, httpResp, "revoke_session")
	}

	a.logger.Info("session revoked")
	return nil
}

// HealthCheck reports whether the platform APIs are reachable
func (a *PlatformAdapter) HealthCheck(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

// transformSession maps a Kratos session to the domain session. The
// token is carried alongside because Kratos never echoes it back on
// session checks.
func (a *PlatformAdapter) transformSession(kratosSession *kratosclient.Session, token string) (*domain.Session, error) {
	identity := kratosSession.GetIdentity()
	identityID, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("kratos session carries non-uuid identity id %q: %w", identity.Id, err)
	}

	session := &domain.Session{
		Token:      token,
		IdentityID: identityID,
		Active:     kratosSession.GetActive(),
	}

	if kratosSession.ExpiresAt != nil {
		session.ExpiresAt = *kratosSession.ExpiresAt
	}
	if kratosSession.IssuedAt != nil {
		session.IssuedAt = *kratosSession.IssuedAt
	}

	return session, nil
}
