package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// MintScopedToken asks the identity provider for a credential scoped by
// the named token template. Callers treat any failure as "no token" and
// continue anonymously.
func (f *AuthClient) MintScopedToken(ctx context.Context, uid, template string) (string, error) {
	token, err := f.client.CustomTokenWithClaims(ctx, uid, map[string]interface{}{
		"template": template,
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}
