package repository

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// NewCatalogClient builds a Firestore client scoped to the catalog
// project. The bearer token is optional: when the identity provider could
// not mint one, the client falls back to anonymous access instead of
// failing the page.
func NewCatalogClient(ctx context.Context, projectID, token string) (*firestore.Client, error) {
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		return firestore.NewClient(ctx, projectID, option.WithTokenSource(ts))
	}

	// Service account credentials still apply when configured; otherwise
	// the client is fully unauthenticated.
	if sa := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); sa != "" {
		return firestore.NewClient(ctx, projectID, option.WithCredentialsJSON([]byte(sa)))
	}
	if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		return firestore.NewClient(ctx, projectID, option.WithCredentialsFile(path))
	}

	return firestore.NewClient(ctx, projectID, option.WithoutAuthentication())
}
