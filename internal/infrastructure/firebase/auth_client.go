package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// IdentitySnapshot is what the identity provider knows about a user. It is
// copied into our own documents, never referenced live.
type IdentitySnapshot struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// TestConnection probes the Auth backend. A lookup miss still proves the
// connection works.
func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	_, err := f.client.GetUser(ctx, "healthcheck-probe")
	if err != nil && !auth.IsUserNotFound(err) {
		return err
	}
	return nil
}

// GetUser fetches the provider-side profile for uid.
func (f *FirebaseAuthClient) GetUser(ctx context.Context, uid string) (*IdentitySnapshot, error) {
	record, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	snapshot := &IdentitySnapshot{
		UID:         record.UID,
		DisplayName: record.DisplayName,
		Email:       record.Email,
		PhotoURL:    record.PhotoURL,
	}
	if snapshot.DisplayName == "" {
		snapshot.DisplayName = "Anonymous"
	}

	return snapshot, nil
}
