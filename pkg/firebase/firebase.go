package firebase

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// SetUpFireBase initializes the firebase app used for web push delivery.
// Credentials come from FIREBASE_CREDENTIALS; without it the app falls back
// to application default credentials.
func SetUpFireBase() (*firebase.App, context.Context, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if creds := os.Getenv("FIREBASE_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, ctx, err
	}

	return app, ctx, nil
}
