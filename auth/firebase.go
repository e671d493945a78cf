package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseOnce sync.Once
	firebaseAuth *fbauth.Client
	firebaseErr  error
	projectID    string
)

// firebaseClient initializes the Firebase Admin SDK on first use so the
// server can still boot (and tests can run) without Google credentials.
func firebaseClient(ctx context.Context) (*fbauth.Client, error) {
	firebaseOnce.Do(func() {
		credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
		if credsJSON == "" || projectID == "" {
			firebaseErr = errors.New("FIREBASE_CREDENTIALS_JSON and FIREBASE_PROJECT_ID must be set")
			return
		}

		opt := option.WithCredentialsJSON([]byte(credsJSON))
		config := &firebase.Config{ProjectID: projectID}

		app, err := firebase.NewApp(ctx, config, opt)
		if err != nil {
			firebaseErr = err
			return
		}
		firebaseAuth, firebaseErr = app.Auth(ctx)
		if firebaseErr == nil {
			log.Printf("✅ Firebase Admin SDK initialized for project %s", projectID)
		}
	})
	return firebaseAuth, firebaseErr
}

// verifyIDToken checks the Firebase ID token, its revocation state and its
// audience, returning the decoded token.
func verifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	client, err := firebaseClient(ctx)
	if err != nil {
		return nil, err
	}
	token, err := client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if token.Audience != projectID {
		return nil, errors.New("invalid token audience")
	}
	return token, nil
}
