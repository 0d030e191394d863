package store

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var client *firestore.Client

// SetupStore connects to the firestore project holding the comments,
// bookings and analytics collections. Credentials come from
// FIREBASE_CREDENTIALS_FILE; without it the client falls back to
// application default credentials.
func SetupStore() {
	ctx := context.Background()

	conf := &firebase.Config{
		ProjectID: env.GetEnv("FIREBASE_PROJECT_ID", "rent-a-car-aandl"),
	}

	var opts []option.ClientOption
	if credFile := env.GetEnv("FIREBASE_CREDENTIALS_FILE", ""); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		var app *firebase.App
		app, err = firebase.NewApp(ctx, conf, opts...)
		if err == nil {
			client, err = app.Firestore(ctx)
			if err == nil {
				return
			}
		}

		log.Printf("Failed to connect to firestore (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// GetClient returns the firestore client instance
func GetClient() *firestore.Client {
	if client == nil {
		SetupStore()
	}
	return client
}
