package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"socialgram/auth"
	"socialgram/domain"
	apperrors "socialgram/errors"
	"socialgram/repositories"
)

type seedConfig struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

type seedUser struct {
	username       string
	profilePicture string
	password       string
}

// Seeds a local database with a few users and prints a ready-to-use dev
// token for each, so the websocket and REST routes can be exercised
// without the external signup flow.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	var config seedConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	users := repositories.NewUserRepository(db)
	tokens := auth.NewTokenManager(config.AuthSecret, config.AuthTokenDuration)

	seeds := []seedUser{
		{"alice", "https://i.pravatar.cc/150?u=alice", "alice-password"},
		{"bob", "https://i.pravatar.cc/150?u=bob", "bob-password"},
		{"carol", "https://i.pravatar.cc/150?u=carol", "carol-password"},
	}

	for _, seed := range seeds {
		user, err := createOrFetch(users, seed)
		if err != nil {
			return fmt.Errorf("seeding %s failed: %w", seed.username, err)
		}

		token, err := tokens.Generate(user.ID)
		if err != nil {
			return fmt.Errorf("token for %s failed: %w", seed.username, err)
		}
		fmt.Printf("%-8s id=%s\n         token=%s\n", user.Username, user.ID, token)
	}
	return nil
}

func createOrFetch(users repositories.IUserRepository, seed seedUser) (domain.User, error) {
	hash, err := auth.HashPassword(seed.password)
	if err != nil {
		return domain.User{}, err
	}

	user, err := users.CreateUser(seed.username, seed.profilePicture, hash)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return users.GetUserByUsername(seed.username)
	}
	return user, err
}
