//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"socialgram/domain"
	apperrors "socialgram/errors"
)

type IUserRepository interface {
	CreateUser(username, profilePicture, passwordHash string) (domain.User, error)
	GetUserByID(id string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	Exists(id string) (bool, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// diskUser is the stored shape; the password hash never leaves this layer.
type diskUser struct {
	ID             string    `json:"id"`
	Username       string    `json:"user_name"`
	ProfilePicture string    `json:"profile_picture"`
	PasswordHash   string    `json:"password_hash"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateUser persists a user under "user:{id}" with a "useridx:{username}"
// pointer for name lookups. The username index doubles as the uniqueness
// check.
func (u UserRepository) CreateUser(username, profilePicture, passwordHash string) (domain.User, error) {
	record := diskUser{
		ID:             uuid.NewString(),
		Username:       username,
		ProfilePicture: profilePicture,
		PasswordHash:   passwordHash,
		CreatedAt:      time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		idxKey := []byte("useridx:" + username)
		if _, err := txn.Get(idxKey); err == nil {
			return apperrors.ErrUserAlreadyExists
		}
		if err := txn.Set([]byte("user:"+record.ID), data); err != nil {
			return err
		}
		return txn.Set(idxKey, []byte(record.ID))
	})
	if err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}

func (u UserRepository) GetUserByID(id string) (domain.User, error) {
	var record diskUser
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(record), nil
}

func (u UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var id []byte
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("useridx:" + username))
		if err != nil {
			return err
		}
		id, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u.GetUserByID(string(id))
}

// Exists is the recipient check used by the conversation resolver.
func (u UserRepository) Exists(id string) (bool, error) {
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("user:" + id))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func toUser(record diskUser) domain.User {
	return domain.User{
		ID:             record.ID,
		Username:       record.Username,
		ProfilePicture: record.ProfilePicture,
		CreatedAt:      record.CreatedAt,
	}
}
