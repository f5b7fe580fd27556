package auth

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/frahmantamala/employee-management/internal"
	userDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateUser inserts a new identity record. The email unique index is the
// source of truth for duplicates; violations map to ErrEmailExists.
func (r *Repository) CreateUser(name, email, passwordHash string) (int64, error) {
	user := &userDatamodel.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return 0, internal.ErrEmailExists
		}
		return 0, internal.NewInternalError("failed to create user", err)
	}

	return user.ID, nil
}

func (r *Repository) GetCredentialsForEmail(email string) (string, int64, string, error) {
	var passwordHash string
	var userID int64
	var name string
	query := `SELECT id, name, password_hash FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &name, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, "", internal.ErrInvalidCredentials
		}
		return "", 0, "", err
	}
	return passwordHash, userID, name, nil
}

// isDuplicateKeyError covers gorm's translated error plus the raw messages
// from postgres and sqlite, which surface when translation is unavailable.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
