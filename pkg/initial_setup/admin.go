package initialsetup

import (
	"context"

	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/storage"

	"github.com/pkg/errors"
)

const AdminRole = "super_admin"

// CreateDefaultAdmin makes sure a super_admin with email exists. It returns
// the account and whether it was created by this call.
func CreateDefaultAdmin(ctx context.Context, users storage.UserRepoI, log logger.LoggerI, email, password string) (*models.User, bool, error) {
	if email == "" {
		return nil, false, helper.Invalid("email", "is required")
	}

	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		log.Info("default admin already exists", logger.String("email", email))
		return existing, false, nil
	}
	if !helper.IsKind(err, helper.KindNotFound) {
		return nil, false, errors.Wrap(err, "lookup default admin")
	}

	admin, err := users.Create(ctx, &models.CreateUserRequest{
		Email:     email,
		Password:  password,
		FirstName: "Default",
		LastName:  "Admin",
		Role:      AdminRole,
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "create default admin")
	}

	log.Info("default admin created", logger.String("email", email))
	return admin, true, nil
}
