package services

import (
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
)

// resolvePassword applies the account creation password policy and returns
// the plaintext to hash. generated reports whether the caller must surface
// the plaintext to the admin, since it will never be recoverable again.
func resolvePassword(policy, password, confirmPassword string) (plaintext string, generated bool, err error) {
	switch policy {
	case dto.PasswordPolicyGenerate:
		plaintext, err = auth.GeneratePassword()
		if err != nil {
			return "", false, err
		}
		return plaintext, true, nil
	case dto.PasswordPolicyManual:
		if password == "" {
			return "", false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "password is required for the manual policy")
		}
		if password != confirmPassword {
			return "", false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "passwords do not match")
		}
		return password, false, nil
	default:
		return "", false, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown password policy")
	}
}
