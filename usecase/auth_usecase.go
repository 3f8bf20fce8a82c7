package usecase

import (
	"context"

	"video-uploader/domain/model"
	"video-uploader/domain/repository"
	"video-uploader/infrastructure/logger"
)

// IAuthUsecase manages the login session. Token issuance itself belongs to
// the backend identity service; this side only stores and clears the result.
type IAuthUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) error
	Signup(ctx context.Context, req model.ReqRegister) error
	Logout()
}

type AuthUsecase struct {
	backend     repository.IVideoBackend
	credentials repository.ICredential
}

func NewAuthUsecase(backend repository.IVideoBackend, credentials repository.ICredential) IAuthUsecase {
	return &AuthUsecase{backend: backend, credentials: credentials}
}

// Login exchanges credentials for a bearer token and stores it in the
// process-wide slot, replacing any previous session.
func (u *AuthUsecase) Login(ctx context.Context, req model.ReqLogin) error {
	token, err := u.backend.Login(ctx, req)
	if err != nil {
		return err
	}
	u.credentials.Set(token)
	logger.GetLogger().Info("Login succeeded; credential stored")
	return nil
}

// Signup creates the account; the user logs in separately afterwards.
func (u *AuthUsecase) Signup(ctx context.Context, req model.ReqRegister) error {
	return u.backend.Signup(ctx, req)
}

// Logout destroys the credential, forcing re-authentication on the next
// authenticated operation.
func (u *AuthUsecase) Logout() {
	u.credentials.Clear()
	logger.GetLogger().Info("Credential cleared")
}
