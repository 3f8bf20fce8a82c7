package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
	"video-uploader/domain/repository"
	"video-uploader/infrastructure/logger"
)

// sessionPhase tracks where one upload session is in its lifecycle. Phases
// advance strictly forward; a new attempt always starts a new session.
type sessionPhase int

const (
	phaseIdle sessionPhase = iota
	phaseValidating
	phaseAuthenticating
	phaseRequestingCapability
	phaseTransferring
	phaseSucceeded
	phaseFailed
)

func (p sessionPhase) String() string {
	switch p {
	case phaseIdle:
		return "Idle"
	case phaseValidating:
		return "Validating"
	case phaseAuthenticating:
		return "Authenticating"
	case phaseRequestingCapability:
		return "RequestingCapability"
	case phaseTransferring:
		return "Transferring"
	case phaseSucceeded:
		return "Succeeded"
	case phaseFailed:
		return "Failed"
	}
	return "Unknown"
}

// writeCapability only exists once the capability step has completed, so the
// transfer step cannot be reached without one.
type writeCapability struct {
	url string
}

// IUploadUsecase drives the multi-step upload protocol as one operation:
// validate, authenticate, request a write capability, transfer the bytes,
// acknowledge.
type IUploadUsecase interface {
	// Upload runs one session and returns the file's display name on
	// success. It never retries on its own; retry is a fresh invocation.
	Upload(ctx context.Context, file dto.UploadFile) (string, error)
	// InFlight reports whether a session is currently running. The dialog
	// refuses to close while this is true.
	InFlight() bool
}

type UploadUsecase struct {
	backend     repository.IVideoBackend
	objectStore repository.IObjectStore
	credentials repository.ICredential
	allowedType string
	inFlight    atomic.Bool
}

func NewUploadUsecase(
	backend repository.IVideoBackend,
	objectStore repository.IObjectStore,
	credentials repository.ICredential,
	allowedType string,
) IUploadUsecase {
	return &UploadUsecase{
		backend:     backend,
		objectStore: objectStore,
		credentials: credentials,
		allowedType: allowedType,
	}
}

func (u *UploadUsecase) InFlight() bool {
	return u.inFlight.Load()
}

// Upload executes the session state machine
// Idle -> Validating -> Authenticating -> RequestingCapability ->
// Transferring -> {Succeeded | Failed}. A second call while a session is in
// flight is rejected without starting a session.
func (u *UploadUsecase) Upload(ctx context.Context, file dto.UploadFile) (string, error) {
	if !u.inFlight.CompareAndSwap(false, true) {
		return "", model.ErrUploadInFlight
	}
	defer u.inFlight.Store(false)

	phase := phaseIdle
	fail := func(err error) (string, error) {
		logger.GetLogger().WithField("phase", phase.String()).WithField("error", err).Error("Upload session failed")
		phase = phaseFailed
		return "", err
	}

	phase = phaseValidating
	if err := u.validate(file); err != nil {
		return fail(err)
	}

	phase = phaseAuthenticating
	token, ok := u.credentials.Get()
	if !ok {
		return fail(fmt.Errorf("%w: upload requires login", model.ErrUnauthenticated))
	}

	phase = phaseRequestingCapability
	capability, err := u.requestCapability(ctx, token, file)
	if err != nil {
		return fail(err)
	}

	phase = phaseTransferring
	if err := u.objectStore.Put(ctx, capability.url, file.ContentType, file.Content, file.Size); err != nil {
		// The capability was single-use and tied to this byte length; a
		// retry must start over from a fresh capability.
		return fail(err)
	}

	phase = phaseSucceeded
	logger.GetLogger().WithField("name", file.Name).Info("Upload session succeeded")
	return file.Name, nil
}

// validate is the authoritative media-type gate; the dialog's selection-time
// check is only a shortcut.
func (u *UploadUsecase) validate(file dto.UploadFile) error {
	if file.Content == nil || file.Name == "" {
		return fmt.Errorf("%w: no file selected", model.ErrInvalidInput)
	}
	if file.Size <= 0 {
		return fmt.Errorf("%w: file is empty", model.ErrInvalidInput)
	}
	if file.ContentType != u.allowedType {
		return fmt.Errorf("%w: unsupported media type %q, expected %q", model.ErrInvalidInput, file.ContentType, u.allowedType)
	}
	return nil
}

func (u *UploadUsecase) requestCapability(ctx context.Context, token string, file dto.UploadFile) (writeCapability, error) {
	q := dto.UploadURLQuery{
		ContentLength: file.Size,
		FileType:      mediaSubtype(file.ContentType),
	}
	url, err := u.backend.CreateUploadURL(ctx, token, q)
	if err != nil {
		return writeCapability{}, err
	}
	return writeCapability{url: url}, nil
}

// mediaSubtype extracts "mp4" from "video/mp4"; the capability query carries
// only the subtype.
func mediaSubtype(contentType string) string {
	if idx := strings.Index(contentType, "/"); idx >= 0 {
		return contentType[idx+1:]
	}
	return contentType
}
