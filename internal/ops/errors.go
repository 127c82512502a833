package ops

import "fmt"

// ErrorKind classifies a failed controller action.
type ErrorKind string

const (
	KindInvalidFileType    ErrorKind = "invalid_file_type"
	KindInvalidFileFormat  ErrorKind = "invalid_file_format"
	KindMissingCredential  ErrorKind = "missing_credential"
	KindMissingAddonData   ErrorKind = "missing_addon_data"
	KindTransportError     ErrorKind = "transport_error"
	KindUnknownSyncFailure ErrorKind = "unknown_sync_failure"
	KindRemoteRejected     ErrorKind = "remote_rejected"
	KindSyncInProgress     ErrorKind = "sync_in_progress"
)

// User-facing messages.
const (
	msgInvalidFileType    = "Please upload a valid JSON file"
	msgInvalidFileFormat  = "Invalid JSON file format"
	msgMissingCredential  = "No auth key provided"
	msgMissingAddonData   = "No addons data loaded. Please upload a JSON file first."
	msgUnknownSyncFailure = "Sync failed with unknown error"
	msgSyncInProgress     = "A sync is already in progress"
	msgSyncComplete       = "Sync complete!"
)

// Error is a failed controller action. Message is the text shown to the
// user; Err, when set, is the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can compare against
// the Err* sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidFileType    = &Error{Kind: KindInvalidFileType, Message: msgInvalidFileType}
	ErrInvalidFileFormat  = &Error{Kind: KindInvalidFileFormat, Message: msgInvalidFileFormat}
	ErrMissingCredential  = &Error{Kind: KindMissingCredential, Message: msgMissingCredential}
	ErrMissingAddonData   = &Error{Kind: KindMissingAddonData, Message: msgMissingAddonData}
	ErrTransport          = &Error{Kind: KindTransportError, Message: "Error syncing addons"}
	ErrUnknownSyncFailure = &Error{Kind: KindUnknownSyncFailure, Message: msgUnknownSyncFailure}
	ErrRemoteRejected     = &Error{Kind: KindRemoteRejected, Message: "Failed to sync addons"}
	ErrSyncInProgress     = &Error{Kind: KindSyncInProgress, Message: msgSyncInProgress}
)

func newError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func transportError(cause error) *Error {
	return newError(KindTransportError, fmt.Sprintf("Error syncing addons: %v", cause), cause)
}

func remoteRejected(description string) *Error {
	return newError(KindRemoteRejected, "Failed to sync addons: "+description, nil)
}
