package application

// Error taxonomy shared by the services. Handlers map these onto HTTP
// statuses: validation and conflict to 400, auth to 400/401, anything
// else to a generic 500 (internal details stay in the logs).

type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type ConflictError string

func (e ConflictError) Error() string { return string(e) }

type AuthError string

func (e AuthError) Error() string { return string(e) }

// ErrInvalidCredentials is returned for both unknown-email and
// wrong-password logins. The single message is deliberate: it hides which
// of the two cases occurred.
var ErrInvalidCredentials = AuthError("invalid email or password")
