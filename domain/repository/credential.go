package repository

// ICredential is the process-wide slot holding the bearer token issued at
// login. At most one token exists at a time; Clear is called at logout or
// when an absent token is detected.
type ICredential interface {
	Get() (token string, ok bool)
	Set(token string)
	Clear()
}
