package session

// Status is the authentication state of the client.
//
// Legal transitions:
//
//	Loading         -> Authenticated | Unauthenticated   (Initialize)
//	Unauthenticated -> Authenticated                     (Login, Register)
//	Authenticated   -> Unauthenticated                   (Logout, Invalidate)
type Status int

const (
	StatusLoading Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
