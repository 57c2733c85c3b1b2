package domain

import "time"

// Credential is an administrator login. The digest is opaque to everything
// except the password hasher; the only mutation the rest of the system ever
// performs is replacing it on a verified password change.
type Credential struct {
	ID             int64
	Username       string
	PasswordDigest string
	Created        time.Time
	Updated        time.Time
}
