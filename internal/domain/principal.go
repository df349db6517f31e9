package domain

// Principal is the normalized identity attached to a request after the
// bearer token has been verified. The role is always re-fetched from the
// database rather than trusted from the token payload, so suspensions and
// employer verification take effect on the next request.
type Principal struct {
	ID         int64 `json:"id"`
	Role       Role  `json:"role"`
	IsActive   bool  `json:"isActive"`
	IsVerified bool  `json:"isVerified"`
	// EmployerID is set when the principal has an employer profile.
	EmployerID int64 `json:"employerId,omitempty"`
}
