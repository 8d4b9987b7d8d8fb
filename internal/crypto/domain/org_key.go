package domain

// OrganizationKey is a user-wrapped organization key as delivered by the
// identity service: an RSA envelope to the user's public key.
type OrganizationKey struct {
	ID  string
	Key string
}

// ProviderOrganizationKey is an organization key wrapped by a provider's
// symmetric key. It must be re-wrapped to the user before it is stored.
type ProviderOrganizationKey struct {
	ID         string
	Key        string
	ProviderID string
}

// ProviderKey is a provider's symmetric key wrapped to the user's public key.
type ProviderKey struct {
	ID  string
	Key string
}
