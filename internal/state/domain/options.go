package domain

// Location selects which backing store a read or write touches.
type Location int

const (
	// LocationDefault defers to the field policy.
	LocationDefault Location = iota
	// LocationMemory reads and writes only the in-process store.
	LocationMemory
	// LocationDisk reads and writes only the persistence collaborator.
	LocationDisk
	// LocationBoth reads memory first and falls back to disk; writes go to both.
	LocationBoth
)

func (l Location) String() string {
	switch l {
	case LocationMemory:
		return "memory"
	case LocationDisk:
		return "disk"
	case LocationBoth:
		return "both"
	}
	return "default"
}

// HasMemory reports whether l includes the in-process store.
func (l Location) HasMemory() bool { return l == LocationMemory || l == LocationBoth }

// HasDisk reports whether l includes persistent storage.
func (l Location) HasDisk() bool { return l == LocationDisk || l == LocationBoth }

// KeySuffix distinguishes the unlock mechanism a stored master key belongs to.
type KeySuffix string

const (
	KeySuffixNone      KeySuffix = ""
	KeySuffixAuto      KeySuffix = "auto"
	KeySuffixBiometric KeySuffix = "biometric"
)

// KeySuffixes lists the suffixes a field may be stored under.
var KeySuffixes = []KeySuffix{KeySuffixNone, KeySuffixAuto, KeySuffixBiometric}

// StorageOptions accompanies every read and write into session state.
// The zero value means "use the field policy for the active user".
type StorageOptions struct {
	Location         Location
	UseSecureStorage bool
	KeySuffix        KeySuffix
	UserID           string
}

// ForUser returns options targeting userID with everything else defaulted.
func ForUser(userID string) StorageOptions {
	return StorageOptions{UserID: userID}
}

// WithLocation returns a copy of o with the location overridden.
func (o StorageOptions) WithLocation(l Location) StorageOptions {
	o.Location = l
	return o
}

// WithKeySuffix returns a copy of o with the key suffix set.
func (o StorageOptions) WithKeySuffix(s KeySuffix) StorageOptions {
	o.KeySuffix = s
	return o
}
