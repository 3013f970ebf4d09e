package domain

const (
	// ERC725Y key prefix of AddressPermissions:Permissions:<address>
	PERMISSIONS_KEY_PREFIX = "0x4b80742de2bf82acb3630000"

	// Permission bitmask value meaning "no permission granted"
	EMPTY_PERMISSIONS = "0x0000000000000000000000000000000000000000000000000000000000000000"

	// Length of a full 0x-prefixed address
	ADDRESS_LENGTH = 42

	// Length of the fixed part of an ERC725Y schema key, mapping keys share it
	ERC725Y_KEY_PREFIX_LENGTH = 26
)
