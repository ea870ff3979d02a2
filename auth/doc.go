// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Actor Keys

Actor keys use HMAC-SHA256 to create deterministic, verifiable keys
for an identity:

	key := auth.GenerateActorKey(identity, salt)
	err := auth.ValidateActorKey(identity, key, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same identity and salt always produce the same
key, so validation never requires a database lookup. The authority's
key and every voter's key are derived this way; the registration and
transfer endpoints hand the key out, and the core machine decides
separately whether the authenticated identity is allowed to act.

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving request logging:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
