// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses ballotbox configuration from CLI flags with
environment-variable fallback.

Required settings:

  - DATABASE_URL (-d): connection string for the audit store
  - AUTHORITY_ID (-authority): initial election authority identity
  - ACTOR_KEY_SALT (-actor-salt): secret for actor key HMAC

Optional settings:

  - PORT (-p): server port (default: 4316)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

CLI flags override environment variables.
*/
package cliparse
