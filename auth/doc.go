// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides export key generation and validation.

Vote and comment submission are deliberately unauthenticated: survey
links are clicked straight from customer emails. The only guarded
surface is the raw CSV export, which can leak origin addresses.

# Export Keys

Keys are HMAC-SHA256 over a fixed subject, keyed by the configured salt:

	key := auth.GenerateExportKey(cfg.ExportKeySalt)

Operators run the server once with the salt set, log the derived key,
and hand it to whoever pulls exports. Validation is constant-time:

	if err := auth.ValidateExportKey(r.Header.Get("X-Export-Key"), salt); err != nil {
		// reject
	}

When no salt is configured the export endpoint is open.
*/
package auth
