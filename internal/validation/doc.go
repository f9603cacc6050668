// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

/*
Package validation checks path parameters before they reach a query routine.

It wraps go-playground/validator with a lazily built singleton. Request
structs carry a param tag naming the URL placeholder so error messages speak
the caller's language:

	req := validation.DeveloperRequest{Developer: name}
	if verr := validation.ValidateStruct(&req); verr != nil {
	    // 400 with verr.Error() and verr.Details()
	}

Only presence is checked. Any non-empty text reaches the routine, which
answers an empty result or a not-found error for names it does not know.
*/
package validation
