// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyOrg is returned by Connect when no organization is given.
	ErrEmptyOrg = errors.New("organization is required")
	// ErrClientClosed is returned by operations on a closed client.
	ErrClientClosed = errors.New("view sync client is closed")
	// ErrMalformedMessage marks an inbound payload that could not be decoded.
	ErrMalformedMessage = errors.New("malformed inbound message")
	// ErrViewUnavailable wraps the state error surfaced instead of a view.
	ErrViewUnavailable = errors.New("view unavailable")
)
