// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public optpack API,
// covering malformed input, compact-string content errors, configuration,
// and the named-mapping registry.

// Package optpack packs a set of selected option values into a compact,
// URL-safe string against an ordered reference mapping, and unpacks it again.
package optpack

import (
	"errors"

	"github.com/AndrewDonelson/optpack/internal/alphabet"
	"github.com/AndrewDonelson/optpack/internal/codec"
)

// Input errors
var (
	ErrInvalidInput = errors.New("optpack: invalid input")
)

// Compact string errors
var (
	ErrInvalidCharacter    = alphabet.ErrInvalidCharacter
	ErrInconsistentMapping = errors.New("optpack: compact string does not fit reference mapping")
)

// Internal errors. ErrOutOfRange means the encoder produced a group value
// outside [0,63]; callers should never observe it.
var (
	ErrOutOfRange = alphabet.ErrOutOfRange
)

// Config errors
var (
	ErrInvalidConfig = errors.New("optpack: invalid configuration")
)

// Registry errors
var (
	ErrMappingNotFound  = errors.New("optpack: mapping not registered")
	ErrMappingDuplicate = errors.New("optpack: mapping already registered")
)

// Definition errors
var (
	ErrInvalidDefinition = errors.New("optpack: invalid definition")
	ErrUnknownFormat     = codec.ErrUnknownFormat
)
