// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package classdoc

import "errors"

var (
	// ErrReadModelFile is returned when model file loading fails.
	ErrReadModelFile = errors.New("read model file")
	// ErrDecodeModel is returned when model YAML or JSON decoding fails.
	ErrDecodeModel = errors.New("decode model")
	// ErrInvalidModel is returned when a decoded model breaks a structural invariant.
	ErrInvalidModel = errors.New("invalid model")
	// ErrUnknownModelFormat is returned when model format is neither YAML nor JSON.
	ErrUnknownModelFormat = errors.New("unknown model format")
	// ErrEncodeExample is returned when the starter model cannot be encoded.
	ErrEncodeExample = errors.New("encode example model")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrParseCustomTemplate is returned when caller-provided template text does not parse.
	ErrParseCustomTemplate = errors.New("parse custom template")
)
