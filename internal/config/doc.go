// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/textr/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/textr/config.cue on macOS, %APPDATA%\textr\config.cue
// on Windows) and may be overridden per key with TEXTR_* environment variables
// (TEXTR_CUT_DELIMITER, TEXTR_HEAD_LINES, TEXTR_UI_VERBOSE, TEXTR_LOG_LEVEL).
//
// Configuration files are validated against an embedded CUE schema (config_schema.cue).
package config
