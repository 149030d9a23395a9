// Package config loads the persisted mr-comment configuration and resolves
// the effective provider settings.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY)
//  3. Config file (~/.mr-comment, JSON)
//  4. Built-in per-provider defaults
//
// [Resolve] is a pure function over the four sources, so precedence is
// testable without touching the filesystem or process environment.
package config
