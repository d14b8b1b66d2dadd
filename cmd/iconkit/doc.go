// Package main hosts the iconkit CLI entrypoint and command graph.
//
// The Cobra-based command tree converts FontAwesome kit directories into
// Iconify icon-set documents and answers questions about the staged result:
// which styles exist, which icons a style carries, and which icons match a
// search term. It centralizes configuration resolution, store access, and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
