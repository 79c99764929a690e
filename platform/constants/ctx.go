// Package constants holds names shared between the engines and their hosts.
package constants

// Ctx is the top-scope variable name scripts use to read data injected at run time.
// Compilers predeclare it so scripts that reference it still compile.
const Ctx = "ctx"
