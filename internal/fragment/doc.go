// Package fragment implements the changelog fragment creation pipeline:
// deriving the author and branch identity, generating a unique fragment
// path, rendering the initial template, writing it without clobbering
// existing files, optionally routing it through an interactive edit step,
// and optionally staging it with git.
package fragment
