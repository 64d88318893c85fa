// Package subtree resolves and synchronizes the subtrees declared in .gitstu.
//
// A run selects entries from the registry, resolves the effective branch and
// remote for each one, hands a git command to the dispatcher and finally
// offers to fold the resolved values back into the entry. Entries are handled
// one after another so prompts and git output never interleave; the caller
// saves the registry once at the end.
package subtree
