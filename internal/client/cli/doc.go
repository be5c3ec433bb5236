// Package cli provides the interactive uploader.
//
// A single run walks a fixed sequence of prompts: pick a local file, upload
// it, decide whether to bind the resulting CID to an IPNS record, pick or
// create that record, publish, and print the gateway links. The sequence is
// an explicit state machine (see workflow) so that every prompt has one
// documented reaction to cancellation.
//
// Prompts go through the Prompter interface. On a terminal the promptui
// implementation is used; otherwise a line-oriented reader in the style of
// GetSimpleText serves scripted input and tests.
package cli
