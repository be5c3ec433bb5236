// Package common contains shared constants and sentinel errors used across
// the uploader's client layers.
package common

// DefaultGatewayURL is the public HTTP gateway used for summary links.
const DefaultGatewayURL = "https://ipfs.io"

// Path namespaces understood by IPFS gateways and the naming service.
const (
	IPFSNamespace = "/ipfs/"
	IPNSNamespace = "/ipns/"
)
