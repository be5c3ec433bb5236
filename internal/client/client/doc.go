// Package client contains the adapters the uploader uses to talk to the
// remote storage (IPFS) and naming (IPNS) services.
//
// # Overview
//
//  1. Transport-agnostic contracts: Storage (Add) and Naming (CreateRecord,
//     ListRecords, PublishRecord), combined into Client.
//  2. Backends:
//     - KuboClient: Kubo RPC API via go-ipfs-api (storage + naming);
//     - S3Storage: S3-compatible pinning services that report the CID in
//     object metadata (storage only);
//     - MemoryClient: in-process fake computing real CIDs (storage + naming).
//  3. Open builds a Client from configuration, mixing backends per concern.
//
// # Error Handling
//
// Transport failures are mapped to ErrUnavailable and authentication
// failures to ErrUnauthorized; match them with errors.Is. Other failures are
// wrapped with the operation name.
//
// Calls are never retried and carry no timeout of their own.
package client
