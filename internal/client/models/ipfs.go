// Package models defines the transient values passed between workflow steps.
// None of them outlive the process.
package models

// IPFSFile is the payload submitted to the storage service. Path is the
// operator-supplied path and is used for display only.
type IPFSFile struct {
	Path    string
	Content []byte
}

// UploadResult is returned by the storage service after ingestion.
type UploadResult struct {
	CID string
}
