package models

// NamingRecord is a snapshot of an IPNS record as seen at list or create
// time. ID is what the naming service uses to address the record on publish;
// Name is the IPNS name resolvable through a gateway. Publishing mutates the
// remote record only, so Name may go stale locally.
type NamingRecord struct {
	ID   string
	Name string
}

// PublishResult carries the content hash the record now points to.
type PublishResult struct {
	Hash string
}
