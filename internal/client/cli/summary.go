package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/common"
)

// GatewayURL joins a gateway base, a namespace such as common.IPFSNamespace
// and an identifier.
func GatewayURL(gateway, namespace, id string) string {
	if gateway == "" {
		gateway = common.DefaultGatewayURL
	}
	return strings.TrimRight(gateway, "/") + namespace + id
}

// Summary renders the final report. record may be nil, in which case only
// the content link is listed.
func Summary(gateway string, upload *models.UploadResult, record *models.NamingRecord) string {
	var b strings.Builder
	b.WriteString("You can find your file at:\n")
	if upload != nil {
		fmt.Fprintf(&b, "  IPFS Gateway: %s\n", blue(GatewayURL(gateway, common.IPFSNamespace, upload.CID)))
	}
	if record != nil {
		fmt.Fprintf(&b, "  IPNS Gateway: %s\n", blue(GatewayURL(gateway, common.IPNSNamespace, record.Name)))
	}
	return b.String()
}
