// Package zklings embeds the pristine curriculum so that `zklings
// reset` can restore an exercise without a git checkout.
package zklings

import "embed"

// Pristine holds the exercises and the manifest exactly as shipped.
//
//go:embed exercises info.yaml
var Pristine embed.FS
