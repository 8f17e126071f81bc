// Command socnet builds interaction networks from a twitwi-style CSV export
// and prints degree rankings or a render-ready snapshot.
//
//	socnet build   --input tweets.csv --type mention --giant --aggregation soft
//	socnet summary --input tweets.csv --config socnet.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
