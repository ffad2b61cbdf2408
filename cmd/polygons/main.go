// Command polygons prints measurements of regular polygons inscribed in a
// circle and picks the one with the best area-to-perimeter ratio.
//
// Usage:
//
//	polygons describe 6 --radius 2
//	polygons table --max-edges 12
//	polygons best --max-edges 10 --output yaml
//	polygons best --config polygons.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
