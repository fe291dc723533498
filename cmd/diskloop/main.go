// Command diskloop seeds and deforms self-avoiding loops on a discretized
// disk and prints the resulting loops as a YAML snapshot stream.
//
// Examples:
//
//	diskloop cover -r 5 -c 15 --seed 7
//	diskloop progression --frames 36 > frames.yaml
//	diskloop series --cells 36 --iterations 200 --config run.hcl
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
