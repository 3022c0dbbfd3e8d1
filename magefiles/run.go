//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Casts the sample scene in assets/ and keeps watching it.
func (Run) Testbed() error {
	fmt.Println("Run testbed...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "geometria.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

// Writes a 512x512 simplex noise height map to out/noise.bmp.
func (Run) Noise() error {
	_, err := executeCmd("go", withArgs("run", ".", "-noise-output", "out/noise.bmp", "-noise-size", "512"), withStream())
	return err
}
