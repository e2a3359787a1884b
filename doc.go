/*
Package avagen is a procedural launcher icon generator. It composes avatar style
portraits and gradient mood orbs from a small set of categorical and numeric
parameters (color palette, mood, season, hair and eye style, accessories, seed)
and emits them as a multi-resolution Android icon set together with the
adaptive-icon manifest.

The package provides a command line interface for batch generation.
To check the supported commands type:

	$ avagen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"

		"github.com/avagen/avagen"
	)

	func main() {
		req := avagen.DefaultRequest()
		req.Mood = avagen.MoodCreative

		icon, err := avagen.Render(req)
		if err != nil {
			fmt.Printf("Error rendering the icon: %s", err.Error())
		}

		emitter, err := avagen.NewEmitter("output/generated")
		if err != nil {
			fmt.Printf("Error preparing the output directory: %s", err.Error())
		}
		if _, err := emitter.Emit("sample", icon); err != nil {
			fmt.Printf("Error emitting the icon set: %s", err.Error())
		}
	}

Rendering is deterministic: two renders with identical parameters produce
byte identical images.
*/
package avagen
