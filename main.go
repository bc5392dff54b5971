package main

import "github.com/Tutortoise/image-safety-service/cmd"

func main() {
	cmd.Execute()
}
