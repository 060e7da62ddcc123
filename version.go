package main

import "fmt"

var (
	projectVersion = "dev"
	projectBuild   string
)

func printVersion() {
	fmt.Printf("gxpfrud version %s build %s\n", projectVersion, projectBuild)
}
