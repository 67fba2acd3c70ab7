package main

import "github.com/pavannsshetty7022/abbrevify/cmd"

func main() {
	cmd.Execute()
}
