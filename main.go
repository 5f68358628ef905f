package main

import "github.com/metascrub/metascrub/cmd/metascrub"

func main() {
	metascrub.Execute()
}
