package main

import "github.com/geo-data/mapcache-config/cmd/mapcache-config/internal"

func main() {
	internal.Execute()
}
