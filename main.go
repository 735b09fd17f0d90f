package main

import "github.com/alpine-labs/my-pace/cmd/mypace"

func main() {
	mypace.Execute()
}
