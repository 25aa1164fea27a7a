package main

import "github.com/meeharshu8685-dot/pathfy-1-sub000/cmd/pathfy/root"

func main() {
	root.Execute()
}
