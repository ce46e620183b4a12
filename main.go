/*
Copyright © 2024 The parse24 authors

*/
package main

import "parse24/cmd"

func main() {
	cmd.Execute()
}
