// cmd/align/main.go
package main

import (
	"seqalign/internal/app"
	"seqalign/internal/appshell"
)

func main() {
	appshell.Main(app.RunAlign)
}
