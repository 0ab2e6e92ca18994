package main

import "github.com/romnn/helm-deploy-action/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
