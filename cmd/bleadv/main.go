package main

import (
	"github.com/xaionaro-go/bleadv/cmd/bleadv/cmd"
)

func main() {
	cmd.Execute()
}
